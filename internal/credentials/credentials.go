// Package credentials resolves the Confluence user and password from a
// config, following "env.NAME" references into the process environment.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix marks a value as a reference to an environment variable.
// It is matched case-insensitively.
const EnvPrefix = "env."

// ErrMissingEnv is wrapped by MissingEnvError.
var ErrMissingEnv = errors.New("environment variable not set")

// MissingEnvError is returned when a referenced variable is unset.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable %q does not exist — configure it with the confluence credentials", e.Name)
}

func (e *MissingEnvError) Unwrap() error {
	return ErrMissingEnv
}

// Credentials holds literal secrets, never env references.
type Credentials struct {
	User     string
	Password string
}

// Source is the part of a config credentials are read from.
type Source interface {
	User() string
	Password() string
}

// FromConfig resolves user and password independently.
func FromConfig(src Source) (Credentials, error) {
	user, err := Resolve(src.User())
	if err != nil {
		return Credentials{}, fmt.Errorf("resolving user: %w", err)
	}
	pass, err := Resolve(src.Password())
	if err != nil {
		return Credentials{}, fmt.Errorf("resolving password: %w", err)
	}
	return Credentials{User: user, Password: pass}, nil
}

// Resolve returns value unchanged unless it contains EnvPrefix, in which case
// the first occurrence of the prefix is stripped from the trimmed value and
// the remainder is looked up in the environment.
func Resolve(value string) (string, error) {
	name, ok := EnvReference(value)
	if !ok {
		return value, nil
	}
	v, found := os.LookupEnv(name)
	if !found {
		return "", &MissingEnvError{Name: name}
	}
	return v, nil
}

// EnvReference reports whether value refers to an environment variable and
// returns the variable name. Detection ignores case; only the first literal
// "env." is removed, so "ENV.FOO" names the variable "ENV.FOO".
func EnvReference(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.Contains(strings.ToLower(trimmed), EnvPrefix) {
		return "", false
	}
	return strings.Replace(trimmed, EnvPrefix, "", 1), true
}

// LoadDotEnv loads variables from a .env file without overriding variables
// already present in the environment. An empty path is a no-op.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}
