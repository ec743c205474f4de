package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFileNotFound is returned when the config path does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidFormat is returned when the document cannot be parsed.
	ErrInvalidFormat = errors.New("invalid config format")

	// ErrMissingField is wrapped by MissingFieldError.
	ErrMissingField = errors.New("missing mandatory field")

	// ErrUnknownKey is wrapped by UnknownKeyError.
	ErrUnknownKey = errors.New("unknown config key")
)

// MissingFieldError names the first mandatory key absent from a config file.
type MissingFieldError struct {
	Field string
	File  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("configuration file does not contain mandatory attribute %q — add it to %q", e.Field, e.File)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// UnknownKeyError is returned by Config.Get for absent keys.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("configuration does not contain attribute %q", e.Key)
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// Load reads, flattens, and validates a configuration file.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("checking config %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	name := filepath.Base(path)
	flat, err := parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", name, err)
	}

	return New(flat, name)
}

func parse(name string, data []byte) (*FlatConfig, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FlattenYAML(data)
	default:
		return Flatten(data)
	}
}
