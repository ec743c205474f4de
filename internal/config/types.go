package config

import "strings"

// Configuration keys recognized by the page generator.
const (
	KeyHostURL      = "host_url"
	KeyUser         = "user"
	KeyPass         = "pass"
	KeySource       = "source"
	KeySpaceKey     = "space_key"
	KeyParentPageID = "parent_page_id"
	KeyPageTitle    = "page_title"
)

// VariablePrefix marks a key as a template variable.
const VariablePrefix = "$"

// MandatoryKeys lists the keys every configuration must define, in the
// order they are validated.
var MandatoryKeys = []string{
	KeyHostURL,
	KeyUser,
	KeyPass,
	KeySource,
	KeySpaceKey,
	KeyParentPageID,
	KeyPageTitle,
}

// Variable is a template variable and the value substituted for it.
type Variable struct {
	Name  string
	Value string
}

// Config is a validated, read-only configuration.
type Config struct {
	flat      *FlatConfig
	variables []Variable
	path      string
}

// New validates a flattened document and builds a Config.
// file is only used for error messages.
func New(flat *FlatConfig, file string) (*Config, error) {
	for _, key := range MandatoryKeys {
		if !flat.Has(key) {
			return nil, &MissingFieldError{Field: key, File: file}
		}
	}

	var vars []Variable
	for _, key := range flat.keys {
		if strings.HasPrefix(key, VariablePrefix) {
			vars = append(vars, Variable{Name: key, Value: flat.values[key]})
		}
	}

	return &Config{flat: flat, variables: vars, path: file}, nil
}

// Get returns the value for any key in the document.
func (c *Config) Get(key string) (string, error) {
	v, ok := c.flat.Lookup(key)
	if !ok {
		return "", &UnknownKeyError{Key: key}
	}
	return v, nil
}

func (c *Config) mandatory(key string) string {
	v, _ := c.flat.Lookup(key)
	return v
}

func (c *Config) HostURL() string      { return c.mandatory(KeyHostURL) }
func (c *Config) User() string         { return c.mandatory(KeyUser) }
func (c *Config) Password() string     { return c.mandatory(KeyPass) }
func (c *Config) Source() string       { return c.mandatory(KeySource) }
func (c *Config) SpaceKey() string     { return c.mandatory(KeySpaceKey) }
func (c *Config) ParentPageID() string { return c.mandatory(KeyParentPageID) }
func (c *Config) PageTitle() string    { return c.mandatory(KeyPageTitle) }

// TemplateVariables returns the "$"-prefixed entries in document order.
func (c *Config) TemplateVariables() []Variable {
	out := make([]Variable, len(c.variables))
	copy(out, c.variables)
	return out
}

// Keys returns every flattened key in document order.
func (c *Config) Keys() []string {
	return c.flat.Keys()
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}
