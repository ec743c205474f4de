package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/bianoble/page-generator/internal/config"
	"github.com/bianoble/page-generator/internal/credentials"
	"github.com/bianoble/page-generator/internal/engine"
	"github.com/bianoble/page-generator/internal/transform"
)

var errNoConfig = errors.New("a config file is required — pass it with --config_file/-c")

// stdout and stderr are where command output goes; tests swap them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

// loadConfig reads and validates the config file without resolving
// credentials.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return nil, errNoConfig
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return cfg, nil
}

// newManager loads the env file and config and builds a page manager.
// assignments are "$Name=value" overrides for template variables.
func newManager(assignments []string) (*engine.Manager, error) {
	if configPath == "" {
		return nil, errNoConfig
	}
	if err := credentials.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	vars, err := transform.ParseVars(assignments)
	if err != nil {
		return nil, err
	}
	return engine.Open(configPath, engine.Options{
		Logger:    logger,
		Timeout:   timeout,
		Variables: vars,
	})
}

// fetchContent looks a page up by URL, numeric id, or title in space.
func fetchContent(ctx context.Context, m *engine.Manager, ref, space string) (string, error) {
	switch {
	case space != "":
		return m.ContentByTitle(ctx, ref, space)
	case digitsPattern.MatchString(ref):
		return m.ContentByID(ctx, ref)
	default:
		return m.ContentByURL(ctx, ref)
	}
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(stderr, "error: "+format+"\n", args...)
}
