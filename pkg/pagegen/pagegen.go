// Package pagegen provides the public Go library API for page-generator.
//
// page-generator renders an HTML template with variables from a config file
// and publishes the result as a new Confluence page. This package exposes
// interfaces and constructors for embedding it in other Go programs.
//
// # Basic Usage
//
//	client, err := pagegen.New(pagegen.Options{
//	    ConfigPath: "config.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create the configured page
//	result, err := client.Generate(ctx)
//
//	// Read another page's storage HTML
//	html, err := client.ContentByURL(ctx, "https://wiki/display/SPACE/Title")
package pagegen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bianoble/page-generator/internal/credentials"
	"github.com/bianoble/page-generator/internal/engine"
	"github.com/bianoble/page-generator/internal/pageurl"
	"github.com/bianoble/page-generator/internal/transform"
)

// Generator renders the configured template and creates the page.
type Generator interface {
	Generate(ctx context.Context) (*GenerateResult, error)
	Render(ctx context.Context) (*RenderResult, error)
}

// Fetcher reads existing pages.
type Fetcher interface {
	ContentByID(ctx context.Context, id string) (string, error)
	ContentByURL(ctx context.Context, url string) (string, error)
	ContentByTitle(ctx context.Context, title, space string) (string, error)
}

// Deleter removes pages.
type Deleter interface {
	Delete(ctx context.Context, pageID string) error
}

// Options configures a page-generator client.
type Options struct {
	// ConfigPath is the path to the config file. Default: "config.json".
	ConfigPath string

	// EnvFile is an optional dotenv file loaded before credentials are
	// resolved. Variables already set in the environment win.
	EnvFile string

	// Variables are "$Name=value" assignments that override the config's
	// template variables.
	Variables []string

	// Timeout applies to each HTTP request. Zero means no timeout.
	Timeout time.Duration

	// Logger defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// Client is the main entry point for the page-generator library.
// It implements Generator, Fetcher, and Deleter.
type Client struct {
	manager *engine.Manager
}

var (
	_ Generator = (*Client)(nil)
	_ Fetcher   = (*Client)(nil)
	_ Deleter   = (*Client)(nil)
)

// New loads the config and builds a Client. No request is sent until the
// first operation.
func New(opts Options) (*Client, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = "config.json"
	}

	if err := credentials.LoadDotEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	vars, err := transform.ParseVars(opts.Variables)
	if err != nil {
		return nil, err
	}

	m, err := engine.Open(opts.ConfigPath, engine.Options{
		Logger:    opts.Logger,
		Timeout:   opts.Timeout,
		Variables: vars,
	})
	if err != nil {
		return nil, err
	}
	return &Client{manager: m}, nil
}

// Generate renders the template and creates the configured page.
func (c *Client) Generate(ctx context.Context) (*GenerateResult, error) {
	return c.manager.Generate(ctx)
}

// Render renders the template without creating a page.
func (c *Client) Render(ctx context.Context) (*RenderResult, error) {
	return c.manager.Render(ctx)
}

// ContentByID returns the storage HTML of a page.
func (c *Client) ContentByID(ctx context.Context, id string) (string, error) {
	return c.manager.ContentByID(ctx, id)
}

// ContentByURL returns the storage HTML of the page a URL points to.
func (c *Client) ContentByURL(ctx context.Context, url string) (string, error) {
	return c.manager.ContentByURL(ctx, url)
}

// ContentByTitle returns the storage HTML of a page found by title.
func (c *Client) ContentByTitle(ctx context.Context, title, space string) (string, error) {
	return c.manager.ContentByTitle(ctx, title, space)
}

// Delete removes the page with the given id.
func (c *Client) Delete(ctx context.Context, pageID string) error {
	return c.manager.Delete(ctx, pageID)
}

// ParseURL classifies and decomposes a Confluence page URL.
func ParseURL(url string) (ParsedURL, error) {
	return pageurl.Parse(url)
}
