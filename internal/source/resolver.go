// Package source resolves where an HTML template comes from: another
// Confluence page addressed by URL, or a file on the local filesystem.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bianoble/page-generator/internal/pageurl"
)

// Kind is the type of template source.
type Kind string

const (
	KindURL   Kind = "url"
	KindLocal Kind = "local"
)

// ErrUnknownSource is returned when a location is neither a URL nor an
// existing file.
var ErrUnknownSource = errors.New("template source is neither a URL nor an existing file")

// Resolver fetches template content from one kind of source.
type Resolver interface {
	Fetch(ctx context.Context, location string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, location string) (string, error)

func (f ResolverFunc) Fetch(ctx context.Context, location string) (string, error) {
	return f(ctx, location)
}

// SourceError represents an error associated with a template source.
type SourceError struct {
	Location  string
	Operation string
	Err       error
	Hint      string
}

func (e *SourceError) Error() string {
	msg := fmt.Sprintf("%s: %s failed: %s", e.Location, e.Operation, e.Err)
	if e.Hint != "" {
		msg += " — " + e.Hint
	}
	return msg
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Classify decides whether location is a URL or a local file.
func Classify(fsys FS, location string) (Kind, error) {
	if pageurl.IsURL(location) {
		return KindURL, nil
	}
	if fsys == nil {
		fsys = OSFS{}
	}
	if _, err := fsys.Stat(location); err == nil {
		return KindLocal, nil
	}
	return "", &SourceError{
		Location:  location,
		Operation: "classify",
		Err:       ErrUnknownSource,
		Hint:      "set 'source' to a confluence page URL or a path to an HTML file",
	}
}

// Registry maps source kinds to Resolver implementations.
type Registry struct {
	resolvers map[Kind]Resolver
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[Kind]Resolver)}
}

// Register adds a resolver for the given kind.
func (r *Registry) Register(kind Kind, resolver Resolver) {
	r.resolvers[kind] = resolver
}

// Get returns the resolver for the given kind.
func (r *Registry) Get(kind Kind) (Resolver, error) {
	res, ok := r.resolvers[kind]
	if !ok {
		return nil, fmt.Errorf("no resolver registered for source type '%s'", kind)
	}
	return res, nil
}

// Fetch classifies location and fetches it with the matching resolver.
func (r *Registry) Fetch(ctx context.Context, fsys FS, location string) (string, error) {
	kind, err := Classify(fsys, location)
	if err != nil {
		return "", err
	}
	res, err := r.Get(kind)
	if err != nil {
		return "", err
	}
	return res.Fetch(ctx, location)
}

// FS abstracts the filesystem reads template loading needs.
type FS interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (os.FileInfo, error)
}

// OSFS implements FS using the real operating system filesystem.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OSFS) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
