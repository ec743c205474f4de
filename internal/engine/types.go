package engine

import (
	"context"

	"github.com/bianoble/page-generator/internal/confluence"
)

// PageClient is the subset of the Confluence API the engine uses.
type PageClient interface {
	Authenticate(ctx context.Context) (bool, error)
	CreatePage(ctx context.Context, title, space, html, parentID string) (*confluence.Page, error)
	DeleteContent(ctx context.Context, id string) error
	GetContent(ctx context.Context, id string) (*confluence.Page, error)
	GetPageByTitle(ctx context.Context, title, space string) (*confluence.Page, error)
}

// GenerateResult holds the outcome of a generate operation.
type GenerateResult struct {
	Page    *confluence.Page
	URL     string
	Missing []string // template variables not found in the template
}

// RenderResult holds a rendered template that has not been posted.
type RenderResult struct {
	HTML    string
	Missing []string
}
