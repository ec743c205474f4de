package engine

import (
	"context"
	"fmt"

	"github.com/bianoble/page-generator/internal/transform"
)

// Render fetches the template and substitutes the template variables.
// Variables that do not occur in the template are logged and reported.
func (m *Manager) Render(ctx context.Context) (*RenderResult, error) {
	m.log.Infow("loading html template", "source", m.cfg.Source(), "type", m.sourceKind)
	html, err := m.registry.Fetch(ctx, m.fs, m.cfg.Source())
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	m.log.Debugw("replacing variables in html template", "count", len(m.vars))
	tr := &transform.TemplateTransform{}
	out, missing := tr.Apply(html, m.vars)
	for _, name := range missing {
		m.log.Warnw("variable to replace was not found in template", "variable", name)
	}

	return &RenderResult{HTML: out, Missing: missing}, nil
}

// Generate renders the template and creates the configured page.
func (m *Manager) Generate(ctx context.Context) (*GenerateResult, error) {
	if err := m.authenticate(ctx); err != nil {
		return nil, err
	}

	rendered, err := m.Render(ctx)
	if err != nil {
		return nil, err
	}

	m.log.Infow("creating confluence page", "title", m.cfg.PageTitle(), "space", m.cfg.SpaceKey(), "parent", m.cfg.ParentPageID())
	page, err := m.client.CreatePage(ctx, m.cfg.PageTitle(), m.cfg.SpaceKey(), rendered.HTML, m.cfg.ParentPageID())
	if err != nil {
		return nil, fmt.Errorf("confluence page could not be created: %w", err)
	}

	url := page.URL()
	m.log.Infow("confluence page successfully created", "url", url, "id", page.ID)
	return &GenerateResult{Page: page, URL: url, Missing: rendered.Missing}, nil
}

// Delete removes the page with the given id.
func (m *Manager) Delete(ctx context.Context, pageID string) error {
	if err := m.authenticate(ctx); err != nil {
		return err
	}

	m.log.Infow("deleting confluence page", "id", pageID, "space", m.cfg.SpaceKey())
	if err := m.client.DeleteContent(ctx, pageID); err != nil {
		return fmt.Errorf("confluence page could not be deleted: %w", err)
	}
	return nil
}
