package engine

import (
	"context"
	"fmt"

	"github.com/bianoble/page-generator/internal/confluence"
	"github.com/bianoble/page-generator/internal/pageurl"
)

// PageByID fetches a page by its numeric id.
func (m *Manager) PageByID(ctx context.Context, id string) (*confluence.Page, error) {
	if err := m.authenticate(ctx); err != nil {
		return nil, err
	}

	m.log.Debugw("getting content from page", "id", id)
	page, err := m.client.GetContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("confluence page with id %q could not be retrieved: %w", id, err)
	}
	return page, nil
}

// PageByTitle fetches the page titled title in space.
func (m *Manager) PageByTitle(ctx context.Context, title, space string) (*confluence.Page, error) {
	if err := m.authenticate(ctx); err != nil {
		return nil, err
	}

	m.log.Debugw("searching page by title", "title", title, "space", space)
	page, err := m.client.GetPageByTitle(ctx, title, space)
	if err != nil {
		return nil, fmt.Errorf("confluence page with title %q in space %q could not be retrieved: %w", title, space, err)
	}
	return page, nil
}

// PageByURL fetches the page a URL points to. Page-id URLs are looked up by
// id; any other URL must be a /display/<space>/<title> URL.
func (m *Manager) PageByURL(ctx context.Context, url string) (*confluence.Page, error) {
	if !pageurl.IsURL(url) {
		return nil, &pageurl.Error{URL: url, Err: pageurl.ErrInvalidURL}
	}

	if pageurl.HasPageID(url) {
		id, err := pageurl.PageID(url)
		if err != nil {
			return nil, err
		}
		return m.PageByID(ctx, id)
	}

	space, err := pageurl.Space(url)
	if err != nil {
		return nil, err
	}
	title, err := pageurl.Title(url, true)
	if err != nil {
		return nil, err
	}
	return m.PageByTitle(ctx, title, space)
}

// ContentByID returns the storage HTML of a page.
func (m *Manager) ContentByID(ctx context.Context, id string) (string, error) {
	page, err := m.PageByID(ctx, id)
	if err != nil {
		return "", err
	}
	return page.Content, nil
}

// ContentByURL returns the storage HTML of the page a URL points to.
func (m *Manager) ContentByURL(ctx context.Context, url string) (string, error) {
	page, err := m.PageByURL(ctx, url)
	if err != nil {
		return "", err
	}
	return page.Content, nil
}

// ContentByTitle returns the storage HTML of a page found by title.
func (m *Manager) ContentByTitle(ctx context.Context, title, space string) (string, error) {
	page, err := m.PageByTitle(ctx, title, space)
	if err != nil {
		return "", err
	}
	return page.Content, nil
}
