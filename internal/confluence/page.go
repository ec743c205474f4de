package confluence

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Page is a Confluence page as returned by the content API.
type Page struct {
	ID            string
	Title         string
	SpaceKey      string
	Content       string // body.storage.value
	PermanentLink string // _links.tinyui
	BaseURL       string // _links.base, may be empty
}

// URL returns the absolute permanent link of the page.
func (p *Page) URL() string {
	return p.BaseURL + p.PermanentLink
}

func (p *Page) String() string {
	content := "Yes"
	if p.Content == "" {
		content = "No Content"
	}
	return fmt.Sprintf("Confluence Content - ID: %q - SPACE: %q - TITLE: %q - PERMALINK: %q - CONTENT: %q",
		p.ID, p.Title, p.SpaceKey, p.PermanentLink, content)
}

// pageFields are required, in the order they are checked.
var pageFields = []struct {
	path string
	set  func(*Page, string)
}{
	{"id", func(p *Page, v string) { p.ID = v }},
	{"title", func(p *Page, v string) { p.Title = v }},
	{"space.key", func(p *Page, v string) { p.SpaceKey = v }},
	{"body.storage.value", func(p *Page, v string) { p.Content = v }},
	{"_links.tinyui", func(p *Page, v string) { p.PermanentLink = v }},
}

// ParsePage builds a Page from a content response. Search responses wrap
// pages in "results"; the first one is used.
func ParsePage(body []byte) (*Page, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parsing page response: %w", ErrMissingValue)
	}
	root := gjson.ParseBytes(body)

	page := &Page{BaseURL: root.Get("_links.base").String()}

	data := root
	if results := root.Get("results"); results.Exists() {
		first := results.Get("0")
		if !first.Exists() {
			return nil, ErrEmptyResults
		}
		data = first
	}

	for _, f := range pageFields {
		v := data.Get(f.path)
		if !v.Exists() {
			return nil, &MissingValueError{Object: "Page", Field: f.path}
		}
		f.set(page, v.String())
	}
	return page, nil
}

// ContentError is the body of a 400 response.
type ContentError struct {
	Message    string
	StatusCode int
}

// ParseContentError reads message and statusCode from an error response.
func ParseContentError(body []byte) (*ContentError, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parsing error response: %w", ErrMissingValue)
	}
	root := gjson.ParseBytes(body)

	msg := root.Get("message")
	if !msg.Exists() {
		return nil, &MissingValueError{Object: "ContentError", Field: "message"}
	}
	code := root.Get("statusCode")
	if !code.Exists() {
		return nil, &MissingValueError{Object: "ContentError", Field: "statusCode"}
	}
	return &ContentError{Message: msg.String(), StatusCode: int(code.Int())}, nil
}
