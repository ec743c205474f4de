// Package pageurl classifies Confluence page URLs and extracts the page id,
// space key, or title they encode.
//
// Two page URL shapes are recognized:
//
//	http://host:8090/pages/viewpage.action?pageId=102948555
//	http://host:8090/display/SPACE/Page+Title
//
// Anything else that still starts with a scheme and host is a bare URL.
package pageurl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidURL     = errors.New("not a valid URL")
	ErrPageIDNotFound = errors.New("pageId not found in URL")
	ErrSpaceNotFound  = errors.New("confluence space not found in URL")
	ErrTitleNotFound  = errors.New("confluence page title not found in URL")
)

// Error ties a parse failure to the offending URL.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.URL)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// scheme, host and an optional port of up to five digits; the rest is the path.
	prefixPattern = regexp.MustCompile(`^https?://[-\w_.]*:?\d{0,5}(?P<path>.*)`)
	// pageId must be the final token.
	pageIDPattern = regexp.MustCompile(`^.*pageId=(?P<id>\d+)$`)
	// the space key stops at the first slash, the title takes the rest.
	displayPattern = regexp.MustCompile(`^/display/(?P<space>[-\w_?~]*)/(?P<title>.*)`)

	pathGroup  = prefixPattern.SubexpIndex("path")
	idGroup    = pageIDPattern.SubexpIndex("id")
	spaceGroup = displayPattern.SubexpIndex("space")
	titleGroup = displayPattern.SubexpIndex("title")
)

// Kind is the shape of a classified URL.
type Kind int

const (
	BareHost Kind = iota
	PageIDURL
	SpaceTitleURL
)

func (k Kind) String() string {
	switch k {
	case PageIDURL:
		return "page-id"
	case SpaceTitleURL:
		return "space-title"
	default:
		return "bare"
	}
}

// Parsed is a classified URL. ID is set for PageIDURL; Space and the raw,
// "+"-encoded Title are set for SpaceTitleURL.
type Parsed struct {
	Kind  Kind
	ID    string
	Space string
	Title string
}

// FormattedTitle returns Title with every "+" replaced by a space.
func (p Parsed) FormattedTitle() string {
	return formatTitle(p.Title)
}

// IsURL reports whether s starts with http(s)://host[:port].
func IsURL(s string) bool {
	return prefixPattern.MatchString(s)
}

// HasPageID reports whether s ends in pageId=<digits>.
func HasPageID(s string) bool {
	return pageIDPattern.MatchString(s)
}

// PageID extracts the page id digits, verbatim.
func PageID(s string) (string, error) {
	path, ok := urlPath(s)
	if !ok {
		return "", &Error{URL: s, Err: ErrPageIDNotFound}
	}
	m := pageIDPattern.FindStringSubmatch(path)
	if m == nil {
		return "", &Error{URL: s, Err: ErrPageIDNotFound}
	}
	return m[idGroup], nil
}

// Space extracts the space key of a /display/ URL.
func Space(s string) (string, error) {
	m, ok := displayMatch(s)
	if !ok {
		return "", &Error{URL: s, Err: ErrSpaceNotFound}
	}
	return m[spaceGroup], nil
}

// Title extracts the page title of a /display/ URL. When formatted is true
// every "+" becomes a space; nothing else is decoded.
func Title(s string, formatted bool) (string, error) {
	m, ok := displayMatch(s)
	if !ok {
		return "", &Error{URL: s, Err: ErrTitleNotFound}
	}
	title := m[titleGroup]
	if formatted {
		title = formatTitle(title)
	}
	return title, nil
}

// Parse classifies s. Strings that are not URLs fail with ErrInvalidURL.
func Parse(s string) (Parsed, error) {
	path, ok := urlPath(s)
	if !ok {
		return Parsed{}, &Error{URL: s, Err: ErrInvalidURL}
	}
	if HasPageID(s) {
		if m := pageIDPattern.FindStringSubmatch(path); m != nil {
			return Parsed{Kind: PageIDURL, ID: m[idGroup]}, nil
		}
	}
	if m := displayPattern.FindStringSubmatch(path); m != nil {
		return Parsed{Kind: SpaceTitleURL, Space: m[spaceGroup], Title: m[titleGroup]}, nil
	}
	return Parsed{Kind: BareHost}, nil
}

func urlPath(s string) (string, bool) {
	m := prefixPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[pathGroup], true
}

func displayMatch(s string) ([]string, bool) {
	path, ok := urlPath(s)
	if !ok {
		return nil, false
	}
	m := displayPattern.FindStringSubmatch(path)
	return m, m != nil
}

func formatTitle(title string) string {
	return strings.ReplaceAll(title, "+", " ")
}
