package pagegen

import (
	"github.com/bianoble/page-generator/internal/config"
	"github.com/bianoble/page-generator/internal/confluence"
	"github.com/bianoble/page-generator/internal/engine"
	"github.com/bianoble/page-generator/internal/pageurl"
)

// Type aliases re-export internal types as the public API.

type Page = confluence.Page
type Variable = config.Variable
type ParsedURL = pageurl.Parsed
type GenerateResult = engine.GenerateResult
type RenderResult = engine.RenderResult

// Sentinel errors callers can match with errors.Is.
var (
	ErrAuthentication = engine.ErrAuthentication
	ErrMissingField   = config.ErrMissingField
	ErrNotFound       = confluence.ErrNotFound
	ErrPermission     = confluence.ErrPermission
	ErrInvalidURL     = pageurl.ErrInvalidURL
)
