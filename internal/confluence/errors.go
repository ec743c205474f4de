package confluence

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrPermission      = errors.New("user has insufficient permissions to perform that operation")
	ErrNotFound        = errors.New("resource not found")
	ErrVersionConflict = errors.New("version conflict")
	ErrValueTooLong    = errors.New("value too long")
	ErrRequest         = errors.New("request failed")
	ErrEmptyResults    = errors.New("API response 'results' is empty")
	ErrMissingValue    = errors.New("missing value in API response")
)

// Error describes a failed REST call.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	detail := e.Message
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	msg := fmt.Sprintf("confluence %s %s: %s", e.Method, e.Path, detail)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (code:%d)", e.StatusCode)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingValueError names the first required field absent from a response.
type MissingValueError struct {
	Object string
	Field  string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s object cannot be built: missing value in json data: %q", e.Object, e.Field)
}

func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}

// statusError maps a non-2xx response to an *Error. It returns nil for
// success codes.
func statusError(method, path string, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	e := &Error{Method: method, Path: path, StatusCode: status}
	switch status {
	case http.StatusBadRequest:
		e.Err = ErrRequest
		if ce, err := ParseContentError(body); err == nil {
			e.Message = ce.Message
		}
	case http.StatusForbidden:
		e.Err = ErrPermission
	case http.StatusNotFound:
		e.Err = ErrNotFound
	case http.StatusConflict:
		e.Err = ErrVersionConflict
	case http.StatusRequestEntityTooLarge:
		e.Err = ErrValueTooLong
	default:
		e.Err = ErrRequest
		e.Message = fmt.Sprintf("general resource error accessing path %s", path)
	}
	return e
}
