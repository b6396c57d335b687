package numbeo

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrMissingCredential
	ErrBadParameter
	ErrMissingAlternative
	ErrUnsupportedSection
	ErrNotFound
	ErrConflict
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrMissingCredential:
		return "missing credential"
	case ErrBadParameter:
		return "bad parameter"
	case ErrMissingAlternative:
		return "missing required alternative"
	case ErrUnsupportedSection:
		return "unsupported rankings section"
	case ErrNotFound:
		return "not found"
	case ErrConflict:
		return "conflict"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
