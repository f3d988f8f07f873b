package inventory

import (
	"errors"
	"fmt"
)

// Sentinel errors for inventory decoding.
var (
	// ErrMissingColumn indicates a required column is absent from the header
	// or a required key is absent from a TOML segment table.
	ErrMissingColumn = errors.New("required column missing")
	// ErrInvalidInteger indicates a quantity field is not a base-10 integer.
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrMalformedRow indicates a row that cannot be split into fields.
	ErrMalformedRow = errors.New("malformed row")
	// ErrUnsupportedFormat indicates an unknown input format name.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// ParseError records where in the input a decoding problem occurred.
type ParseError struct {
	Row    int    // 1-based data row (or segment table); 0 for the header
	Column string // field name, empty when the whole row is at fault
	Err    error
}

// Error returns a human-readable string with row and column context.
func (e *ParseError) Error() string {
	where := "header"
	if e.Row > 0 {
		where = fmt.Sprintf("row %d", e.Row)
	}
	if e.Column != "" {
		return where + ": " + e.Column + ": " + e.Err.Error()
	}
	return where + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
