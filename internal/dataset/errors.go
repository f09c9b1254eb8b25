package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the dataset file does not exist.
var ErrNotFound = errors.New("dataset not found")

// SchemaError reports required columns missing from the dataset header. No
// rows are parsed when the schema is incomplete.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset schema: missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a cell that could not be parsed into the expected shape.
// Row is the 1-based data row number, excluding the header.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset parse: row %d, column %s: %v (value %q)", e.Row, e.Column, e.Err, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
