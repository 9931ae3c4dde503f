package csvimport

import "fmt"

// RowError describes why a CSV row was rejected
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("fila %d, columna %s: %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("fila %d: %s", e.Row, e.Message)
}

// ErrorCollection accumulates row errors up to a cap so a garbage file
// cannot produce an unbounded response.
type ErrorCollection struct {
	errors    []RowError
	total     int
	maxErrors int
}

// NewErrorCollection creates a collection keeping at most maxErrors entries
func NewErrorCollection(maxErrors int) *ErrorCollection {
	if maxErrors < 1 {
		maxErrors = 100
	}
	return &ErrorCollection{maxErrors: maxErrors}
}

// Add records a row error, dropping it when the cap is reached
func (c *ErrorCollection) Add(row int, column, message string) {
	c.total++
	if len(c.errors) < c.maxErrors {
		c.errors = append(c.errors, RowError{Row: row, Column: column, Message: message})
	}
}

// Errors returns the kept errors
func (c *ErrorCollection) Errors() []RowError {
	return c.errors
}

// Total returns how many errors occurred, including dropped ones
func (c *ErrorCollection) Total() int {
	return c.total
}

// HasErrors reports whether any row failed
func (c *ErrorCollection) HasErrors() bool {
	return c.total > 0
}

// Truncated reports whether errors were dropped at the cap
func (c *ErrorCollection) Truncated() bool {
	return c.total > len(c.errors)
}
