package casedoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for render failure conditions.
var (
	ErrNoRecord = errors.New("casedoc: no record supplied")
)

// RenderError represents an error that occurred during a specific render
// operation. It wraps an underlying error and includes the operation name for
// context.
type RenderError struct {
	Op  string // operation name, e.g. "pdf.Render", "sheet.WriteCSV"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("casedoc.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("casedoc.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a RenderError wrapping err with operation context.
func NewRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
