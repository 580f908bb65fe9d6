package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrVertexNotFound = errors.New("word not in graph")
	ErrEmptyGraph     = errors.New("graph is empty")
	ErrNoPath         = errors.New("no path")
	ErrInputRead      = errors.New("input read failed")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "build", "shortest_path")
	Word    string // Vertex involved, if any
	Context string // Additional context such as a file path
	Cause   error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.Word != "" && e.Context != "":
		return fmt.Sprintf("%s %q (%s): %v", e.Op, e.Word, e.Context, e.Cause)
	case e.Word != "":
		return fmt.Sprintf("%s %q: %v", e.Op, e.Word, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Context, e.Cause)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Word sets the vertex the operation was about.
func (b *ErrorBuilder) Word(w string) *ErrorBuilder {
	b.err.Word = w
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed GraphError.
func (b *ErrorBuilder) Build() *GraphError {
	return &b.err
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// VertexNotFoundError reports that word is not a vertex.
func VertexNotFoundError(op, word string) error {
	return NewError(op).Word(word).Cause(ErrVertexNotFound).Err()
}

// InputError wraps a failure to read the source text at path.
func InputError(path string, cause error) error {
	return NewError("read").Context(path).Cause(fmt.Errorf("%w: %w", ErrInputRead, cause)).Err()
}

// IsNotFound returns true if err reports a missing vertex.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVertexNotFound)
}
