// Package errors provides structured error types for todui.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Code represents a unique error code.
type Code string

// Error codes for todui.
const (
	// Todo file errors
	CodeNoTodoFile     Code = "NO_TODO_FILE"
	CodeTodoFileExists Code = "TODO_FILE_EXISTS"

	// Config errors
	CodeConfigMissing Code = "CONFIG_MISSING"

	// Sync errors
	CodeSyncIncomplete Code = "SYNC_INCOMPLETE"
)

// UserError is the structured error type surfaced to CLI users.
type UserError struct {
	Code    Code
	What    string
	Why     string
	Fix     string
	DocsURL string
	Cause   error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString(": ")
		b.WriteString(e.Why)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *UserError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly message for CLI output.
func (e *UserError) UserMessage() string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString("\n\nWhy: ")
		b.WriteString(e.Why)
	}
	if e.Fix != "" {
		b.WriteString("\n\nFix: ")
		b.WriteString(e.Fix)
	}
	if e.DocsURL != "" {
		b.WriteString("\n\nDocs: ")
		b.WriteString(e.DocsURL)
	}
	return b.String()
}

// Is reports whether target is a UserError with the same code.
func (e *UserError) Is(target error) bool {
	t, ok := target.(*UserError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *UserError) WithCause(err error) *UserError {
	return &UserError{
		Code:    e.Code,
		What:    e.What,
		Why:     e.Why,
		Fix:     e.Fix,
		DocsURL: e.DocsURL,
		Cause:   err,
	}
}

// --- Error constructors ---

// ErrNoTodoFile returns an error when no todo file exists in dir.
func ErrNoTodoFile(dir string) *UserError {
	return &UserError{
		Code:    CodeNoTodoFile,
		What:    "no todo file found",
		Why:     fmt.Sprintf("Looked for TODO.md, todo.md, Todo.md in %s", dir),
		Fix:     "Run 'todui create' to start a new board here",
		DocsURL: "https://github.com/randalmurphal/todui#quick-start",
	}
}

// ErrTodoFileExists returns an error when create would overwrite a board.
func ErrTodoFileExists(path string) *UserError {
	return &UserError{
		Code:    CodeTodoFileExists,
		What:    "todo file already exists",
		Why:     fmt.Sprintf("Found existing %s", path),
		Fix:     "Edit the existing file, or remove it before running 'todui create'",
		DocsURL: "https://github.com/randalmurphal/todui#quick-start",
	}
}

// ErrConfigMissing returns an error when sync credentials are incomplete.
func ErrConfigMissing(path string, fields []string) *UserError {
	return &UserError{
		Code:    CodeConfigMissing,
		What:    "sync is not configured",
		Why:     fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", ")),
		Fix:     fmt.Sprintf("Run 'todui config init' and fill in %s", path),
		DocsURL: "https://github.com/randalmurphal/todui#configuration",
	}
}

// ErrSyncIncomplete returns an error when some remote operations failed.
// Applied changes are never rolled back, so the fix is a re-run.
func ErrSyncIncomplete(op string, failed int) *UserError {
	return &UserError{
		Code:    CodeSyncIncomplete,
		What:    fmt.Sprintf("%s finished with %d failed operations", op, failed),
		Why:     "The remote rejected or dropped part of the plan; applied changes were kept",
		Fix:     fmt.Sprintf("Check the errors above, then re-run 'todui %s'", op),
		DocsURL: "https://github.com/randalmurphal/todui#sync",
	}
}

// AsUserError attempts to convert an error to a UserError.
// Returns nil if the error is not a UserError.
func AsUserError(err error) *UserError {
	var uerr *UserError
	if stderrors.As(err, &uerr) {
		return uerr
	}
	return nil
}

// Wrap wraps a generic error into a UserError with unknown code.
func Wrap(err error, what string) *UserError {
	return &UserError{
		Code:  Code("UNKNOWN"),
		What:  what,
		Cause: err,
	}
}
