package types

import (
	"fmt"
	"strings"
)

// Issue is one path-tagged validation problem. Path segments address the
// offending field the way a JSON pointer would, with array indices rendered
// as decimal strings (e.g. ["nodes", "2", "id"]).
type Issue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// String renders the issue as "path.to.field: message".
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// ResultError aggregates the issues behind a failed validation.
type ResultError struct {
	Message string  `json:"message"`
	Issues  []Issue `json:"issues"`
}

// Error implements the error interface.
func (e *ResultError) Error() string {
	if len(e.Issues) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d issues)", e.Message, len(e.Issues))
}

// Result is the uniform verdict shape shared by the agent schema validator
// and the workflow validator: success with data, or failure with issues.
type Result[T any] struct {
	Success bool         `json:"success"`
	Data    T            `json:"data,omitempty"`
	Error   *ResultError `json:"error,omitempty"`
}

// OK builds a success result carrying data.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail builds a failure result from a message and issues.
func Fail[T any](message string, issues []Issue) Result[T] {
	return Result[T]{Success: false, Error: &ResultError{Message: message, Issues: issues}}
}

// IssueAt builds an Issue from path segments and a message.
func IssueAt(message string, path ...string) Issue {
	return Issue{Path: path, Message: message}
}
