package portfolio

import (
	"fmt"
	"strings"
)

// ValidationError describes one problem with a content payload.
type ValidationError struct {
	Field   string // e.g. "projects[2].name"
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found by Validate.
type ValidationErrors []*ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return "invalid portfolio content: " + v[0].Error()
	}
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("invalid portfolio content (%d problems): %s", len(v), strings.Join(parts, "; "))
}

// Fields returns the offending field paths, in the order they were found.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, len(v))
	for i, e := range v {
		fields[i] = e.Field
	}
	return fields
}
