// Package forms models the dashboard's create/edit modal state. Each form
// is a controlled value set: edit mode seeds from an existing record
// (parsing any JSON-text nested fields into editable rows), Validate runs
// the schema checks the backend would reject anyway, and Params re-
// serializes the state into a request for the API client.
package forms

import (
	"fmt"
	"sort"
	"strings"
)

// Form modes
const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

// ValidationError carries one message per invalid field
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.Fields[key]))
	}
	return strings.Join(parts, "; ")
}

// newValidationError returns nil when no fields failed
func newValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
