package validator

import (
	"fmt"
	"strings"
)

// Rule couples a validation check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationError describes a single failed check on a single field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failed check from a ValidateStruct call.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Add appends a validation error.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether no checks failed.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the names of all fields that failed validation.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	seen := make(map[string]struct{}, len(e))
	for _, err := range e {
		if _, ok := seen[err.Field]; ok {
			continue
		}
		seen[err.Field] = struct{}{}
		fields = append(fields, err.Field)
	}
	return fields
}

// ByField returns the messages recorded for a single field.
func (e ValidationErrors) ByField(field string) []string {
	var msgs []string
	for _, err := range e {
		if err.Field == field {
			msgs = append(msgs, err.Message)
		}
	}
	return msgs
}

func passRule() Rule {
	return Rule{Check: func() bool { return true }}
}
