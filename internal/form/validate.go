package form

import (
	"fmt"
	"strings"
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates all field failures of one validation pass.
// A non-nil ValidationError blocks submission; nothing is persisted.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "form validation failed: " + strings.Join(parts, "; ")
}

// Validate checks state against the descriptors. It reports every required
// field with an empty or absent value and every value whose kind does not
// match its descriptor's type category. Values for names not present in the
// descriptors are reported as unknown fields.
func Validate(descriptors []FieldDescriptor, state State) *ValidationError {
	var errs []FieldError

	byName := make(map[string]FieldDescriptor, len(descriptors))
	for _, d := range descriptors {
		byName[d.Name] = d
	}

	for _, d := range descriptors {
		v, ok := state.Get(d.Name)
		if !ok || v.Empty() {
			if d.Required {
				errs = append(errs, FieldError{Field: d.Name, Reason: "required"})
			}
			continue
		}
		if d.Type.IsFileKind() != (v.Kind == KindFiles) {
			errs = append(errs, FieldError{Field: d.Name, Reason: "value kind does not match field type"})
			continue
		}
		if d.Type == FieldDropdown && len(d.Options) > 0 && !contains(d.Options, v.Text) {
			errs = append(errs, FieldError{Field: d.Name, Reason: "value is not one of the configured options"})
		}
	}

	for name := range state {
		if _, ok := byName[name]; !ok {
			errs = append(errs, FieldError{Field: name, Reason: "unknown field"})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}

func contains(opts []string, s string) bool {
	for _, o := range opts {
		if o == s {
			return true
		}
	}
	return false
}
