// Package form implements the metadata-driven application form engine:
// field descriptors loaded from the schema registry, the live form state,
// and validation of submitted values against the descriptors.
package form

import (
	"encoding/json"
	"fmt"
	"sort"

	"voyago/internal/domain"
)

// FieldType enumerates the supported form input kinds.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldDate     FieldType = "date"
	FieldFile     FieldType = "file"
	FieldTextarea FieldType = "textarea"
	FieldDropdown FieldType = "dropdown"
)

// ParseFieldType converts a stored field_type string into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	switch FieldType(s) {
	case FieldText, FieldEmail, FieldPhone, FieldDate, FieldFile, FieldTextarea, FieldDropdown:
		return FieldType(s), nil
	default:
		return "", fmt.Errorf("unknown field type %q", s)
	}
}

// IsFileKind reports whether values of this type are file attachments
// rather than text.
func (t FieldType) IsFileKind() bool {
	return t == FieldFile
}

// FieldDescriptor describes one form input of a country's application form.
type FieldDescriptor struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Order       int       `json:"order"`
}

// DescriptorFromRequirement builds a FieldDescriptor from a stored
// requirement row. Dropdown options are stored as a serialized JSON list;
// when that fails to parse the field degrades to having no options rather
// than failing the whole form.
func DescriptorFromRequirement(req domain.VisaRequirement) (FieldDescriptor, error) {
	ft, err := ParseFieldType(req.FieldType)
	if err != nil {
		return FieldDescriptor{}, fmt.Errorf("requirement %s: %w", req.FieldName, err)
	}

	d := FieldDescriptor{
		Name:        req.FieldName,
		Type:        ft,
		Label:       req.FieldLabel,
		Required:    req.IsRequired,
		Placeholder: req.Placeholder,
		Order:       req.OrderIndex,
	}
	if ft == FieldDropdown {
		d.Options = parseOptions(req.Options)
	}
	return d, nil
}

// Descriptors converts a set of requirement rows into descriptors sorted by
// their configured order. Rows with an unknown field type are skipped; the
// schema registry is operator-configured and a single bad row must not take
// the form down.
func Descriptors(reqs []domain.VisaRequirement) []FieldDescriptor {
	out := make([]FieldDescriptor, 0, len(reqs))
	for _, req := range reqs {
		d, err := DescriptorFromRequirement(req)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// parseOptions decodes a serialized JSON string list, returning nil on any
// malformed input.
func parseOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil
	}
	return opts
}
