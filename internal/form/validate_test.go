package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "full_name", Type: FieldText, Required: true, Order: 1},
		{Name: "email", Type: FieldEmail, Required: false, Order: 2},
		{Name: "visa_category", Type: FieldDropdown, Required: true, Options: []string{"tourist", "business"}, Order: 3},
		{Name: "passport", Type: FieldFile, Required: true, Order: 4},
	}
}

func reasonsByField(err *ValidationError) map[string]string {
	out := make(map[string]string, len(err.Fields))
	for _, f := range err.Fields {
		out[f.Field] = f.Reason
	}
	return out
}

func TestValidate_Clean(t *testing.T) {
	s := NewState().
		Apply("full_name", TextValue("Alice")).
		Apply("visa_category", TextValue("tourist")).
		SetFiles("passport", []FileRef{{Name: "a.pdf"}})

	assert.Nil(t, Validate(testDescriptors(), s))
}

func TestValidate_RequiredMissing(t *testing.T) {
	s := NewState().Apply("full_name", TextValue("Alice"))

	err := Validate(testDescriptors(), s)
	require.NotNil(t, err)
	reasons := reasonsByField(err)
	assert.Equal(t, "required", reasons["visa_category"])
	assert.Equal(t, "required", reasons["passport"])
	assert.NotContains(t, reasons, "email")
}

func TestValidate_EmptyValueCountsAsMissing(t *testing.T) {
	s := NewState().
		Apply("full_name", TextValue("")).
		Apply("visa_category", TextValue("tourist")).
		SetFiles("passport", []FileRef{{Name: "a.pdf"}})

	err := Validate(testDescriptors(), s)
	require.NotNil(t, err)
	assert.Equal(t, "required", reasonsByField(err)["full_name"])
}

func TestValidate_KindMismatch(t *testing.T) {
	s := NewState().
		Apply("full_name", TextValue("Alice")).
		Apply("visa_category", TextValue("tourist")).
		Apply("passport", TextValue("not-a-file"))

	err := Validate(testDescriptors(), s)
	require.NotNil(t, err)
	assert.Equal(t, "value kind does not match field type", reasonsByField(err)["passport"])
}

func TestValidate_DropdownValueNotInOptions(t *testing.T) {
	s := NewState().
		Apply("full_name", TextValue("Alice")).
		Apply("visa_category", TextValue("transit")).
		SetFiles("passport", []FileRef{{Name: "a.pdf"}})

	err := Validate(testDescriptors(), s)
	require.NotNil(t, err)
	assert.Equal(t, "value is not one of the configured options", reasonsByField(err)["visa_category"])
}

func TestValidate_UnknownField(t *testing.T) {
	s := NewState().
		Apply("full_name", TextValue("Alice")).
		Apply("visa_category", TextValue("tourist")).
		SetFiles("passport", []FileRef{{Name: "a.pdf"}}).
		Apply("surprise", TextValue("x"))

	err := Validate(testDescriptors(), s)
	require.NotNil(t, err)
	assert.Equal(t, "unknown field", reasonsByField(err)["surprise"])
}

func TestValidate_ErrorMessage(t *testing.T) {
	err := Validate([]FieldDescriptor{{Name: "full_name", Type: FieldText, Required: true}}, NewState())
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "full_name: required")
}
