package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	s1 := NewState().Apply("full_name", TextValue("Alice"))
	s2 := s1.Apply("full_name", TextValue("Bob"))

	v1, _ := s1.Get("full_name")
	v2, _ := s2.Get("full_name")
	assert.Equal(t, "Alice", v1.Text)
	assert.Equal(t, "Bob", v2.Text)
}

func TestApply_ReplacesOnlyNamedField(t *testing.T) {
	s := NewState().
		Apply("full_name", TextValue("Alice")).
		Apply("email", TextValue("alice@example.com"))

	s = s.Apply("email", TextValue("alice@voyago.example"))

	name, _ := s.Get("full_name")
	email, _ := s.Get("email")
	assert.Equal(t, "Alice", name.Text)
	assert.Equal(t, "alice@voyago.example", email.Text)
	assert.Len(t, s, 2)
}

func TestSetFiles_ReplacesPriorSelection(t *testing.T) {
	s := NewState().SetFiles("passport", []FileRef{
		{Name: "old.pdf", Size: 100, ContentType: "application/pdf"},
	})
	s = s.SetFiles("passport", []FileRef{
		{Name: "new.pdf", Size: 200, ContentType: "application/pdf"},
	})

	v, ok := s.Get("passport")
	require.True(t, ok)
	require.Len(t, v.Files, 1)
	assert.Equal(t, "new.pdf", v.Files[0].Name)
}

func TestValueEmpty(t *testing.T) {
	assert.True(t, TextValue("").Empty())
	assert.False(t, TextValue("x").Empty())
	assert.True(t, FilesValue(nil).Empty())
	assert.False(t, FilesValue([]FileRef{{Name: "a.pdf"}}).Empty())
}

func TestFlatten(t *testing.T) {
	s := NewState().
		Apply("full_name", TextValue("Alice")).
		SetFiles("passport", []FileRef{{Name: "a.pdf"}, {Name: "b.pdf"}})

	flat := s.Flatten()
	assert.Equal(t, "Alice", flat["full_name"])
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, flat["passport"])
}
