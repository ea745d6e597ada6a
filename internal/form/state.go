package form

// ValueKind discriminates the two shapes a form value can take.
type ValueKind int

const (
	KindText ValueKind = iota
	KindFiles
)

// FileRef identifies one attached file without holding its content.
type FileRef struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Value is the tagged union over the two value shapes: a text value for all
// scalar field types, or an ordered file list for file fields.
type Value struct {
	Kind  ValueKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Files []FileRef `json:"files,omitempty"`
}

// TextValue wraps a scalar input value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// FilesValue wraps an ordered file selection.
func FilesValue(refs []FileRef) Value {
	return Value{Kind: KindFiles, Files: refs}
}

// Empty reports whether the value carries no user input.
func (v Value) Empty() bool {
	if v.Kind == KindFiles {
		return len(v.Files) == 0
	}
	return v.Text == ""
}

// State maps field name to its current value for one form instance. It is
// created empty when a form is entered and discarded when the user navigates
// away without submitting.
type State map[string]Value

// NewState returns an empty form state.
func NewState() State {
	return make(State)
}

// Apply returns a new State with exactly the named field replaced by value;
// every other entry is untouched. The receiver is never mutated, so callers
// holding the prior state still see the old value.
func (s State) Apply(name string, value Value) State {
	next := make(State, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[name] = value
	return next
}

// SetFiles replaces (never appends to) the prior file selection for a field.
func (s State) SetFiles(name string, refs []FileRef) State {
	return s.Apply(name, FilesValue(refs))
}

// Get returns the value for a field and whether one has been entered.
func (s State) Get(name string) (Value, bool) {
	v, ok := s[name]
	return v, ok
}

// Flatten produces the JSON-serializable shape persisted as
// application_data: scalar fields map to their text, file fields to the
// ordered list of file names.
func (s State) Flatten() map[string]any {
	out := make(map[string]any, len(s))
	for name, v := range s {
		if v.Kind == KindFiles {
			names := make([]string, 0, len(v.Files))
			for _, f := range v.Files {
				names = append(names, f.Name)
			}
			out[name] = names
			continue
		}
		out[name] = v.Text
	}
	return out
}
