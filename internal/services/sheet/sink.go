package sheet

import (
	"log/slog"
	"slices"
)

// Fields is a projected sheet: text values and checked boxes by field name
type Fields struct {
	Text    map[string]string `json:"text"`
	Checked map[string]bool   `json:"checked"`
}

// NewFields returns an empty field set
func NewFields() *Fields {
	return &Fields{
		Text:    make(map[string]string),
		Checked: make(map[string]bool),
	}
}

// SetText records a text value
func (f *Fields) SetText(name, value string) {
	f.Text[name] = value
}

// SetChecked records a checked box
func (f *Fields) SetChecked(name string) {
	f.Checked[name] = true
}

// Apply writes every field onto a sink in name order. Write failures are logged
// and skipped; the number of failed writes is returned.
func (f *Fields) Apply(sink FieldSink) int {
	failed := 0

	names := make([]string, 0, len(f.Text))
	for name := range f.Text {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := sink.SetText(name, f.Text[name]); err != nil {
			slog.Warn("Failed to write sheet field", "field", name, "error", err)
			failed++
		}
	}

	boxes := make([]string, 0, len(f.Checked))
	for name, checked := range f.Checked {
		if checked {
			boxes = append(boxes, name)
		}
	}
	slices.Sort(boxes)
	for _, name := range boxes {
		if err := sink.SetChecked(name); err != nil {
			slog.Warn("Failed to check sheet box", "field", name, "error", err)
			failed++
		}
	}

	return failed
}

// MapSink is an in-memory FieldSink. Checked boxes are stored as true.
type MapSink struct {
	known  map[string]bool
	Values map[string]any
}

// NewMapSink creates a sink that accepts the given field names, or every name when none are given
func NewMapSink(known ...string) *MapSink {
	s := &MapSink{Values: make(map[string]any)}
	if len(known) > 0 {
		s.known = make(map[string]bool, len(known))
		for _, name := range known {
			s.known[name] = true
		}
	}
	return s
}

func (s *MapSink) accepts(name string) bool {
	return s.known == nil || s.known[name]
}

// SetText implements FieldSink
func (s *MapSink) SetText(name, value string) error {
	if s.accepts(name) {
		s.Values[name] = value
	}
	return nil
}

// SetChecked implements FieldSink
func (s *MapSink) SetChecked(name string) error {
	if s.accepts(name) {
		s.Values[name] = true
	}
	return nil
}

var _ FieldSink = (*MapSink)(nil)
