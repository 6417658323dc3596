// Package models contains the data structures used throughout borgini.
package models

// Kind discriminates the semantic type of a configuration value.
type Kind int

const (
	// KindAbsent means the value is not configured.
	KindAbsent Kind = iota
	// KindBool means the value parsed as a boolean.
	KindBool
	// KindText means the value is a plain string.
	KindText
)

// Value is a tagged variant holding one typed configuration value.
// Persisted values are always strings; conversion to Bool or Absent
// happens only inside the typed view.
type Value struct {
	kind Kind
	b    bool
	s    string
}

// Absent is the zero Value, returned for anything not configured.
var Absent = Value{}

// Bool wraps a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Text wraps a string value.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether the value is not configured.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// IsTrue reports whether the value is the boolean true.
func (v Value) IsTrue() bool {
	return v.kind == KindBool && v.b
}

// Bool returns the boolean payload. Only meaningful when Kind is KindBool.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Text returns the string payload. Only meaningful when Kind is KindText.
func (v Value) Text() string {
	if v.kind == KindText {
		return v.s
	}
	return ""
}

// String renders the value in the wire format used by the config file.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindText:
		return v.s
	default:
		return "None"
	}
}
