package config

import (
	"strings"

	"github.com/borgini/borgini/internal/models"
)

// View is the typed, queryable form of a raw config. It is derived
// once per run by Convert and never written back; the string wire
// format stops at the Store boundary.
type View struct {
	names    []string
	sections map[string]*typedSection
}

type typedSection struct {
	keys   []string
	values map[string]models.Value
}

// Convert derives the typed view from raw string values, in order:
// inheritance suppression (a non-default section owns only the keys not
// present in the DEFAULT section), null-marker filtering, boolean
// conversion, and finally dropping any section left empty.
//
// Only the literals true/false (any case) convert to booleans. Keys
// under the retention prefix are exempt from conversion so numeric
// retention counts always pass through as strings. Anything else that
// fails the boolean parse stays a string; conversion never errors.
func Convert(raw *models.RawConfig) *View {
	view := &View{sections: map[string]*typedSection{}}
	defaults := raw.Sections[models.DefaultSection]

	for _, name := range raw.Names {
		section := raw.Sections[name]
		typed := &typedSection{values: map[string]models.Value{}}

		for _, key := range section.Keys {
			if name != models.DefaultSection {
				if _, inherited := defaults.Get(key); inherited {
					continue
				}
			}
			value := section.Values[key]
			if value == models.NullMarker {
				continue
			}
			typed.keys = append(typed.keys, key)
			typed.values[key] = convertValue(key, value)
		}

		if len(typed.keys) == 0 {
			continue
		}
		view.names = append(view.names, name)
		view.sections[name] = typed
	}

	return view
}

func convertValue(key, value string) models.Value {
	if strings.HasPrefix(key, models.RetentionPrefix) {
		return models.Text(value)
	}
	switch {
	case strings.EqualFold(value, "true"):
		return models.Bool(true)
	case strings.EqualFold(value, "false"):
		return models.Bool(false)
	default:
		return models.Text(value)
	}
}

// GetKey returns the value at section/key, or Absent when either is
// missing post-conversion. Absent means "not configured", never an
// error.
func (v *View) GetKey(section, key string) models.Value {
	typed, ok := v.sections[section]
	if !ok {
		return models.Absent
	}
	value, ok := typed.values[key]
	if !ok {
		return models.Absent
	}
	return value
}

// GetMany looks up every key named by spec, preserving the spec's
// section order and each section's key order so the result can be
// unpacked positionally.
func (v *View) GetMany(spec models.LookupSpec) []models.Value {
	var values []models.Value
	for _, section := range spec {
		for _, key := range section.Keys {
			values = append(values, v.GetKey(section.Section, key))
		}
	}
	return values
}

// RenderFlags renders a section as command-line tokens: one --key token
// for every boolean-true value, then one "--key value" token for every
// string value, each group in the section's stored key order. A false
// boolean is simply omitted. The two-pass ordering is an observable
// contract with the external tool.
func (v *View) RenderFlags(section string) []string {
	typed, ok := v.sections[section]
	if !ok {
		return nil
	}

	var flags []string
	for _, key := range typed.keys {
		if typed.values[key].IsTrue() {
			flags = append(flags, "--"+key)
		}
	}
	for _, key := range typed.keys {
		if value := typed.values[key]; value.Kind() == models.KindText {
			flags = append(flags, "--"+key+" "+value.Text())
		}
	}
	return flags
}

// Sections returns the section names that survived conversion, in
// stored order.
func (v *View) Sections() []string {
	return v.names
}

// SectionItems returns a section's keys in stored order. Used by the
// profile listing to print resolved values.
func (v *View) SectionItems(section string) []string {
	typed, ok := v.sections[section]
	if !ok {
		return nil
	}
	return typed.keys
}
