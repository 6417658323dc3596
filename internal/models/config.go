package models

// DefaultSection is the name of the implicit section whose keys are
// inherited by every other section of the config file.
const DefaultSection = "DEFAULT"

// NullMarker is the reserved string meaning "unset". It survives the
// raw config untouched and is filtered out of the typed view.
const NullMarker = "None"

// RetentionPrefix marks keys holding retention counts. Their values are
// numeric strings and must never be boolean-converted.
const RetentionPrefix = "keep-"

// RawSection is one section of the persisted config: string values only,
// key order preserved as stored.
type RawSection struct {
	Keys   []string
	Values map[string]string
}

// NewRawSection returns an empty section.
func NewRawSection() *RawSection {
	return &RawSection{Values: map[string]string{}}
}

// Set stores a value, appending the key to the order on first sight.
func (s *RawSection) Set(key, value string) {
	if _, ok := s.Values[key]; !ok {
		s.Keys = append(s.Keys, key)
	}
	s.Values[key] = value
}

// Get returns the stored value and whether the key exists.
func (s *RawSection) Get(key string) (string, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// RawConfig is the string-typed configuration as persisted, with the
// DEFAULT section first and section/key order preserved.
type RawConfig struct {
	Names    []string
	Sections map[string]*RawSection
}

// NewRawConfig returns a config containing only an empty DEFAULT section.
func NewRawConfig() *RawConfig {
	c := &RawConfig{Sections: map[string]*RawSection{}}
	c.Section(DefaultSection)
	return c
}

// Section returns the named section, creating it if needed.
func (c *RawConfig) Section(name string) *RawSection {
	if s, ok := c.Sections[name]; ok {
		return s
	}
	s := NewRawSection()
	c.Names = append(c.Names, name)
	c.Sections[name] = s
	return s
}

// Has reports whether the section exists.
func (c *RawConfig) Has(name string) bool {
	_, ok := c.Sections[name]
	return ok
}

// LookupSpec is an ordered batch-lookup request: iteration order is the
// spec's section order, then each section's key order. Call sites unpack
// the result positionally, so the order is part of the contract.
type LookupSpec []LookupSection

// LookupSection names one section and the keys wanted from it, in order.
type LookupSection struct {
	Section string
	Keys    []string
}
