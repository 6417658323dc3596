package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/borgini/borgini/internal/models"
)

// loadOptions matches the persisted format: values are taken verbatim,
// an inline # or ; is part of the value, not a comment.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
}

// The wire format is exactly "key = value": no per-section alignment
// padding around the = sign.
func init() {
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// Store persists one profile's config.ini and repairs it against the
// default schema on every read. The file is not locked; concurrent runs
// against the same profile may race on the read-repair-write cycle.
type Store struct {
	path string
}

// NewStore returns a store for the config file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the backing file is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Init writes the default schema verbatim to the backing file.
func (s *Store) Init() error {
	return s.Write(Defaults())
}

// Read loads the backing file and reconciles it against the default
// schema. A missing file behaves as if empty. Every schema key is
// present in the result, filled from its default when the file lacks
// it. Loaded keys are copied over the defaults only when the section is
// DEFAULT or the key is not defined in the loaded DEFAULT section; this
// keeps a stray same-named key in another section from shadowing an
// inherited default. Sections and keys unknown to the schema are not
// copied at all, so the next Write drops them from the file.
func (s *Store) Read() (*models.RawConfig, error) {
	cfg := Defaults()
	if !s.Exists() {
		return cfg, nil
	}

	file, err := ini.LoadSources(loadOptions, s.path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loadedDefault := file.Section(models.DefaultSection)
	for _, section := range file.Sections() {
		target, ok := cfg.Sections[section.Name()]
		if !ok {
			continue
		}
		for _, key := range section.KeyStrings() {
			if section.Name() != models.DefaultSection && loadedDefault.HasKey(key) {
				continue
			}
			if _, known := target.Get(key); !known {
				continue
			}
			target.Set(key, section.Key(key).Value())
		}
	}

	return cfg, nil
}

// Write serializes cfg back to the backing file as a full overwrite.
// Read followed by Write is idempotent after the first repair pass: the
// second cycle leaves the file byte-for-byte stable.
func (s *Store) Write(cfg *models.RawConfig) error {
	file := ini.Empty()
	for _, name := range cfg.Names {
		section := file.Section(name)
		raw := cfg.Sections[name]
		for _, key := range raw.Keys {
			section.Key(key).SetValue(raw.Values[key])
		}
	}

	if err := file.SaveTo(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
