// Package profile manages the per-profile configuration directories: one
// directory per profile holding config.ini, the include and exclude
// lists, and the styles file.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
)

// File names inside a profile directory.
const (
	ConfigFile  = "config.ini"
	IncludeFile = "include"
	ExcludeFile = "exclude"
	StylesFile  = "styles"
)

// DefaultProfile is the profile used when none is selected.
const DefaultProfile = "default"

// Root returns the directory holding all profiles: the system config
// root when running as root, the user's XDG config home otherwise.
func Root() string {
	if os.Geteuid() == 0 {
		return filepath.Join("/etc", "xdg", "borgini")
	}
	return filepath.Join(xdg.ConfigHome, "borgini")
}

// Data resolves the files belonging to one profile.
type Data struct {
	dir string
}

// New returns the data for the named profile under root.
func New(root, name string) *Data {
	return &Data{dir: filepath.Join(root, name)}
}

// Dir returns the profile directory.
func (d *Data) Dir() string {
	return d.dir
}

// Path returns the absolute path of a file inside the profile directory.
func (d *Data) Path(name string) string {
	return filepath.Join(d.dir, name)
}

// EnsureDir creates the profile directory and any parents.
func (d *Data) EnsureDir() error {
	if err := os.MkdirAll(d.dir, 0o700); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	return nil
}

// SeedDataFiles writes the starter include, exclude and styles templates
// for any of those files that do not exist yet. config.ini is owned by
// the config store and is not seeded here.
func (d *Data) SeedDataFiles() error {
	seeds := map[string]string{
		IncludeFile: includeTemplate,
		ExcludeFile: excludeTemplate,
		StylesFile:  stylesTemplate,
	}
	for name, content := range seeds {
		path := d.Path(name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return fmt.Errorf("seeding %s: %w", name, err)
		}
	}
	return nil
}

// List returns the existing profile names with the default profile
// first and the rest sorted.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for i, name := range names {
		if name == DefaultProfile {
			names = append(names[:i], names[i+1:]...)
			names = append([]string{DefaultProfile}, names...)
			break
		}
	}
	return names, nil
}

// Remove deletes the named profile directories. A profile that does not
// exist fails the whole call before anything else is removed.
func Remove(root string, names []string) error {
	for _, name := range names {
		dir := filepath.Join(root, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("profile %q does not exist", name)
		}
	}
	for _, name := range names {
		if err := os.RemoveAll(filepath.Join(root, name)); err != nil {
			return fmt.Errorf("removing profile %q: %w", name, err)
		}
	}
	return nil
}
