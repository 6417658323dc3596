// Package pathlist reads the include and exclude list files: plain text,
// one path per line, # comments.
package pathlist

import (
	"fmt"
	"os"
	"strings"
)

const commentMarker = "#"

// Load reads a list file into its usable path tokens. A missing file is
// an empty list, not an error. The whole content is trimmed before the
// line split, a line whose first character is # is dropped entirely, and
// an inline # truncates the line at the marker. A line left empty after
// comment stripping still yields an empty token; callers see the list
// exactly as written.
func Load(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading list file: %w", err)
	}

	content := strings.TrimSpace(string(raw))
	if content == "" {
		return nil, nil
	}

	var paths []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, commentMarker) {
			continue
		}
		token, _, _ := strings.Cut(line, commentMarker)
		paths = append(paths, strings.TrimSpace(token))
	}
	return paths, nil
}

// LoadExclude reads an exclude list and renders every surviving line as
// a single "--exclude PATH" token, one per line, ready for the create
// command.
func LoadExclude(path string) ([]string, error) {
	paths, err := Load(path)
	if err != nil {
		return nil, err
	}

	var tokens []string
	for _, p := range paths {
		tokens = append(tokens, "--exclude "+p)
	}
	return tokens, nil
}
