// Package highlight prints config and command text with terminal syntax
// highlighting. The style comes from the profile's styles file.
package highlight

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// DefaultStyle is used when the styles file is missing or has no
// uncommented selection.
const DefaultStyle = "default"

// Printer renders text through chroma with a fixed style, ini-style for
// config files and shell-style for command previews.
type Printer struct {
	style string
	out   io.Writer
}

// New returns a printer styled per the styles file at path, writing to
// out.
func New(stylesPath string, out io.Writer) *Printer {
	return &Printer{style: ReadStyle(stylesPath), out: out}
}

// NewWithStyle returns a printer with an explicit style name.
func NewWithStyle(style string, out io.Writer) *Printer {
	return &Printer{style: style, out: out}
}

// ReadStyle parses the styles file: KEY="value" lines, first uncommented
// line wins, everything else is ignored. Any read problem falls back to
// the default style; the styles file is cosmetic and never fatal.
func ReadStyle(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return DefaultStyle
	}

	for _, line := range strings.Split(string(raw), "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, value, ok := strings.Cut(line, "="); ok {
			return strings.TrimSpace(strings.ReplaceAll(value, `"`, ""))
		}
	}
	return DefaultStyle
}

// Style returns the resolved style name.
func (p *Printer) Style() string {
	return p.style
}

// Ini prints text highlighted as an ini file.
func (p *Printer) Ini(text string) {
	p.print(text, "ini")
}

// Shell prints text highlighted as shell input.
func (p *Printer) Shell(text string) {
	p.print(text, "bash")
}

func (p *Printer) print(text, lexer string) {
	if text == "" {
		return
	}
	if err := quick.Highlight(p.out, text, lexer, "terminal256", p.style); err != nil {
		fmt.Fprint(p.out, text)
	}
	fmt.Fprintln(p.out)
}
