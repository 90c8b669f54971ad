// Package output creates lipgloss renderers with consistent color handling
// across the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoColor reports whether the NO_COLOR convention asks for plain output.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// NewRenderer returns a renderer bound to w.
// Colors follow the terminal behind w and are disabled when NO_COLOR is set.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stderr
	}
	r := lipgloss.NewRenderer(w)
	if NoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
