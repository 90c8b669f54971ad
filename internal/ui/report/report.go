// Package report renders lockfile changes for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/ui/output"
	"github.com/ngtk/vim-flavor/internal/ui/style"
)

// Writer prints change sets produced by domain.Diff.
type Writer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// New creates a Writer printing to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w, renderer: output.NewRenderer(w)}
}

// Changes prints one line per change followed by a summary.
// Unchanged flavors are listed only when nothing else changed.
func (rw *Writer) Changes(changes []domain.Change) error {
	var b strings.Builder
	counts := make(map[domain.ChangeKind]int, 5)
	for _, c := range changes {
		counts[c.Kind]++
	}
	quiet := len(changes) == counts[domain.ChangeUnchanged]

	for _, c := range changes {
		if c.Kind == domain.ChangeUnchanged && !quiet {
			continue
		}
		b.WriteString(rw.line(c))
		b.WriteByte('\n')
	}
	b.WriteString(rw.summary(len(changes), counts))
	b.WriteByte('\n')

	_, err := io.WriteString(rw.w, b.String())
	return err
}

func (rw *Writer) line(c domain.Change) string {
	var (
		icon  string
		color lipgloss.Color
		text  string
	)
	switch c.Kind {
	case domain.ChangeAdded:
		icon, color = style.Added, style.Success
		text = fmt.Sprintf("%s %s", c.Repo, c.Next)
	case domain.ChangeRemoved:
		icon, color = style.Removed, style.Failure
		text = fmt.Sprintf("%s %s", c.Repo, c.Previous)
	case domain.ChangeUpgraded:
		icon, color = style.Upgraded, style.Accent
		text = fmt.Sprintf("%s %s -> %s", c.Repo, c.Previous, c.Next)
	case domain.ChangeDowngraded:
		icon, color = style.Downgraded, style.Pending
		text = fmt.Sprintf("%s %s -> %s", c.Repo, c.Previous, c.Next)
	default:
		icon, color = style.Dot, style.Muted
		text = fmt.Sprintf("%s %s", c.Repo, c.Next)
	}
	return "  " + rw.renderer.NewStyle().Foreground(color).Render(icon+" "+text)
}

func (rw *Writer) summary(total int, counts map[domain.ChangeKind]int) string {
	check := rw.renderer.NewStyle().Foreground(style.Success).Render(style.Check)
	if total == counts[domain.ChangeUnchanged] {
		return fmt.Sprintf("%s Lockfile is up to date (%s)", check, plural(total, "flavor"))
	}

	var parts []string
	for _, k := range []domain.ChangeKind{
		domain.ChangeAdded,
		domain.ChangeRemoved,
		domain.ChangeUpgraded,
		domain.ChangeDowngraded,
	} {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}
	locked := total - counts[domain.ChangeRemoved]
	return fmt.Sprintf("%s Locked %s (%s)", check, plural(locked, "flavor"), strings.Join(parts, ", "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
