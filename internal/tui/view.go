package tui

import (
	"fmt"
	"strings"

	"github.com/ngtk/vim-flavor/internal/ui/style"
)

// View renders one line per flavor. When the terminal is too short the
// oldest lines scroll away.
func (m *Model) View() string {
	var s strings.Builder

	start := 0
	if m.height > 0 && len(m.vertices) > m.height {
		start = len(m.vertices) - m.height
	}

	for _, v := range m.vertices[start:] {
		var icon string
		st := m.styles.running
		switch v.Status {
		case statusResolved:
			icon, st = style.Check, m.styles.resolved
		case statusLocked:
			icon, st = style.Dot, m.styles.locked
		case statusFailed:
			icon, st = style.Cross, m.styles.failed
		default:
			icon = m.spinner.View()
			if m.done {
				icon = style.Warning
			}
		}

		line := fmt.Sprintf("%s %s", st.Render(icon), v.Name)
		if v.Detail != "" {
			line += " " + m.styles.detail.Render(v.Detail)
		}
		s.WriteString(line + "\n")
	}

	return s.String()
}
