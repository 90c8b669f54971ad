// Package tui shows flavor resolution progress as a live terminal view.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// ProgressSource yields recorder updates until resolution is over.
type ProgressSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// WaitForProgress returns a command delivering the next update from src as
// MsgProgress, or MsgProgressDone once src is drained.
func WaitForProgress(src ProgressSource) tea.Cmd {
	return func() tea.Msg {
		update, err := src.Read()
		if err != nil {
			return MsgProgressDone{}
		}
		return MsgProgress{Update: update}
	}
}
