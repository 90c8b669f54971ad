package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Display)(nil)

// Display is a progrock.Writer that renders updates through a Bubble Tea
// program. The program starts with the first update, so runs that record
// nothing never touch the terminal.
type Display struct {
	feed *Feed
	opts []tea.ProgramOption

	start   sync.Once
	stop    sync.Once
	started bool
	done    chan struct{}
	err     error
}

// NewDisplay creates a Display drawing on out.
func NewDisplay(out io.Writer, opts ...tea.ProgramOption) *Display {
	base := []tea.ProgramOption{
		tea.WithOutput(out),
		tea.WithInput(nil),
	}
	return &Display{
		feed: NewFeed(),
		opts: append(base, opts...),
		done: make(chan struct{}),
	}
}

// WriteStatus forwards update to the view, starting it if needed.
func (d *Display) WriteStatus(update *progrock.StatusUpdate) error {
	d.start.Do(d.run)
	return d.feed.WriteStatus(update)
}

func (d *Display) run() {
	d.started = true
	p := tea.NewProgram(NewModel(d.feed), d.opts...)
	go func() {
		defer close(d.done)
		_, d.err = p.Run()
	}()
}

// Close drains the remaining updates and waits for the view to exit.
func (d *Display) Close() error {
	d.start.Do(func() {})
	d.stop.Do(func() {
		_ = d.feed.Close()
	})
	if !d.started {
		return nil
	}
	<-d.done
	return d.err
}
