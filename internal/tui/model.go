package tui

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngtk/vim-flavor/internal/ui/style"
	"github.com/vito/progrock"
)

const (
	statusRunning  = "running"
	statusResolved = "resolved"
	statusLocked   = "locked"
	statusFailed   = "failed"
)

// VertexState is the view of one flavor being resolved.
type VertexState struct {
	ID     string
	Name   string
	Status string
	// Detail is the last line the flavor logged, or its failure.
	Detail string
}

type styles struct {
	running  lipgloss.Style
	resolved lipgloss.Style
	locked   lipgloss.Style
	failed   lipgloss.Style
	detail   lipgloss.Style
}

// Model is the Bubble Tea model listing flavors in the order they started.
type Model struct {
	source   ProgressSource
	vertices []VertexState
	index    map[string]int
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
	done     bool
}

// NewModel creates a new TUI model reading updates from source.
func NewModel(source ProgressSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Pending)

	return &Model{
		source:  source,
		index:   make(map[string]int),
		spinner: s,
		styles: styles{
			running:  lipgloss.NewStyle().Foreground(style.Pending),
			resolved: lipgloss.NewStyle().Foreground(style.Success),
			locked:   lipgloss.NewStyle().Foreground(style.Muted),
			failed:   lipgloss.NewStyle().Foreground(style.Failure),
			detail:   lipgloss.NewStyle().Foreground(style.Muted).Faint(true),
		},
	}
}

// Init initializes the model and starts reading progress.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForProgress(m.source),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgProgress:
		m.apply(msg.Update)
		return m, WaitForProgress(m.source)
	case MsgProgressDone:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		m.applyVertex(v)
	}
	for _, l := range update.Logs {
		i, ok := m.index[l.Vertex]
		if !ok {
			continue
		}
		if line := lastLine(l.Data); line != "" && m.vertices[i].Status == statusRunning {
			m.vertices[i].Detail = line
		}
	}
}

func (m *Model) applyVertex(v *progrock.Vertex) {
	i, ok := m.index[v.Id]
	if !ok {
		i = len(m.vertices)
		m.index[v.Id] = i
		m.vertices = append(m.vertices, VertexState{ID: v.Id, Name: v.Name, Status: statusRunning})
	}

	if v.Completed == nil {
		return
	}
	switch {
	case v.Error != nil:
		m.vertices[i].Status = statusFailed
		m.vertices[i].Detail = *v.Error
	case v.Cached:
		m.vertices[i].Status = statusLocked
	default:
		m.vertices[i].Status = statusResolved
	}
}

func lastLine(data []byte) string {
	lines := bytes.Split(bytes.TrimRight(data, "\r\n"), []byte("\n"))
	return strings.TrimSpace(string(lines[len(lines)-1]))
}
