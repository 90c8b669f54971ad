package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex on a *progrock.VertexRecorder.
// It finishes at most once.
type Vertex struct {
	vertex *progrock.VertexRecorder
	done   func()
	once   sync.Once
}

// Stdout returns the vertex's output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex's error stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes msg to the output stream tagged with its level.
// Warnings and errors go to the error stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level.IsProblem() {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level, msg)
}

// Complete finishes the vertex, recording err as its failure.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.vertex.Done(err)
		v.done()
	})
}

// Cached finishes the vertex as satisfied without work.
func (v *Vertex) Cached() {
	v.once.Do(func() {
		v.vertex.Cached()
		v.vertex.Done(nil)
		v.done()
	})
}
