// Package progrock records resolution progress on a progrock tape.
package progrock

import (
	"context"
	"errors"
	"sync"

	"github.com/ngtk/vim-flavor/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

var _ ports.Telemetry = (*Recorder)(nil)

// errInterrupted finishes vertices still open when the recording closes.
var errInterrupted = errors.New("interrupted before completion")

// Recorder implements ports.Telemetry. Each recorded name becomes one vertex,
// keyed by the digest of the name.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu   sync.Mutex
	open map[digest.Digest]*Vertex
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:    w,
		rec:  progrock.NewRecorder(w),
		open: make(map[digest.Digest]*Vertex),
	}
}

// Record starts a vertex for name and stores it in the returned context.
// Recording the same name twice returns the vertex already open.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)

	r.mu.Lock()
	v, ok := r.open[d]
	if !ok {
		v = &Vertex{vertex: r.rec.Vertex(d, name), done: func() { r.finish(d) }}
		r.open[d] = v
	}
	r.mu.Unlock()

	return ports.ContextWithVertex(ctx, v), v
}

func (r *Recorder) finish(d digest.Digest) {
	r.mu.Lock()
	delete(r.open, d)
	r.mu.Unlock()
}

// Pending returns how many vertices have not finished.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// Close fails every unfinished vertex, then closes the writer.
// Calling it again only closes the writer again.
func (r *Recorder) Close() error {
	r.mu.Lock()
	open := make([]*Vertex, 0, len(r.open))
	for _, v := range r.open {
		open = append(open, v)
	}
	r.mu.Unlock()

	for _, v := range open {
		v.Complete(errInterrupted)
	}

	return r.w.Close()
}
