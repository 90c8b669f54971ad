// Package linear prints resolution progress as prefixed lines for CI logs.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Writer)(nil)

// Writer implements progrock.Writer. Every line a vertex logs is printed with
// the vertex name as prefix, followed by one line when the vertex finishes.
type Writer struct {
	out    io.Writer
	output *termenv.Output

	mu      sync.Mutex
	names   map[string]string
	done    map[string]bool
	buffers map[string]*bytes.Buffer
}

// NewWriter creates a Writer printing to out, or stderr when out is nil.
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = os.Stderr
	}
	return &Writer{
		out:     out,
		output:  termenv.NewOutput(out, termenv.WithProfile(colorProfile())),
		names:   make(map[string]string),
		done:    make(map[string]bool),
		buffers: make(map[string]*bytes.Buffer),
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// WriteStatus prints the logs and completions carried by update.
func (w *Writer) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, ok := w.names[v.Id]; !ok {
			w.names[v.Id] = v.Name
		}
	}

	for _, l := range update.Logs {
		w.writeLogLocked(l.Vertex, l.Data)
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true
		w.flushLocked(v.Id)
		w.completeLocked(v)
	}
	return nil
}

// Close prints any partial lines still buffered.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id := range w.buffers {
		w.flushLocked(id)
	}
	return nil
}

func (w *Writer) writeLogLocked(id string, data []byte) {
	buf, ok := w.buffers[id]
	if !ok {
		buf = new(bytes.Buffer)
		w.buffers[id] = buf
	}
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Keep the partial line for the next write.
			buf.Reset()
			buf.Write(line)
			return
		}
		w.printLineLocked(id, line)
	}
}

func (w *Writer) flushLocked(id string) {
	buf, ok := w.buffers[id]
	if !ok || buf.Len() == 0 {
		return
	}
	w.printLineLocked(id, buf.Bytes())
	buf.Reset()
}

func (w *Writer) printLineLocked(id string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w.out, "%s %s\n", w.prefix(id), line)
}

func (w *Writer) completeLocked(v *progrock.Vertex) {
	prefix := w.prefix(v.Id)

	switch {
	case v.Error != nil:
		symbol := w.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(w.out, "%s %s Failed: %s\n", prefix, symbol, *v.Error)
	case v.Cached:
		symbol := w.output.String("●").Faint().String()
		_, _ = fmt.Fprintf(w.out, "%s %s Locked\n", prefix, symbol)
	default:
		symbol := w.output.String("✓").Foreground(termenv.ANSIGreen).String()
		if v.Started != nil {
			elapsed := v.Completed.AsTime().Sub(v.Started.AsTime())
			_, _ = fmt.Fprintf(w.out, "%s %s Resolved in %v\n", prefix, symbol, elapsed)
			return
		}
		_, _ = fmt.Fprintf(w.out, "%s %s Resolved\n", prefix, symbol)
	}
}

func (w *Writer) prefix(id string) string {
	name, ok := w.names[id]
	if !ok {
		name = id
	}
	return w.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
}
