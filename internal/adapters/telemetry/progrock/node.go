package progrock

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/adapters/detector"
	"github.com/ngtk/vim-flavor/internal/adapters/linear"
	"github.com/ngtk/vim-flavor/internal/adapters/settings"
	"github.com/ngtk/vim-flavor/internal/adapters/telemetry"
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"github.com/ngtk/vim-flavor/internal/tui"
	vprogrock "github.com/vito/progrock"
)

const (
	// NodeID is the graft node providing ports.Telemetry.
	NodeID graft.ID = "adapter.telemetry.progrock"
)

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			s, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}

			mode := detector.ResolveMode(detector.DetectEnvironment(), s.Output)
			if mode == detector.ModeQuiet {
				return telemetry.NewNoOp(), nil
			}
			return NewRecorder(writerFor(mode)), nil
		},
	})
}

// writerFor returns the progress display for mode.
func writerFor(mode detector.OutputMode) vprogrock.Writer {
	if mode == detector.ModeTUI {
		return tui.NewDisplay(os.Stderr)
	}
	return linear.NewWriter(os.Stderr)
}
