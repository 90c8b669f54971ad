package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/core/ports"
)

// NodeID is the graft node providing ports.LockStore.
const NodeID graft.ID = "adapter.lockfile"

func init() {
	graft.Register(graft.Node[ports.LockStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockStore, error) {
			return NewStore(), nil
		},
	})
}
