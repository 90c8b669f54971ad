package tui

import "github.com/vito/progrock"

// MsgProgress carries one batch of flavor vertex changes from the recorder.
type MsgProgress struct {
	Update *progrock.StatusUpdate
}

// MsgProgressDone tells the model that resolution finished and no rows will change.
type MsgProgressDone struct{}
