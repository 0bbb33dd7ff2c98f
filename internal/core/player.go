package core

import "context"

// Player defines the interface for music playback control.
type Player interface {
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	State(ctx context.Context) (*PlaybackState, error)
}
