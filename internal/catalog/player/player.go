// Package player adapts the catalog client to core.Player so remote
// playback can stand in wherever the local sample player does.
package player

import (
	"context"
	"time"

	"github.com/lilt-audio/lilt/internal/catalog/client"
	"github.com/lilt-audio/lilt/internal/core"
)

// Player implements core.Player for the remote catalog service.
type Player struct {
	client *client.Client
}

// New creates a new catalog player.
func New(c *client.Client) *Player {
	return &Player{client: c}
}

// Play starts or resumes remote playback.
func (p *Player) Play(ctx context.Context) error {
	return p.client.Play(ctx, nil)
}

// PlayURI starts remote playback of a specific track URI.
func (p *Player) PlayURI(ctx context.Context, uri string) error {
	return p.client.Play(ctx, &client.PlayOptions{
		URIs: []string{uri},
	})
}

// Pause pauses remote playback.
func (p *Player) Pause(ctx context.Context) error {
	return p.client.Pause(ctx)
}

// State returns the current remote playback state.
func (p *Player) State(ctx context.Context) (*core.PlaybackState, error) {
	state, err := p.client.GetPlayerState(ctx)
	if err != nil {
		return nil, err
	}

	if state == nil {
		return &core.PlaybackState{Source: core.SourceCatalog}, nil
	}

	coreState := &core.PlaybackState{
		Source:    core.SourceCatalog,
		IsPlaying: state.IsPlaying,
		Progress:  time.Duration(state.ProgressMS) * time.Millisecond,
	}

	if state.Item != nil {
		coreState.Track = convertTrack(state.Item)
	}

	return coreState, nil
}

// convertTrack converts a catalog track to a core track.
func convertTrack(t *client.Track) *core.Track {
	if t == nil {
		return nil
	}

	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}

	artist := ""
	if len(artists) > 0 {
		artist = artists[0]
	}

	return &core.Track{
		ID:       t.ID,
		URI:      t.URI,
		Title:    t.Name,
		Artist:   artist,
		Artists:  artists,
		Album:    t.Album.Name,
		Duration: time.Duration(t.DurationMS) * time.Millisecond,
		Source:   core.SourceCatalog,
	}
}

// Ensure Player implements core.Player
var _ core.Player = (*Player)(nil)
