package core

import (
	"testing"
	"time"
)

func TestPlaybackStateHasTrack(t *testing.T) {
	var nilState *PlaybackState
	if nilState.HasTrack() {
		t.Error("HasTrack() = true for nil state, want false")
	}

	empty := &PlaybackState{}
	if empty.HasTrack() {
		t.Error("HasTrack() = true for state without track, want false")
	}

	playing := &PlaybackState{Track: &Track{Title: "Midnight Drive"}}
	if !playing.HasTrack() {
		t.Error("HasTrack() = false for state with track, want true")
	}
}

func TestPlaybackStateProgressPercent(t *testing.T) {
	tests := []struct {
		name  string
		state *PlaybackState
		want  float64
	}{
		{"nil state", nil, 0},
		{"no track", &PlaybackState{}, 0},
		{"zero duration", &PlaybackState{Track: &Track{}}, 0},
		{
			"halfway",
			&PlaybackState{
				Track:    &Track{Duration: 2 * time.Minute},
				Progress: time.Minute,
			},
			50,
		},
		{
			"complete",
			&PlaybackState{
				Track:    &Track{Duration: time.Minute},
				Progress: time.Minute,
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.ProgressPercent(); got != tt.want {
				t.Errorf("ProgressPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}
