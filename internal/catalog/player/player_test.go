package player

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lilt-audio/lilt/internal/catalog/client"
	"github.com/lilt-audio/lilt/internal/core"
)

func TestConvertTrack(t *testing.T) {
	catalogTrack := &client.Track{
		ID:         "track123",
		URI:        "catalog:track:track123",
		Name:       "Test Song",
		DurationMS: 180000,
		Artists: []client.Artist{
			{Name: "Artist One"},
			{Name: "Artist Two"},
		},
		Album: client.Album{
			Name: "Test Album",
		},
	}

	coreTrack := convertTrack(catalogTrack)

	if coreTrack.ID != "track123" {
		t.Errorf("ID = %q, want %q", coreTrack.ID, "track123")
	}
	if coreTrack.Title != "Test Song" {
		t.Errorf("Title = %q, want %q", coreTrack.Title, "Test Song")
	}
	if coreTrack.Artist != "Artist One" {
		t.Errorf("Artist = %q, want %q", coreTrack.Artist, "Artist One")
	}
	if len(coreTrack.Artists) != 2 {
		t.Errorf("Artists count = %d, want 2", len(coreTrack.Artists))
	}
	if coreTrack.Album != "Test Album" {
		t.Errorf("Album = %q, want %q", coreTrack.Album, "Test Album")
	}
	if coreTrack.Duration != 180*time.Second {
		t.Errorf("Duration = %v, want %v", coreTrack.Duration, 180*time.Second)
	}
	if coreTrack.Source != core.SourceCatalog {
		t.Errorf("Source = %q, want %q", coreTrack.Source, core.SourceCatalog)
	}
}

func TestConvertNilTrack(t *testing.T) {
	if got := convertTrack(nil); got != nil {
		t.Error("convertTrack(nil) != nil, want nil")
	}
}

func TestState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/player" {
			t.Errorf("path = %q, want /v1/player", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"is_playing": true,
			"progress_ms": 30000,
			"item": {
				"id": "t1",
				"name": "Midnight Drive",
				"duration_ms": 212000,
				"artists": [{"name": "The Halftones"}]
			}
		}`))
	}))
	defer srv.Close()

	p := New(client.New(client.Options{BaseURL: srv.URL}))
	state, err := p.State(context.Background())
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}

	if !state.IsPlaying {
		t.Error("IsPlaying = false, want true")
	}
	if state.Source != core.SourceCatalog {
		t.Errorf("Source = %q, want %q", state.Source, core.SourceCatalog)
	}
	if state.Progress != 30*time.Second {
		t.Errorf("Progress = %v, want %v", state.Progress, 30*time.Second)
	}
	if !state.HasTrack() || state.Track.Title != "Midnight Drive" {
		t.Errorf("Track = %+v, want Midnight Drive", state.Track)
	}
}

func TestPlayPauseEndpoints(t *testing.T) {
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := New(client.New(client.Options{BaseURL: srv.URL}))

	if err := p.Play(context.Background()); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if err := p.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if err := p.PlayURI(context.Background(), "catalog:track:t1"); err != nil {
		t.Fatalf("PlayURI() error = %v", err)
	}

	want := []string{
		"PUT /v1/player/play",
		"PUT /v1/player/pause",
		"PUT /v1/player/play",
	}
	if len(gotPaths) != len(want) {
		t.Fatalf("requests = %v, want %v", gotPaths, want)
	}
	for i := range want {
		if gotPaths[i] != want[i] {
			t.Errorf("request[%d] = %q, want %q", i, gotPaths[i], want[i])
		}
	}
}
