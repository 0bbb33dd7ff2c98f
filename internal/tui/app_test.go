package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lilt-audio/lilt/internal/authz"
	"github.com/lilt-audio/lilt/internal/core"
	liltErrors "github.com/lilt-audio/lilt/internal/errors"
	"github.com/lilt-audio/lilt/internal/items"
	"github.com/lilt-audio/lilt/internal/media"
)

// stubPlayer is an in-memory core.Player for driving the model.
type stubPlayer struct {
	playing    bool
	playCalls  int
	pauseCalls int
}

func (s *stubPlayer) Play(ctx context.Context) error {
	s.playing = true
	s.playCalls++
	return nil
}

func (s *stubPlayer) Pause(ctx context.Context) error {
	s.playing = false
	s.pauseCalls++
	return nil
}

func (s *stubPlayer) State(ctx context.Context) (*core.PlaybackState, error) {
	return &core.PlaybackState{
		Track: &core.Track{
			Title:    media.SampleTitle,
			Artist:   media.SampleArtist,
			Duration: 3 * time.Second,
			Source:   core.SourceLocal,
		},
		Source:    core.SourceLocal,
		IsPlaying: s.playing,
	}, nil
}

func testApp(t *testing.T, player core.Player) *App {
	t.Helper()

	storage, err := authz.NewStorage(filepath.Join(t.TempDir(), "authorization.json"))
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	app := &App{
		Authz:  authz.NewManager(storage, false),
		Logger: zap.NewNop(),
		sample: &media.Sample{Name: media.SampleName, Data: []byte("stub")},
	}
	app.newPlayer = func(*media.Sample) (core.Player, error) {
		return player, nil
	}
	return app
}

// press runs one full update cycle: it sends the key and applies every
// message produced by the resulting commands.
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()

	updated, cmd := m.Update(key)
	model := updated.(Model)
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		updated, cmd = model.Update(msg)
		model = updated.(Model)
	}
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestToggleFlipsOncePerPress(t *testing.T) {
	stub := &stubPlayer{}
	m := NewModel(testApp(t, stub), "")
	m.status = core.AuthAuthorized

	space := tea.KeyMsg{Type: tea.KeySpace}

	m = press(t, m, space)
	if !m.state.IsPlaying {
		t.Fatal("first press: state not playing")
	}
	if stub.playCalls != 1 || stub.pauseCalls != 0 {
		t.Fatalf("first press: playCalls = %d, pauseCalls = %d, want 1, 0", stub.playCalls, stub.pauseCalls)
	}
	if !strings.Contains(m.View(), "▶") {
		t.Error("view missing play icon after first press")
	}

	m = press(t, m, space)
	if m.state.IsPlaying {
		t.Fatal("second press: state still playing")
	}
	if stub.pauseCalls != 1 {
		t.Fatalf("second press: pauseCalls = %d, want 1", stub.pauseCalls)
	}
	if !strings.Contains(m.View(), "⏸") {
		t.Error("view missing pause icon after second press")
	}

	m = press(t, m, space)
	if !m.state.IsPlaying {
		t.Fatal("third press: state not playing")
	}
	if stub.playCalls != 2 {
		t.Fatalf("third press: playCalls = %d, want 2", stub.playCalls)
	}
}

func TestToggleBlockedWithoutAccess(t *testing.T) {
	tests := []struct {
		name   string
		status core.AuthStatus
		want   string
	}{
		{"not determined", core.AuthNotDetermined, "Music access hasn't been decided yet."},
		{"denied", core.AuthDenied, "Music access was denied."},
		{"restricted", core.AuthRestricted, "Music access is restricted on this device."},
		{"unknown", core.AuthUnknown, "Music access status is unrecognized."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPlayer{}
			m := NewModel(testApp(t, stub), "")
			m.status = tt.status

			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

			if m.banner != tt.want {
				t.Errorf("banner = %q, want %q", m.banner, tt.want)
			}
			if m.state.IsPlaying {
				t.Error("playback state changed without access")
			}
			if stub.playCalls != 0 || stub.pauseCalls != 0 {
				t.Errorf("player touched: playCalls = %d, pauseCalls = %d", stub.playCalls, stub.pauseCalls)
			}
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("view missing %q", tt.want)
			}
		})
	}
}

func TestToggleWithMissingSample(t *testing.T) {
	t.Run("probe already failed", func(t *testing.T) {
		stub := &stubPlayer{}
		m := NewModel(testApp(t, stub), "")
		m.status = core.AuthAuthorized
		m.sampleErr = liltErrors.ErrSampleMissing

		m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

		if m.banner != media.MissingSampleMessage {
			t.Errorf("banner = %q, want %q", m.banner, media.MissingSampleMessage)
		}
		if m.state.IsPlaying {
			t.Error("playback state changed with missing sample")
		}
		if stub.playCalls != 0 {
			t.Errorf("playCalls = %d, want 0", stub.playCalls)
		}
	})

	t.Run("resolved at press time", func(t *testing.T) {
		storage, err := authz.NewStorage(filepath.Join(t.TempDir(), "authorization.json"))
		if err != nil {
			t.Fatalf("NewStorage() error = %v", err)
		}

		// No cached sample, no override path and no embedded asset, so the
		// loader fails inside the toggle command.
		app := &App{
			Authz:  authz.NewManager(storage, false),
			Logger: zap.NewNop(),
		}
		app.newPlayer = func(*media.Sample) (core.Player, error) {
			t.Fatal("player built despite missing sample")
			return nil, nil
		}

		m := NewModel(app, "")
		m.status = core.AuthAuthorized

		m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

		if m.banner != media.MissingSampleMessage {
			t.Errorf("banner = %q, want %q", m.banner, media.MissingSampleMessage)
		}
		if m.state.IsPlaying {
			t.Error("playback state changed with missing sample")
		}
	})
}

func TestConsentFlow(t *testing.T) {
	t.Run("undecided status shows prompt", func(t *testing.T) {
		m := NewModel(testApp(t, &stubPlayer{}), "")

		updated, _ := m.Update(authStatusMsg{status: core.AuthNotDetermined})
		m = updated.(Model)

		if !m.showConsent {
			t.Fatal("consent prompt not shown")
		}
		if !strings.Contains(m.View(), "Music Access") {
			t.Error("view missing consent prompt")
		}
	})

	t.Run("decided status skips prompt", func(t *testing.T) {
		m := NewModel(testApp(t, &stubPlayer{}), "")

		updated, _ := m.Update(authStatusMsg{status: core.AuthAuthorized})
		m = updated.(Model)

		if m.showConsent {
			t.Error("consent prompt shown for decided status")
		}
	})

	t.Run("y grants and persists", func(t *testing.T) {
		m := NewModel(testApp(t, &stubPlayer{}), "")
		updated, _ := m.Update(authStatusMsg{status: core.AuthNotDetermined})
		m = updated.(Model)

		m = press(t, m, runeKey('y'))

		if m.showConsent {
			t.Error("consent prompt still shown")
		}
		if m.status != core.AuthAuthorized {
			t.Errorf("status = %v, want %v", m.status, core.AuthAuthorized)
		}
		if got := m.app.Authz.Status(); got != core.AuthAuthorized {
			t.Errorf("persisted status = %v, want %v", got, core.AuthAuthorized)
		}
	})

	t.Run("n denies and persists", func(t *testing.T) {
		m := NewModel(testApp(t, &stubPlayer{}), "")
		updated, _ := m.Update(authStatusMsg{status: core.AuthNotDetermined})
		m = updated.(Model)

		m = press(t, m, runeKey('n'))

		if m.status != core.AuthDenied {
			t.Errorf("status = %v, want %v", m.status, core.AuthDenied)
		}
		if got := m.app.Authz.Status(); got != core.AuthDenied {
			t.Errorf("persisted status = %v, want %v", got, core.AuthDenied)
		}
	})

	t.Run("esc denies", func(t *testing.T) {
		m := NewModel(testApp(t, &stubPlayer{}), "")
		updated, _ := m.Update(authStatusMsg{status: core.AuthNotDetermined})
		m = updated.(Model)

		m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

		if got := m.app.Authz.Status(); got != core.AuthDenied {
			t.Errorf("persisted status = %v, want %v", got, core.AuthDenied)
		}
	})

	t.Run("quit abandons the request", func(t *testing.T) {
		m := NewModel(testApp(t, &stubPlayer{}), "")
		updated, _ := m.Update(authStatusMsg{status: core.AuthNotDetermined})
		m = updated.(Model)

		updated, cmd := m.Update(runeKey('q'))
		m = updated.(Model)

		if !m.quitting {
			t.Error("model not quitting")
		}
		if cmd == nil {
			t.Error("expected quit command")
		}
		if got := m.app.Authz.Status(); got != core.AuthNotDetermined {
			t.Errorf("status = %v, want %v", got, core.AuthNotDetermined)
		}
	})
}

func TestViewShowsCardContent(t *testing.T) {
	m := NewModel(testApp(t, &stubPlayer{}), "")

	view := m.View()
	for _, want := range []string{"Midnight Drive", "The Halftones", "♪"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBannerClearsAfterTTL(t *testing.T) {
	m := NewModel(testApp(t, &stubPlayer{}), "")
	m.status = core.AuthDenied

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.banner == "" {
		t.Fatal("expected banner after blocked press")
	}

	updated, _ := m.Update(tickMsg(time.Now().Add(bannerTTL + time.Second)))
	m = updated.(Model)

	if m.banner != "" {
		t.Errorf("banner = %q, want cleared", m.banner)
	}
}

func TestThemeKeyCyclesFlavor(t *testing.T) {
	m := NewModel(testApp(t, &stubPlayer{}), "mocha")

	updated, cmd := m.Update(runeKey('t'))
	m = updated.(Model)

	if m.themeName != "macchiato" {
		t.Errorf("themeName = %q, want %q", m.themeName, "macchiato")
	}
	if cmd == nil {
		t.Error("expected a save command")
	}
}

func TestSampleProbeFillsDuration(t *testing.T) {
	m := NewModel(testApp(t, &stubPlayer{}), "")

	track := &core.Track{
		Title:    media.SampleTitle,
		Artist:   media.SampleArtist,
		Duration: 2 * time.Second,
		Source:   core.SourceLocal,
	}
	updated, _ := m.Update(sampleMsg{track: track})
	m = updated.(Model)

	if m.state.Track.Duration != 2*time.Second {
		t.Errorf("Duration = %v, want %v", m.state.Track.Duration, 2*time.Second)
	}
}

func TestItemsStayOffscreen(t *testing.T) {
	m := NewModel(testApp(t, &stubPlayer{}), "")

	loaded := []items.Item{
		{ID: "9d3a2c44-item-one", CreatedAt: time.Now()},
		{ID: "b17e0f52-item-two", CreatedAt: time.Now()},
	}
	updated, _ := m.Update(itemsMsg{items: loaded})
	m = updated.(Model)

	if len(m.items) != 2 {
		t.Fatalf("items = %d, want 2", len(m.items))
	}
	view := m.View()
	for _, it := range loaded {
		if strings.Contains(view, it.ID) {
			t.Errorf("item %s rendered in view", it.ID)
		}
	}
}

func TestStateChangePublishedOnce(t *testing.T) {
	app := testApp(t, &stubPlayer{})

	var published int
	app.Publish = func(*core.PlaybackState) { published++ }

	m := NewModel(app, "")

	playing := &core.PlaybackState{
		Track:     &core.Track{Title: media.SampleTitle},
		Source:    core.SourceLocal,
		IsPlaying: true,
	}
	m = m.applyState(playing)
	m = m.applyState(playing)
	if published != 1 {
		t.Errorf("published = %d after duplicate state, want 1", published)
	}

	paused := &core.PlaybackState{
		Track:     &core.Track{Title: media.SampleTitle},
		Source:    core.SourceLocal,
		IsPlaying: false,
	}
	m = m.applyState(paused)
	if published != 2 {
		t.Errorf("published = %d after transition, want 2", published)
	}
}

func TestQueryAuthorizationReflectsStoredDecision(t *testing.T) {
	app := testApp(t, &stubPlayer{})
	if _, err := app.Authz.Request(func() bool { return true }); err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	msg := NewModel(app, "").queryAuthorization()()
	got, ok := msg.(authStatusMsg)
	if !ok {
		t.Fatalf("message type = %T, want authStatusMsg", msg)
	}
	if got.status != core.AuthAuthorized {
		t.Errorf("status = %v, want %v", got.status, core.AuthAuthorized)
	}
}
