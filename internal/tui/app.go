// Package tui implements the interactive terminal interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/hashstructure/v2"
	"go.uber.org/zap"

	"github.com/lilt-audio/lilt/internal/authz"
	"github.com/lilt-audio/lilt/internal/config"
	"github.com/lilt-audio/lilt/internal/core"
	liltErrors "github.com/lilt-audio/lilt/internal/errors"
	"github.com/lilt-audio/lilt/internal/items"
	"github.com/lilt-audio/lilt/internal/media"
	"github.com/lilt-audio/lilt/internal/mpris"
	"github.com/lilt-audio/lilt/internal/prefs"
	"github.com/lilt-audio/lilt/internal/tui/components"
	"github.com/lilt-audio/lilt/internal/tui/styles"
)

const (
	cmdTimeout   = 5 * time.Second
	tickInterval = time.Second
	bannerTTL    = 4 * time.Second
	cardWidth    = 52
)

// App holds the services behind the UI.
type App struct {
	Authz  *authz.Manager
	Store  *items.Store
	Logger *zap.Logger

	// Publish, when set, mirrors playback state to desktop integrations.
	Publish func(*core.PlaybackState)

	samplePath string

	mu     sync.Mutex
	sample *media.Sample
	player core.Player

	// newPlayer builds the playback backend on first use. Tests swap it out.
	newPlayer func(*media.Sample) (core.Player, error)
}

// NewApp wires the UI's services from configuration.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	storage, err := authz.NewStorage("")
	if err != nil {
		return nil, fmt.Errorf("open authorization storage: %w", err)
	}

	app := &App{
		Authz:      authz.NewManager(storage, cfg.Authorization.Restricted),
		Logger:     logger,
		samplePath: cfg.Media.SamplePath,
	}
	app.newPlayer = func(s *media.Sample) (core.Player, error) {
		return media.NewPlayer(s)
	}

	// Template scaffolding; the card works without it
	if path, err := items.DefaultPath(); err == nil {
		store, err := items.Open(path)
		if err != nil {
			logger.Warn("items store unavailable", zap.Error(err))
		} else {
			app.Store = store
		}
	}

	return app, nil
}

// Sample resolves the bundled track once, caching the result.
func (a *App) Sample() (*media.Sample, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadSampleLocked()
}

func (a *App) loadSampleLocked() (*media.Sample, error) {
	if a.sample != nil {
		return a.sample, nil
	}
	sample, err := media.LoadSample(a.samplePath)
	if err != nil {
		return nil, err
	}
	a.sample = sample
	return sample, nil
}

// Player returns the playback backend, building it on first use.
func (a *App) Player() (core.Player, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.player != nil {
		return a.player, nil
	}

	sample, err := a.loadSampleLocked()
	if err != nil {
		return nil, err
	}

	player, err := a.newPlayer(sample)
	if err != nil {
		return nil, err
	}
	a.player = player
	return player, nil
}

// ActivePlayer returns the playback backend if one has been built.
func (a *App) ActivePlayer() core.Player {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.player
}

// Close releases the app's resources.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	if closer, ok := a.player.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}

// stateFingerprint identifies a playback transition. Progress is excluded
// so per-second position updates don't count as one.
type stateFingerprint struct {
	Playing bool
	Title   string
	Source  core.Source
}

// Messages flowing into Update.
type (
	authStatusMsg  struct{ status core.AuthStatus }
	consentDoneMsg struct {
		status core.AuthStatus
		err    error
	}
	sampleMsg struct {
		track *core.Track
		err   error
	}
	itemsMsg struct {
		items []items.Item
		err   error
	}
	stateMsg      struct{ state *core.PlaybackState }
	errMsg        struct{ err error }
	prefsSavedMsg struct{ err error }
	toggleMsg     struct{}
	tickMsg       time.Time
)

// Model is the bubbletea model for the player view.
type Model struct {
	app        *App
	keys       keyMap
	help       help.Model
	nowPlaying *components.NowPlaying

	theme     *styles.Theme
	themeName string

	width  int
	height int

	status    core.AuthStatus
	state     *core.PlaybackState
	stateHash uint64

	banner      string
	bannerUntil time.Time

	sampleErr error

	// items are loaded once and kept off-screen (template scaffolding).
	items []items.Item

	showConsent bool
	showHelp    bool
	quitting    bool
}

// NewModel creates the initial model.
func NewModel(app *App, themeName string) Model {
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	return Model{
		app:        app,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		nowPlaying: components.NewNowPlaying(),
		theme:      styles.NewTheme(themeName),
		themeName:  themeName,
		status:     core.AuthNotDetermined,
		state: &core.PlaybackState{
			Track: &core.Track{
				Title:  media.SampleTitle,
				Artist: media.SampleArtist,
				Source: core.SourceLocal,
			},
			Source: core.SourceLocal,
		},
	}
}

// Init issues the startup commands: the single authorization query, the
// sample probe, the items query and the refresh tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.queryAuthorization(),
		m.probeSample(),
		m.loadItems(),
		tick(),
	)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case toggleMsg:
		return m.handleToggle()

	case authStatusMsg:
		m.status = msg.status
		if msg.status == core.AuthNotDetermined {
			m.showConsent = true
		}
		return m, nil

	case consentDoneMsg:
		m.showConsent = false
		if msg.err != nil {
			m.status = core.AuthNotDetermined
			return m.withBanner(fmt.Sprintf("Couldn't save your choice: %v", msg.err)), nil
		}
		m.status = msg.status
		m.app.Logger.Info("authorization decided", zap.String("status", msg.status.String()))
		return m, nil

	case sampleMsg:
		m.sampleErr = msg.err
		if msg.err == nil && msg.track != nil && m.state.HasTrack() && m.state.Track.Duration == 0 {
			m.state.Track = msg.track
		}
		return m, nil

	case itemsMsg:
		if msg.err != nil {
			m.app.Logger.Warn("items query failed", zap.Error(msg.err))
			return m, nil
		}
		m.items = msg.items
		return m, nil

	case stateMsg:
		return m.applyState(msg.state), nil

	case errMsg:
		if errors.Is(msg.err, liltErrors.ErrSampleMissing) {
			m.sampleErr = msg.err
			return m.withBanner(media.MissingSampleMessage), nil
		}
		m.app.Logger.Error("command failed", zap.Error(msg.err))
		return m.withBanner(msg.err.Error()), nil

	case prefsSavedMsg:
		if msg.err != nil {
			m.app.Logger.Warn("saving preferences failed", zap.Error(msg.err))
		}
		return m, nil

	case tickMsg:
		if m.banner != "" && time.Time(msg).After(m.bannerUntil) {
			m.banner = ""
		}
		return m, tea.Batch(tick(), m.refreshState())
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConsent {
		return m.handleConsentKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggle()
	}

	return m, nil
}

func (m Model) handleConsentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.decideConsent(true)
	case "n", "N", "esc":
		return m, m.decideConsent(false)
	case "q", "ctrl+c":
		// Quitting abandons the request; the status stays not-determined
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleToggle runs the play/pause press. Non-authorized statuses and a
// missing sample surface their message and leave playback untouched.
func (m Model) handleToggle() (tea.Model, tea.Cmd) {
	if !m.status.Granted() {
		return m.withBanner(m.status.Message()), nil
	}

	if m.sampleErr != nil {
		if errors.Is(m.sampleErr, liltErrors.ErrSampleMissing) {
			return m.withBanner(media.MissingSampleMessage), nil
		}
		return m.withBanner(m.sampleErr.Error()), nil
	}

	return m, m.togglePlayback()
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.themeName = styles.NextFlavor(m.themeName)
	m.theme = styles.NewTheme(m.themeName)

	name := m.themeName
	return m, func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save("", prefs.Prefs{Theme: name})}
	}
}

func (m Model) withBanner(text string) Model {
	m.banner = text
	m.bannerUntil = time.Now().Add(bannerTTL)
	return m
}

func (m Model) applyState(state *core.PlaybackState) Model {
	if state == nil {
		return m
	}

	m.state = state

	fp := stateFingerprint{Playing: state.IsPlaying, Source: state.Source}
	if state.Track != nil {
		fp.Title = state.Track.Title
	}
	hash, err := hashstructure.Hash(fp, hashstructure.FormatV2, nil)
	if err != nil || hash == m.stateHash {
		return m
	}
	m.stateHash = hash

	m.app.Logger.Info("playback state changed",
		zap.Bool("playing", state.IsPlaying),
		zap.String("source", string(state.Source)),
	)
	if m.app.Publish != nil {
		m.app.Publish(state)
	}
	return m
}

// Commands

func (m Model) queryAuthorization() tea.Cmd {
	mgr := m.app.Authz
	return func() tea.Msg {
		return authStatusMsg{status: mgr.Status()}
	}
}

func (m Model) decideConsent(granted bool) tea.Cmd {
	mgr := m.app.Authz
	return func() tea.Msg {
		status, err := mgr.Request(func() bool { return granted })
		return consentDoneMsg{status: status, err: err}
	}
}

func (m Model) probeSample() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		sample, err := app.Sample()
		if err != nil {
			return sampleMsg{err: err}
		}

		info, err := media.Probe(sample.Reader())
		if err != nil {
			return sampleMsg{err: fmt.Errorf("probe sample: %w", err)}
		}

		return sampleMsg{track: &core.Track{
			Title:    media.SampleTitle,
			Artist:   media.SampleArtist,
			Duration: info.Duration(),
			Source:   core.SourceLocal,
		}}
	}
}

func (m Model) loadItems() tea.Cmd {
	store := m.app.Store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		all, err := store.All(ctx)
		return itemsMsg{items: all, err: err}
	}
}

func (m Model) togglePlayback() tea.Cmd {
	app := m.app
	playing := m.state.IsPlaying
	return func() tea.Msg {
		player, err := app.Player()
		if err != nil {
			return errMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		if playing {
			err = player.Pause(ctx)
		} else {
			err = player.Play(ctx)
		}
		if err != nil {
			return errMsg{err}
		}

		state, err := player.State(ctx)
		if err != nil {
			return errMsg{err}
		}
		return stateMsg{state}
	}
}

func (m Model) refreshState() tea.Cmd {
	player := m.app.ActivePlayer()
	if player == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		state, err := player.State(ctx)
		if err != nil {
			return errMsg{err}
		}
		return stateMsg{state}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showConsent {
		return m.renderConsent()
	}

	card := m.nowPlaying.Render(m.theme, m.state, m.banner, cardWidth)
	footer := m.help.View(m.keys)

	content := lipgloss.JoinVertical(lipgloss.Left,
		card,
		"",
		footer,
	)

	return m.place(content)
}

func (m Model) renderConsent() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelTitle("Music Access", true),
		"",
		"lilt would like to access your music.",
		"",
		m.theme.Muted.Render("y: allow    n: deny    q: quit"),
	)
	return m.place(m.theme.Panel(true).Width(cardWidth).Render(body))
}

func (m Model) place(content string) string {
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the TUI and blocks until it exits.
func Run(cfg *config.Config, logger *zap.Logger) error {
	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	userPrefs, _ := prefs.Load("")
	m := NewModel(app, userPrefs.Theme)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.MPRIS.Enabled {
		pub, err := mpris.New(app.Logger, func() {
			p.Send(toggleMsg{})
		})
		if err != nil {
			app.Logger.Warn("mpris unavailable", zap.Error(err))
		} else {
			defer pub.Close()
			app.Publish = pub.SetState
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
