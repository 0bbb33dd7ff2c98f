// Package mpris publishes playback state on the session bus so desktop
// media keys can reach the player.
package mpris

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
	"go.uber.org/zap"

	"github.com/lilt-audio/lilt/internal/core"
)

const (
	busName    = "org.mpris.MediaPlayer2.lilt"
	objectPath = dbus.ObjectPath("/org/mpris/MediaPlayer2")

	rootInterface   = "org.mpris.MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// Publisher exposes the player on the session bus.
type Publisher struct {
	conn   *dbus.Conn
	props  *prop.Properties
	logger *zap.Logger

	mu sync.Mutex
}

// playerObject receives org.mpris.MediaPlayer2.Player method calls.
type playerObject struct {
	onPlayPause func()
}

func (p *playerObject) PlayPause() *dbus.Error {
	if p.onPlayPause != nil {
		p.onPlayPause()
	}
	return nil
}

func (p *playerObject) Play() *dbus.Error     { return nil }
func (p *playerObject) Pause() *dbus.Error    { return nil }
func (p *playerObject) Stop() *dbus.Error     { return nil }
func (p *playerObject) Next() *dbus.Error     { return nil }
func (p *playerObject) Previous() *dbus.Error { return nil }

// rootObject receives org.mpris.MediaPlayer2 method calls.
type rootObject struct{}

func (r *rootObject) Raise() *dbus.Error { return nil }
func (r *rootObject) Quit() *dbus.Error  { return nil }

// New connects to the session bus and claims the player name. onPlayPause
// runs whenever a desktop client calls PlayPause.
func New(logger *zap.Logger, onPlayPause func()) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, fmt.Errorf("bus name %s already taken", busName)
	}

	if err := conn.Export(&rootObject{}, objectPath, rootInterface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("export root interface: %w", err)
	}
	if err := conn.Export(&playerObject{onPlayPause: onPlayPause}, objectPath, playerInterface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("export player interface: %w", err)
	}

	props, err := prop.Export(conn, objectPath, prop.Map{
		rootInterface: {
			"Identity":            {Value: "lilt", Emit: prop.EmitTrue},
			"CanQuit":             {Value: false, Emit: prop.EmitTrue},
			"CanRaise":            {Value: false, Emit: prop.EmitTrue},
			"HasTrackList":        {Value: false, Emit: prop.EmitTrue},
			"SupportedUriSchemes": {Value: []string{}, Emit: prop.EmitTrue},
			"SupportedMimeTypes":  {Value: []string{}, Emit: prop.EmitTrue},
		},
		playerInterface: {
			"PlaybackStatus": {Value: "Stopped", Emit: prop.EmitTrue},
			"Metadata":       {Value: map[string]dbus.Variant{}, Emit: prop.EmitTrue},
			"CanPlay":        {Value: true, Emit: prop.EmitTrue},
			"CanPause":       {Value: true, Emit: prop.EmitTrue},
			"CanControl":     {Value: true, Emit: prop.EmitTrue},
			"CanGoNext":      {Value: false, Emit: prop.EmitTrue},
			"CanGoPrevious":  {Value: false, Emit: prop.EmitTrue},
			"CanSeek":        {Value: false, Emit: prop.EmitTrue},
		},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("export properties: %w", err)
	}

	return &Publisher{conn: conn, props: props, logger: logger}, nil
}

// SetState mirrors the playback state onto the bus.
func (p *Publisher) SetState(state *core.PlaybackState) {
	if state == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	status := "Paused"
	if state.IsPlaying {
		status = "Playing"
	}
	p.props.SetMust(playerInterface, "PlaybackStatus", status)

	if state.Track == nil {
		return
	}
	p.props.SetMust(playerInterface, "Metadata", map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(dbus.ObjectPath("/org/lilt/track/1")),
		"mpris:length":  dbus.MakeVariant(state.Track.Duration.Microseconds()),
		"xesam:title":   dbus.MakeVariant(state.Track.Title),
		"xesam:artist":  dbus.MakeVariant([]string{state.Track.Artist}),
	})
}

// Close releases the bus name and connection.
func (p *Publisher) Close() error {
	if _, err := p.conn.ReleaseName(busName); err != nil {
		p.logger.Warn("release bus name failed", zap.Error(err))
	}
	return p.conn.Close()
}
