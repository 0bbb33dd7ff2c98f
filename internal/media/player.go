package media

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/lilt-audio/lilt/internal/core"
)

// Player plays the bundled sample through the system speaker. It starts
// paused; Play and Pause flip the stream under the speaker lock.
type Player struct {
	mu       sync.Mutex
	track    *core.Track
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl

	// done flips when the stream drains. The callback runs on the speaker
	// goroutine, so it must not take mu.
	done atomic.Bool
}

var _ core.Player = (*Player)(nil)

// NewPlayer decodes the sample, opens the speaker and queues the stream in
// a paused state.
func NewPlayer(sample *Sample) (*Player, error) {
	info, err := Probe(sample.Reader())
	if err != nil {
		return nil, err
	}

	streamer, format, err := mp3.Decode(sample.Reader())
	if err != nil {
		return nil, fmt.Errorf("decode sample: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("open speaker: %w", err)
	}

	p := &Player{
		track: &core.Track{
			Title:    SampleTitle,
			Artist:   SampleArtist,
			Duration: info.Duration(),
			Source:   core.SourceLocal,
		},
		streamer: streamer,
		format:   format,
	}
	p.queue(true)

	return p, nil
}

// queue wraps the streamer in a fresh Ctrl and hands it to the speaker.
// Caller must not hold the speaker lock.
func (p *Player) queue(paused bool) {
	p.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(p.streamer, beep.Callback(func() {
			p.done.Store(true)
		})),
		Paused: paused,
	}
	speaker.Play(p.ctrl)
}

// Play starts or resumes playback. A drained stream is rewound and queued
// again, so play after the sample ends restarts it from the top.
func (p *Player) Play(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done.Load() {
		speaker.Lock()
		err := p.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			return fmt.Errorf("rewind sample: %w", err)
		}
		p.done.Store(false)
		p.queue(false)
		return nil
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause suspends playback, keeping the stream position.
func (p *Player) Pause(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// IsPlaying reports whether the stream is currently audible.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	paused := p.ctrl.Paused
	speaker.Unlock()

	return !paused && !p.done.Load()
}

// State reports the player's current playback state.
func (p *Player) State(ctx context.Context) (*core.PlaybackState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	paused := p.ctrl.Paused
	pos := p.streamer.Position()
	speaker.Unlock()

	track := *p.track
	return &core.PlaybackState{
		Track:     &track,
		Source:    core.SourceLocal,
		IsPlaying: !paused && !p.done.Load(),
		Progress:  p.format.SampleRate.D(pos),
	}, nil
}

// Close stops playback and releases the stream.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Clear()
	return p.streamer.Close()
}
