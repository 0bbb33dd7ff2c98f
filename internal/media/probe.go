package media

import (
	"fmt"
	"io"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// Info describes a decoded MP3 stream.
type Info struct {
	SampleRate int
	Samples    int64
}

// Duration returns the play time of the stream.
func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(i.Samples) * time.Second / time.Duration(i.SampleRate)
}

// Probe decodes just enough of an MP3 stream to report its sample rate and
// length. It never touches the speaker, so callers can size progress bars
// and tests can check durations without an audio device.
func Probe(r io.Reader) (Info, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Info{}, fmt.Errorf("decode sample: %w", err)
	}

	// Length reports decoded PCM bytes: 2 channels x 2 bytes per sample.
	return Info{
		SampleRate: dec.SampleRate(),
		Samples:    dec.Length() / 4,
	}, nil
}
