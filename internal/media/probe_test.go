package media

import (
	"bytes"
	"testing"
	"time"
)

func TestProbeRejectsGarbage(t *testing.T) {
	if _, err := Probe(bytes.NewReader([]byte("not an mp3 stream"))); err == nil {
		t.Error("Probe() error = nil, want decode error")
	}
}

func TestInfoDuration(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want time.Duration
	}{
		{"zero rate", Info{SampleRate: 0, Samples: 44100}, 0},
		{"one second", Info{SampleRate: 44100, Samples: 44100}, time.Second},
		{"half second", Info{SampleRate: 48000, Samples: 24000}, 500 * time.Millisecond},
		{"three minutes", Info{SampleRate: 44100, Samples: 44100 * 180}, 3 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}
