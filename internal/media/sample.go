// Package media plays the bundled demo track through the system speaker.
package media

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"

	liltErrors "github.com/lilt-audio/lilt/internal/errors"
)

// SampleName is the file name the bundled track is looked up by.
const SampleName = "sample.mp3"

// SampleTitle and SampleArtist describe the bundled demo track.
const (
	SampleTitle  = "Midnight Drive"
	SampleArtist = "The Halftones"
)

// MissingSampleMessage is shown when the demo track cannot be resolved.
const MissingSampleMessage = "Couldn't find the bundled sample track."

//go:embed assets
var assetsFS embed.FS

// Sample is a resolved audio resource held in memory.
type Sample struct {
	Name string
	Data []byte
}

// Reader returns a fresh reader over the sample bytes.
func (s *Sample) Reader() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(s.Data))
}

// LoadSample resolves the demo track once. An override path takes
// precedence over the embedded asset set; if neither yields the file the
// result is ErrSampleMissing.
func LoadSample(overridePath string) (*Sample, error) {
	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, liltErrors.ErrSampleMissing
			}
			return nil, fmt.Errorf("read sample override: %w", err)
		}
		return &Sample{Name: overridePath, Data: data}, nil
	}

	data, err := assetsFS.ReadFile("assets/" + SampleName)
	if err != nil {
		return nil, liltErrors.ErrSampleMissing
	}
	return &Sample{Name: SampleName, Data: data}, nil
}
