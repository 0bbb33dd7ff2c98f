package media

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	liltErrors "github.com/lilt-audio/lilt/internal/errors"
)

func TestLoadSampleOverridePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.mp3")
	if err := os.WriteFile(path, []byte("mp3 bytes"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := LoadSample(path)
	if err != nil {
		t.Fatalf("LoadSample() error = %v", err)
	}
	if s.Name != path {
		t.Errorf("Name = %q, want %q", s.Name, path)
	}
	if string(s.Data) != "mp3 bytes" {
		t.Errorf("Data = %q, want file contents", s.Data)
	}
}

func TestLoadSampleOverrideMissing(t *testing.T) {
	_, err := LoadSample(filepath.Join(t.TempDir(), "nope.mp3"))
	if !errors.Is(err, liltErrors.ErrSampleMissing) {
		t.Errorf("LoadSample() error = %v, want ErrSampleMissing", err)
	}
}

func TestLoadSampleNoBundledAsset(t *testing.T) {
	// The repository ships without assets/sample.mp3; resolution must
	// report the sentinel rather than an opaque fs error.
	_, err := LoadSample("")
	if !errors.Is(err, liltErrors.ErrSampleMissing) {
		t.Errorf("LoadSample() error = %v, want ErrSampleMissing", err)
	}
}

func TestSampleReaderIsRepeatable(t *testing.T) {
	s := &Sample{Name: "sample.mp3", Data: []byte("abc")}

	for i := 0; i < 2; i++ {
		r := s.Reader()
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if string(data) != "abc" {
			t.Errorf("read %q, want %q", data, "abc")
		}
		if err := r.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	}
}
