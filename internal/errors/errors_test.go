package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"not authorized", ErrNotAuthorized, "Run 'lilt auth grant' to allow music access"},
		{"sample missing", ErrSampleMissing, "Set media.sample_path in your config to point at an MP3 file"},
		{"not configured", ErrNotConfigured, "Run 'lilt config init' and set catalog.base_url and catalog.client_id"},
		{"rate limited", ErrRateLimited, "Too many requests. Wait a moment and try again"},
		{"network", ErrNetworkError, "Check your internet connection and try again"},
		{"unknown error", errors.New("something odd"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSuggestion(tt.err); got != tt.want {
				t.Errorf("GetSuggestion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetSuggestionPrefersWrapped(t *testing.T) {
	err := WithSuggestion(errors.New("boom"), "try turning it off and on")
	if got := GetSuggestion(err); got != "try turning it off and on" {
		t.Errorf("GetSuggestion() = %q, want wrapped suggestion", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	plain := Format(errors.New("boom"))
	if plain != "Error: boom" {
		t.Errorf("Format() = %q, want %q", plain, "Error: boom")
	}

	withHint := Format(ErrNotAuthorized)
	if !strings.Contains(withHint, "Suggestion:") {
		t.Errorf("Format() = %q, want suggestion section", withHint)
	}
}

func TestLiltErrorUnwrap(t *testing.T) {
	base := errors.New("base")
	wrapped := WithSuggestion(base, "hint")
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is() = false, want wrapped error to match base")
	}
}
