package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNotAuthorized = errors.New("music access not authorized")
	ErrSampleMissing = errors.New("bundled sample track not found")
	ErrNotConfigured = errors.New("catalog not configured")
	ErrNotFound      = errors.New("not found")
	ErrRateLimited   = errors.New("rate limited")
	ErrNetworkError  = errors.New("network error")
	ErrTimeout       = errors.New("request timeout")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// LiltError wraps an error with a user-friendly suggestion.
type LiltError struct {
	Err        error
	Suggestion string
}

func (e *LiltError) Error() string {
	return e.Err.Error()
}

func (e *LiltError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &LiltError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a LiltError with suggestion
	var liltErr *LiltError
	if errors.As(err, &liltErr) && liltErr.Suggestion != "" {
		return liltErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Authorization errors
	if errors.Is(err, ErrNotAuthorized) || strings.Contains(errStr, "not authorized") ||
		strings.Contains(errStr, "access denied") {
		return "Run 'lilt auth grant' to allow music access"
	}

	// Missing bundled audio
	if errors.Is(err, ErrSampleMissing) || strings.Contains(errStr, "sample track") {
		return "Set media.sample_path in your config to point at an MP3 file"
	}

	// Catalog configuration
	if errors.Is(err, ErrNotConfigured) || strings.Contains(errStr, "base_url") {
		return "Run 'lilt config init' and set catalog.base_url and catalog.client_id"
	}

	// Rate limiting
	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	// Network errors
	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	// Config errors
	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'lilt config show' to inspect your configuration"
	}

	// Server errors
	if strings.Contains(errStr, "500") || strings.Contains(errStr, "server error") {
		return "The catalog service is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
