// Package styles defines the lipgloss styles for the lilt UI, built on the
// catppuccin palette so the theme can be cycled at runtime.
package styles

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// FlavorNames lists the selectable palettes in cycle order.
var FlavorNames = []string{"mocha", "macchiato", "frappe", "latte"}

// Flavor resolves a palette by name, defaulting to mocha.
func Flavor(name string) catppuccin.Flavor {
	switch strings.ToLower(name) {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// NextFlavor returns the palette after name in the cycle order.
func NextFlavor(name string) string {
	for i, n := range FlavorNames {
		if n == strings.ToLower(name) {
			return FlavorNames[(i+1)%len(FlavorNames)]
		}
	}
	return FlavorNames[0]
}

// Theme holds the styles derived from one catppuccin flavor.
type Theme struct {
	Name string

	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
	Banner    lipgloss.Style

	// Border styles
	BorderStyle   lipgloss.Style
	FocusedBorder lipgloss.Style
	ArtworkBox    lipgloss.Style

	progressFill  lipgloss.Style
	progressTrack lipgloss.Style
}

// NewTheme builds a Theme for the named flavor.
func NewTheme(name string) *Theme {
	f := Flavor(name)

	text := lipgloss.Color(f.Text().Hex)
	subtext := lipgloss.Color(f.Subtext0().Hex)
	overlay := lipgloss.Color(f.Overlay0().Hex)
	surface := lipgloss.Color(f.Surface2().Hex)
	accent := lipgloss.Color(f.Mauve().Hex)
	green := lipgloss.Color(f.Green().Hex)
	peach := lipgloss.Color(f.Peach().Hex)
	yellow := lipgloss.Color(f.Yellow().Hex)
	lavender := lipgloss.Color(f.Lavender().Hex)

	return &Theme{
		Name: strings.ToLower(name),

		Title:     lipgloss.NewStyle().Bold(true).Foreground(text),
		Subtitle:  lipgloss.NewStyle().Foreground(subtext),
		Label:     lipgloss.NewStyle().Foreground(overlay),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:     lipgloss.NewStyle().Foreground(subtext),
		Dim:       lipgloss.NewStyle().Foreground(overlay),
		Playing:   lipgloss.NewStyle().Foreground(green),
		Paused:    lipgloss.NewStyle().Foreground(peach),
		Banner:    lipgloss.NewStyle().Foreground(yellow),

		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(surface),
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		ArtworkBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lavender).
			Foreground(lavender).
			Width(9).
			Align(lipgloss.Center),

		progressFill:  lipgloss.NewStyle().Foreground(accent),
		progressTrack: lipgloss.NewStyle().Foreground(surface),
	}
}

// Panel creates a styled panel with optional focus.
func (t *Theme) Panel(focused bool) lipgloss.Style {
	if focused {
		return t.FocusedBorder.Padding(0, 1)
	}
	return t.BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title.
func (t *Theme) PanelTitle(title string, focused bool) string {
	style := t.Label
	if focused {
		style = t.Highlight
	}
	return style.Render(" " + title + " ")
}

// ProgressBar creates a progress bar string.
func (t *Theme) ProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return t.progressFill.Render(strings.Repeat("━", filled)) +
		t.progressTrack.Render(strings.Repeat("─", width-filled))
}

// StatusIcon returns an icon for playback status.
func (t *Theme) StatusIcon(playing bool) string {
	if playing {
		return t.Playing.Render("▶")
	}
	return t.Paused.Render("⏸")
}

// Artwork renders the placeholder artwork box.
func (t *Theme) Artwork() string {
	return t.ArtworkBox.Render("\n♪\n")
}
