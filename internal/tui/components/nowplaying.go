package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lilt-audio/lilt/internal/core"
	"github.com/lilt-audio/lilt/internal/tui/styles"
)

// NowPlaying displays the demo track card: artwork placeholder, title,
// artist, transport icon and an optional message banner.
type NowPlaying struct{}

// NewNowPlaying creates a new NowPlaying component.
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{}
}

// Render renders the now playing card.
func (n *NowPlaying) Render(th *styles.Theme, state *core.PlaybackState, banner string, width int) string {
	title := th.PanelTitle("Now Playing", true)

	var content string
	if state == nil || state.Track == nil {
		content = th.Muted.Render("No track loaded")
	} else {
		content = n.renderTrack(th, state, width-4)
	}

	if banner != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			"",
			th.Banner.Render(banner),
		)
	}

	panel := th.Panel(true).Width(width)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (n *NowPlaying) renderTrack(th *styles.Theme, state *core.PlaybackState, width int) string {
	track := state.Track

	artwork := th.Artwork()

	icon := th.StatusIcon(state.IsPlaying)
	title := th.Title.Render(track.Title)
	artist := th.Subtitle.Render(track.Artist)

	meta := lipgloss.JoinVertical(lipgloss.Left,
		"",
		icon+" "+title,
		"  "+artist,
	)

	card := lipgloss.JoinHorizontal(lipgloss.Top, artwork, "  ", meta)

	// Progress line only makes sense once the sample length is known
	if track.Duration <= 0 {
		return card
	}

	progressWidth := width - 14 // Account for times on either side
	if progressWidth < 10 {
		progressWidth = 10
	}
	bar := th.ProgressBar(state.ProgressPercent(), progressWidth)
	progress := fmt.Sprintf("%s %s %s",
		formatDuration(state.Progress), bar, formatDuration(track.Duration))

	return lipgloss.JoinVertical(lipgloss.Left,
		card,
		"",
		progress,
	)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d", m, s)
}
