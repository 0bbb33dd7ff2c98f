package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lilt-audio/lilt/internal/catalog/player"
)

var playCmd = &cobra.Command{
	Use:   "play [uri]",
	Short: "Start or resume remote playback",
	Long:  `Starts catalog playback. With a track URI plays that track, otherwise resumes.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlay,
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause remote playback",
	RunE:  runPause,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show remote playback status",
	RunE:  runPlaybackStatus,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(statusCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	c, err := catalogClient()
	if err != nil {
		return err
	}

	p := player.New(c)
	ctx := context.Background()

	if len(args) == 1 {
		err = p.PlayURI(ctx, args[0])
	} else {
		err = p.Play(ctx)
	}
	if err != nil {
		return fmt.Errorf("play failed: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "playing"})
	}
	fmt.Println("▶ Playing")
	return nil
}

func runPause(cmd *cobra.Command, args []string) error {
	c, err := catalogClient()
	if err != nil {
		return err
	}

	p := player.New(c)
	if err := p.Pause(context.Background()); err != nil {
		return fmt.Errorf("pause failed: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "paused"})
	}
	fmt.Println("⏸ Paused")
	return nil
}

func runPlaybackStatus(cmd *cobra.Command, args []string) error {
	c, err := catalogClient()
	if err != nil {
		return err
	}

	state, err := c.GetPlayerState(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get player state: %w", err)
	}

	if state.Item == nil && !state.IsPlaying {
		if JSONOutput() {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"playing": false,
				"message": "No active playback",
			})
		}
		fmt.Println("No active playback")
		return nil
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(state)
	}

	playIcon := "▶"
	if !state.IsPlaying {
		playIcon = "⏸"
	}

	if state.Item != nil {
		fmt.Printf("%s %s\n", playIcon, state.Item.Name)
		fmt.Printf("  %s — %s\n", artistNames(state.Item.Artists), state.Item.Album.Name)
		fmt.Printf("  %s %s / %s\n",
			FormatProgress(state.ProgressMS, state.Item.DurationMS, 30),
			FormatDuration(state.ProgressMS/1000),
			FormatDuration(state.Item.DurationMS/1000))
	} else {
		fmt.Printf("%s (no track)\n", playIcon)
	}

	if state.Timestamp > 0 {
		fmt.Printf("  Updated %s\n", humanize.Time(time.UnixMilli(state.Timestamp)))
	}

	return nil
}
