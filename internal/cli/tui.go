package cli

import (
	"github.com/spf13/cobra"

	"github.com/lilt-audio/lilt/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch the now-playing card",
	Long: `Launch the interactive now-playing card.

Keyboard shortcuts:
  Space        Play/Pause
  t            Cycle color theme
  ?            Help
  q, Ctrl+C    Quit

The first launch asks for music access; the answer is remembered.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(cfg, logger)
}
