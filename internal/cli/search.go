package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lilt-audio/lilt/internal/catalog/client"
	liltErrors "github.com/lilt-audio/lilt/internal/errors"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the remote catalog",
	Long:  `Searches the configured catalog service for tracks.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 10, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

// catalogClient builds the catalog API client. Requires granted music
// access and a configured service URL.
func catalogClient() (*client.Client, error) {
	mgr, err := authzManager()
	if err != nil {
		return nil, err
	}
	if !mgr.Status().Granted() {
		return nil, liltErrors.ErrNotAuthorized
	}

	if cfg.Catalog.BaseURL == "" {
		return nil, liltErrors.ErrNotConfigured
	}

	c := client.New(client.Options{
		BaseURL:      cfg.Catalog.BaseURL,
		ClientID:     cfg.Catalog.ClientID,
		ClientSecret: os.Getenv("LILT_CATALOG_CLIENT_SECRET"),
		Timeout:      time.Duration(cfg.Catalog.Timeout) * time.Second,
	})
	if Verbose() {
		c.SetVerbose(true, func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}
	return c, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := catalogClient()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")

	ctx := context.Background()
	resp, err := c.Search(ctx, client.SearchOptions{Query: query, Limit: searchLimit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if resp.Tracks == nil || len(resp.Tracks.Items) == 0 {
		if JSONOutput() {
			_ = json.NewEncoder(os.Stdout).Encode([]client.Track{})
		} else {
			fmt.Println("No results.")
		}
		return nil
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(resp.Tracks.Items)
	}

	table := NewTable("TITLE", "ARTIST", "ALBUM", "LENGTH")
	for _, t := range resp.Tracks.Items {
		table.Row(
			TruncateString(t.Name, 40),
			TruncateString(artistNames(t.Artists), 30),
			TruncateString(t.Album.Name, 30),
			FormatDuration(t.DurationMS/1000),
		)
	}
	table.Flush()

	fmt.Printf("\nShowing %d of %d results\n", len(resp.Tracks.Items), resp.Tracks.Total)
	return nil
}

func artistNames(artists []client.Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
