package client

import (
	"context"
	"fmt"
	"strconv"
)

// SearchOptions configures a search query.
type SearchOptions struct {
	Query  string
	Limit  int
	Offset int
}

// Search performs a catalog search for tracks.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (*SearchResponse, error) {
	if opts.Query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	params := map[string]string{
		"q":    opts.Query,
		"type": "track",
	}

	if opts.Limit > 0 {
		params["limit"] = strconv.Itoa(opts.Limit)
	}
	if opts.Offset > 0 {
		params["offset"] = strconv.Itoa(opts.Offset)
	}

	var resp SearchResponse
	if err := c.Get(ctx, BuildURL("/v1/search", params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPlayerState returns the remote player state.
func (c *Client) GetPlayerState(ctx context.Context) (*PlayerState, error) {
	var state PlayerState
	if err := c.Get(ctx, "/v1/player", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
