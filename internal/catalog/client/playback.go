package client

import "context"

// PlayOptions configures a play request.
type PlayOptions struct {
	URIs       []string `json:"uris,omitempty"`
	PositionMS int      `json:"position_ms,omitempty"`
}

// Play starts or resumes remote playback.
// If opts is nil, resumes current playback.
func (c *Client) Play(ctx context.Context, opts *PlayOptions) error {
	// The service requires a JSON body even for resume - send empty object
	// if no options
	body := opts
	if body == nil {
		body = &PlayOptions{}
	}
	return c.Put(ctx, "/v1/player/play", body, nil)
}

// Pause pauses remote playback.
func (c *Client) Pause(ctx context.Context) error {
	return c.Put(ctx, "/v1/player/pause", nil, nil)
}
