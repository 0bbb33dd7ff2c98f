package client

// Track represents a catalog track.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	DurationMS int      `json:"duration_ms"`
	Artists    []Artist `json:"artists"`
	Album      Album    `json:"album"`
}

// Artist represents a catalog artist.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album represents a catalog album.
type Album struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchResponse represents the response from a search query.
type SearchResponse struct {
	Tracks *SearchTracks `json:"tracks"`
}

// SearchTracks contains track search results.
type SearchTracks struct {
	Items  []Track `json:"items"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Next   string  `json:"next"`
}

// PlayerState represents the remote player state.
type PlayerState struct {
	IsPlaying  bool   `json:"is_playing"`
	ProgressMS int    `json:"progress_ms"`
	Timestamp  int64  `json:"timestamp"`
	Item       *Track `json:"item"`
}
