package authz

import "time"

// Decision is the persisted record of the user's music access choice.
type Decision struct {
	Status    string    `json:"status"`
	DecidedAt time.Time `json:"decided_at"`
}
