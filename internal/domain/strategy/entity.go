package strategy

import "time"

// Strategy is the global thought-leadership strategy that guides
// content generation for all profiles. There is at most one row.
type Strategy struct {
	Text      string    `json:"strategy"`
	UpdatedAt time.Time `json:"updated_at"`
}
