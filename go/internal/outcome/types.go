package outcome

import (
	"time"
)

// Result is the terminal record of a session, written once when game over is observed.
type Result struct {
	MatchID    string    `json:"match_id"`
	Draw       bool      `json:"draw"`
	Winner     string    `json:"winner,omitempty"`
	Ranking    Ranking   `json:"ranking"`
	RecordedAt time.Time `json:"recorded_at"`
}
