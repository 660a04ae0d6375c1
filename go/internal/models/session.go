package models

import "time"

// SessionMode defines how turn exclusivity is enforced for a session.
type SessionMode string

const (
	SessionModeUnset  SessionMode = "UNSET"
	SessionModeOnline SessionMode = "ONLINE"
	SessionModeLocal  SessionMode = "LOCAL"
)

// TurnAnchor is the authoritative start of the current turn, in milliseconds since epoch.
type TurnAnchor int64

// AnchorFromTime converts a wall-clock time into a TurnAnchor.
func AnchorFromTime(t time.Time) TurnAnchor {
	return TurnAnchor(t.UnixMilli())
}

// Time returns the anchor as a time.Time.
func (a TurnAnchor) Time() time.Time {
	return time.UnixMilli(int64(a))
}

// GameOver is the terminal state reported by the game service.
// A nil *GameOver means the game is still in progress.
type GameOver struct {
	Draw   bool   `json:"draw,omitempty"`
	Winner string `json:"winner,omitempty"`
}

// HasWinner reports whether a winner was declared.
func (g *GameOver) HasWinner() bool {
	return g != nil && !g.Draw && g.Winner != ""
}

// Snapshot is a versioned, read-only view of the authoritative game state.
type Snapshot struct {
	Version       uint64         `json:"version"`
	Puzzle        [][]string     `json:"puzzle,omitempty"`
	Solution      []SolvedWord   `json:"solution"`
	Anchor        *TurnAnchor    `json:"time_ref,omitempty"`
	CurrentPlayer string         `json:"current_player"`
	GameOver      *GameOver      `json:"gameover,omitempty"`
	Session       *SessionConfig `json:"session,omitempty"`
}
