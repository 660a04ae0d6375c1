package events

import (
	"fmt"
	"time"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

// Wire types shared between the state consumer, the movers and the gateway

const (
	EventTypeStateSynced = "StateSynced"

	MoveWordFound  = "wordFound"
	MoveChangeTurn = "changeTurn"

	// HeaderIdempotencyKey carries the de-duplication key for a move request.
	HeaderIdempotencyKey = "Idempotency-Key"
)

// GamePayload is the game-specific part of an authoritative state update.
type GamePayload struct {
	Puzzle   [][]string          `json:"puzzle,omitempty"`
	Solution []models.SolvedWord `json:"solution"`
	TimeRef  *int64              `json:"timeRef,omitempty"`
}

// ContextPayload is the turn bookkeeping of an authoritative state update.
type ContextPayload struct {
	CurrentPlayer string           `json:"currentPlayer"`
	GameOver      *models.GameOver `json:"gameover,omitempty"`
}

// StateEnvelope is published by the game service each time it applies a move.
type StateEnvelope struct {
	EventID   string                `json:"eventId"`
	EventType string                `json:"eventType"`
	MatchID   string                `json:"matchId"`
	Version   uint64                `json:"version"`
	Timestamp time.Time             `json:"timestamp"`
	G         GamePayload           `json:"G"`
	Ctx       ContextPayload        `json:"ctx"`
	Session   *models.SessionConfig `json:"session,omitempty"`
}

// Snapshot converts the envelope into the read-only view consumed by the orchestrator.
func (e StateEnvelope) Snapshot() models.Snapshot {
	snap := models.Snapshot{
		Version:       e.Version,
		Puzzle:        e.G.Puzzle,
		Solution:      e.G.Solution,
		CurrentPlayer: e.Ctx.CurrentPlayer,
		GameOver:      e.Ctx.GameOver,
		Session:       e.Session,
	}
	if e.G.TimeRef != nil {
		anchor := models.TurnAnchor(*e.G.TimeRef)
		snap.Anchor = &anchor
	}
	return snap
}

// WordFoundRequest asks the game service to attribute a word to the requesting seat.
type WordFoundRequest struct {
	RequestID   string            `json:"request_id"`
	MatchID     string            `json:"match_id"`
	PlayerID    string            `json:"player_id"`
	Word        models.SolvedWord `json:"word"`
	RequestedAt time.Time         `json:"requested_at"`
}

// ChangeTurnRequest asks the game service to end the turn that started at Anchor.
type ChangeTurnRequest struct {
	RequestID   string            `json:"request_id"`
	MatchID     string            `json:"match_id"`
	PlayerID    string            `json:"player_id"`
	Anchor      models.TurnAnchor `json:"anchor"`
	RequestedAt time.Time         `json:"requested_at"`
}

// MoveResponse is the game service's reply to a move request.
type MoveResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// StateSubject is the subject authoritative snapshots for a match are published on.
func StateSubject(matchID string) string {
	return fmt.Sprintf("soup.state.%s", matchID)
}

// MoveSubject is the request subject for a move type.
func MoveSubject(matchID, move string) string {
	return fmt.Sprintf("soup.moves.%s.%s", matchID, move)
}

// ChangeTurnKey identifies a turn advance; the game service applies at most one per key.
func ChangeTurnKey(matchID string, anchor models.TurnAnchor) string {
	return fmt.Sprintf("%s:%d", matchID, int64(anchor))
}

// WordFoundKey identifies a word claim.
func WordFoundKey(matchID, word string) string {
	return fmt.Sprintf("%s:word:%s", matchID, word)
}
