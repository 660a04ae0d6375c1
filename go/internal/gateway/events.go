package gateway

import (
	"encoding/json"
	"time"
)

// DisplayEvent is the envelope pushed to every display connection.
type DisplayEvent struct {
	ID        string          `json:"id"`
	MatchID   string          `json:"match_id,omitempty"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

type EventType string

const (
	EventTypeView       EventType = "SeatView"
	EventTypeWordResult EventType = "WordResult"
)

// Client message types.
const (
	ClientMessageWordFound = "word_found"
)

// ClientMessage is sent by a display connection, e.g. {"type":"word_found","word":"SOUP"}.
type ClientMessage struct {
	Type string `json:"type"`
	Word string `json:"word,omitempty"`
}

// WordResultPayload answers a word_found client message.
type WordResultPayload struct {
	Word      string `json:"word"`
	Submitted bool   `json:"submitted"`
	Error     string `json:"error,omitempty"`
}
