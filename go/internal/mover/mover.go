package mover

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrRejected is returned when the game service declines a move.
var ErrRejected = errors.New("move rejected")

// Identity is the seat a mover sends requests for.
type Identity struct {
	MatchID  string
	PlayerID string
}

// jsonCodec lets the move service speak plain JSON instead of protobuf.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func rejection(move, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: %s", ErrRejected, move)
	}
	return fmt.Errorf("%w: %s: %s", ErrRejected, move, reason)
}
