package mover

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/events"
	"github.com/mcdev12/lettersoup/go/internal/models"
)

const defaultRequestTimeout = 5 * time.Second

// NATS sends moves as request/reply messages on soup.moves.<match>.<move>.
type NATS struct {
	nc      *nats.Conn
	id      Identity
	timeout time.Duration
}

func NewNATS(nc *nats.Conn, id Identity, timeout time.Duration) *NATS {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &NATS{nc: nc, id: id, timeout: timeout}
}

func (m *NATS) ChangeTurn(ctx context.Context, anchor models.TurnAnchor) error {
	req := events.ChangeTurnRequest{
		RequestID:   uuid.NewString(),
		MatchID:     m.id.MatchID,
		PlayerID:    m.id.PlayerID,
		Anchor:      anchor,
		RequestedAt: time.Now().UTC(),
	}
	return m.request(ctx, events.MoveChangeTurn, events.ChangeTurnKey(m.id.MatchID, anchor), req)
}

func (m *NATS) WordFound(ctx context.Context, word models.SolvedWord) error {
	req := events.WordFoundRequest{
		RequestID:   uuid.NewString(),
		MatchID:     m.id.MatchID,
		PlayerID:    m.id.PlayerID,
		Word:        word,
		RequestedAt: time.Now().UTC(),
	}
	return m.request(ctx, events.MoveWordFound, events.WordFoundKey(m.id.MatchID, word.Word), req)
}

func (m *NATS) request(ctx context.Context, move, key string, payload any) error {
	msg, err := m.buildMsg(move, key, payload)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	reply, err := m.nc.RequestMsgWithContext(reqCtx, msg)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", move, err)
	}

	log.Debug().
		Str("subject", msg.Subject).
		Str("idempotency_key", key).
		Msg("move request answered")

	return decodeReply(move, reply.Data)
}

func (m *NATS) buildMsg(move, key string, payload any) (*nats.Msg, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", move, err)
	}
	msg := nats.NewMsg(events.MoveSubject(m.id.MatchID, move))
	msg.Data = data
	msg.Header.Set(events.HeaderIdempotencyKey, key)
	msg.Header.Set(nats.MsgIdHdr, key)
	msg.Header.Set("Player-ID", m.id.PlayerID)
	return msg, nil
}

func decodeReply(move string, data []byte) error {
	var res events.MoveResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("failed to decode %s reply: %w", move, err)
	}
	if !res.Accepted {
		return rejection(move, res.Reason)
	}
	return nil
}
