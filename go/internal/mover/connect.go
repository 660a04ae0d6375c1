package mover

import (
	"context"
	"fmt"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mcdev12/lettersoup/go/internal/events"
	"github.com/mcdev12/lettersoup/go/internal/models"
)

const (
	ChangeTurnProcedure = "/soup.v1.MoveService/ChangeTurn"
	WordFoundProcedure  = "/soup.v1.MoveService/WordFound"
)

// Connect sends moves to the game service's MoveService over Connect RPC.
type Connect struct {
	changeTurn *connect.Client[events.ChangeTurnRequest, events.MoveResponse]
	wordFound  *connect.Client[events.WordFoundRequest, events.MoveResponse]
	id         Identity
}

func NewConnect(httpClient connect.HTTPClient, baseURL string, id Identity) *Connect {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Connect{
		changeTurn: connect.NewClient[events.ChangeTurnRequest, events.MoveResponse](
			httpClient,
			baseURL+ChangeTurnProcedure,
			connect.WithCodec(jsonCodec{}),
			connect.WithIdempotency(connect.IdempotencyIdempotent),
		),
		wordFound: connect.NewClient[events.WordFoundRequest, events.MoveResponse](
			httpClient,
			baseURL+WordFoundProcedure,
			connect.WithCodec(jsonCodec{}),
		),
		id: id,
	}
}

func (m *Connect) ChangeTurn(ctx context.Context, anchor models.TurnAnchor) error {
	req := connect.NewRequest(&events.ChangeTurnRequest{
		RequestID:   uuid.NewString(),
		MatchID:     m.id.MatchID,
		PlayerID:    m.id.PlayerID,
		Anchor:      anchor,
		RequestedAt: time.Now().UTC(),
	})
	req.Header().Set(events.HeaderIdempotencyKey, events.ChangeTurnKey(m.id.MatchID, anchor))

	res, err := m.changeTurn.CallUnary(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to call change turn: %w", err)
	}
	if !res.Msg.Accepted {
		return rejection(events.MoveChangeTurn, res.Msg.Reason)
	}
	return nil
}

func (m *Connect) WordFound(ctx context.Context, word models.SolvedWord) error {
	req := connect.NewRequest(&events.WordFoundRequest{
		RequestID:   uuid.NewString(),
		MatchID:     m.id.MatchID,
		PlayerID:    m.id.PlayerID,
		Word:        word,
		RequestedAt: time.Now().UTC(),
	})
	req.Header().Set(events.HeaderIdempotencyKey, events.WordFoundKey(m.id.MatchID, word.Word))

	res, err := m.wordFound.CallUnary(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to call word found: %w", err)
	}
	if !res.Msg.Accepted {
		return rejection(events.MoveWordFound, res.Msg.Reason)
	}
	return nil
}
