package mover

import (
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/lettersoup/go/internal/events"
	"github.com/mcdev12/lettersoup/go/internal/models"
)

func TestBuildMsgCarriesIdempotencyHeaders(t *testing.T) {
	m := NewNATS(nil, Identity{MatchID: "m1", PlayerID: "0"}, 0)
	assert.Equal(t, defaultRequestTimeout, m.timeout)

	req := events.ChangeTurnRequest{MatchID: "m1", PlayerID: "0", Anchor: 42}
	msg, err := m.buildMsg(events.MoveChangeTurn, events.ChangeTurnKey("m1", 42), req)
	require.NoError(t, err)

	assert.Equal(t, "soup.moves.m1.changeTurn", msg.Subject)
	assert.Equal(t, "m1:42", msg.Header.Get(events.HeaderIdempotencyKey))
	assert.Equal(t, "m1:42", msg.Header.Get(nats.MsgIdHdr))
	assert.Equal(t, "0", msg.Header.Get("Player-ID"))

	var decoded events.ChangeTurnRequest
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	assert.Equal(t, models.TurnAnchor(42), decoded.Anchor)
}

func TestDecodeReply(t *testing.T) {
	assert.NoError(t, decodeReply(events.MoveWordFound, []byte(`{"accepted":true}`)))

	err := decodeReply(events.MoveWordFound, []byte(`{"accepted":false,"reason":"not your turn"}`))
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "not your turn")

	assert.Error(t, decodeReply(events.MoveWordFound, []byte(`not json`)))
}
