package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

func TestDecodeSnapshot(t *testing.T) {
	data := []byte(`{
		"eventType": "StateSynced",
		"matchId": "m1",
		"version": 7,
		"G": {"solution": [{"word": "SOUP"}], "timeRef": 1700000000000},
		"ctx": {"currentPlayer": "0", "gameover": {"winner": "1"}},
		"session": {"players": [{"player_id": "0"}, {"player_id": "1"}], "room": {"match_id": "m1"}}
	}`)

	snap, err := decodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), snap.Version)
	require.NotNil(t, snap.Anchor)
	assert.Equal(t, models.TurnAnchor(1700000000000), *snap.Anchor)
	assert.True(t, snap.GameOver.HasWinner())
	assert.Len(t, snap.Session.Players, 2)
}

func TestDecodeSnapshotRejectsOtherEvents(t *testing.T) {
	_, err := decodeSnapshot([]byte(`{"eventType":"ChatMessage"}`))
	assert.ErrorIs(t, err, errUnexpectedEvent)

	_, err = decodeSnapshot([]byte(`not json`))
	assert.Error(t, err)
}
