package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

func TestCheckWord(t *testing.T) {
	online := onlineSnapshot(1, 0, "0")
	over := onlineSnapshot(2, 0, "0")
	over.GameOver = &models.GameOver{Winner: "0"}
	noSession := onlineSnapshot(1, 0, "0")
	noSession.Session = nil

	tests := []struct {
		name   string
		snap   *models.Snapshot
		player string
		word   string
		want   error
	}{
		{"no snapshot", nil, "0", "GRID", ErrNoSession},
		{"no session", &noSession, "0", "GRID", ErrNoSession},
		{"not the turn owner", &online, "1", "GRID", errNotYourTurn},
		{"game over", &over, "0", "GRID", errGameOver},
		{"unknown word", &online, "0", "NOPE", errUnknownWord},
		{"already solved", &online, "0", "SOUP", errAlreadySolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkWord(tt.snap, tt.player, tt.word)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckWordAttributesToTurnOwner(t *testing.T) {
	snap := localSnapshot(1, 0, "1")

	got, err := checkWord(&snap, "", " grid ")
	require.NoError(t, err)
	assert.Equal(t, models.SolvedWord{Word: "GRID", SolvedBy: "1"}, got)
}
