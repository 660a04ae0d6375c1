package outcome

import (
	"fmt"
	"strconv"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

const (
	MessageDraw    = "draw"
	MessageYouWon  = "you won"
	MessageYouLost = "you lost"
)

// Labels maps a player id to the display label used on a shared local device.
type Labels map[string]string

// DefaultLabels returns the two-seat colour table.
func DefaultLabels() Labels {
	return Labels{"0": "red", "1": "blue"}
}

// Message selects the game-over text for the local seat.
// It returns false while the game is still running or no winner can be named.
func Message(over *models.GameOver, mode models.SessionMode, localPlayerID string, labels Labels) (string, bool) {
	if over == nil {
		return "", false
	}
	if over.Draw {
		return MessageDraw, true
	}
	if !over.HasWinner() {
		return "", false
	}

	switch mode {
	case models.SessionModeOnline:
		if over.Winner == localPlayerID {
			return MessageYouWon, true
		}
		return MessageYouLost, true
	case models.SessionModeLocal:
		seat := PlayerNumber(over.Winner)
		if label, ok := labels[over.Winner]; ok && label != "" {
			return fmt.Sprintf("Player %s (%s) won", seat, label), true
		}
		return fmt.Sprintf("Player %s won", seat), true
	default:
		return "", false
	}
}

// PlayerNumber renders a zero-based numeric player id as a one-based seat number.
// Non-numeric ids are returned unchanged.
func PlayerNumber(playerID string) string {
	idx, err := strconv.Atoi(playerID)
	if err != nil {
		return playerID
	}
	return strconv.Itoa(idx + 1)
}
