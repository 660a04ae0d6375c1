package outcome

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

func TestMessageDrawRegardlessOfMode(t *testing.T) {
	is := is.New(t)
	for _, mode := range []models.SessionMode{models.SessionModeOnline, models.SessionModeLocal, models.SessionModeUnset} {
		msg, ok := Message(&models.GameOver{Draw: true}, mode, "0", DefaultLabels())
		is.True(ok)
		is.Equal(msg, MessageDraw)
	}
}

func TestMessageOnline(t *testing.T) {
	is := is.New(t)
	over := &models.GameOver{Winner: "1"}

	msg, ok := Message(over, models.SessionModeOnline, "1", nil)
	is.True(ok)
	is.Equal(msg, MessageYouWon)

	msg, ok = Message(over, models.SessionModeOnline, "0", nil)
	is.True(ok)
	is.Equal(msg, MessageYouLost)
}

func TestMessageLocalUsesLabels(t *testing.T) {
	is := is.New(t)

	msg, ok := Message(&models.GameOver{Winner: "1"}, models.SessionModeLocal, "", DefaultLabels())
	is.True(ok)
	is.Equal(msg, "Player 2 (blue) won")

	labels := Labels{"0": "red", "1": "blue", "2": "green"}
	msg, ok = Message(&models.GameOver{Winner: "2"}, models.SessionModeLocal, "", labels)
	is.True(ok)
	is.Equal(msg, "Player 3 (green) won")

	msg, ok = Message(&models.GameOver{Winner: "3"}, models.SessionModeLocal, "", labels)
	is.True(ok)
	is.Equal(msg, "Player 4 won")
}

func TestMessageWithoutOutcome(t *testing.T) {
	is := is.New(t)

	_, ok := Message(nil, models.SessionModeOnline, "0", nil)
	is.True(!ok)

	_, ok = Message(&models.GameOver{}, models.SessionModeOnline, "0", nil)
	is.True(!ok)

	_, ok = Message(&models.GameOver{Winner: "0"}, models.SessionModeUnset, "0", nil)
	is.True(!ok)
}

func TestPlayerNumber(t *testing.T) {
	is := is.New(t)
	is.Equal(PlayerNumber("0"), "1")
	is.Equal(PlayerNumber("9"), "10")
	is.Equal(PlayerNumber("host"), "host")
}
