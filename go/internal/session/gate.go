package session

import (
	"github.com/mcdev12/lettersoup/go/internal/models"
)

// MayAct reports whether the local seat may submit a state-changing move right now.
//
// Online sessions are turn-exclusive: only the seat owning the current turn may act.
// Local sessions share one device, so any participant may drive the board.
// The game service re-validates every request; this is a courtesy check only.
func MayAct(mode models.SessionMode, localPlayerID, currentTurnOwner string) bool {
	switch mode {
	case models.SessionModeOnline:
		return localPlayerID != "" && localPlayerID == currentTurnOwner
	case models.SessionModeLocal:
		return true
	default:
		return false
	}
}

// MayActOn evaluates the gate against a snapshot.
func MayActOn(snap *models.Snapshot, localPlayerID string) bool {
	if snap == nil {
		return false
	}
	return MayAct(ResolveMode(snap.Session), localPlayerID, snap.CurrentPlayer)
}
