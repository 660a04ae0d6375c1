package models

// PlayerInRoom is a seat in the session roster as reported by the game service.
type PlayerInRoom struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// RoomMetadata is present only for networked sessions.
type RoomMetadata struct {
	MatchID string `json:"match_id"`
	RoomID  string `json:"room_id,omitempty"`
}

// SessionConfig describes the roster and, for online play, the networked room.
type SessionConfig struct {
	Players []PlayerInRoom `json:"players"`
	Room    *RoomMetadata  `json:"room,omitempty"`
}

// PlayerByID returns the roster entry for a player id.
func (c *SessionConfig) PlayerByID(playerID string) (PlayerInRoom, bool) {
	if c == nil {
		return PlayerInRoom{}, false
	}
	for _, p := range c.Players {
		if p.PlayerID == playerID {
			return p, true
		}
	}
	return PlayerInRoom{}, false
}
