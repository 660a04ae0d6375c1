package session

import (
	"github.com/mcdev12/lettersoup/go/internal/models"
)

// ResolveMode classifies a session from its configuration.
//
// A nil config means there is no session yet and yields SessionModeUnset; callers
// must treat that as "no context" instead of assuming local play.
func ResolveMode(cfg *models.SessionConfig) models.SessionMode {
	if cfg == nil {
		return models.SessionModeUnset
	}
	if cfg.Room != nil {
		return models.SessionModeOnline
	}
	return models.SessionModeLocal
}
