package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

func TestResolveMode(t *testing.T) {
	assert.Equal(t, models.SessionModeUnset, ResolveMode(nil))
	assert.Equal(t, models.SessionModeLocal, ResolveMode(&models.SessionConfig{}))
	assert.Equal(t, models.SessionModeOnline, ResolveMode(&models.SessionConfig{
		Room: &models.RoomMetadata{MatchID: "m1"},
	}))
}

func TestMayAct(t *testing.T) {
	type testcase struct {
		name  string
		mode  models.SessionMode
		local string
		owner string
		want  bool
	}
	for _, tc := range []testcase{
		{"online owner", models.SessionModeOnline, "0", "0", true},
		{"online other seat", models.SessionModeOnline, "1", "0", false},
		{"online spectator", models.SessionModeOnline, "", "0", false},
		{"online unknown owner", models.SessionModeOnline, "", "", false},
		{"local owner", models.SessionModeLocal, "0", "0", true},
		{"local other seat", models.SessionModeLocal, "1", "0", true},
		{"local no identity", models.SessionModeLocal, "", "1", true},
		{"no session", models.SessionModeUnset, "0", "0", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MayAct(tc.mode, tc.local, tc.owner))
		})
	}
}

func TestMayActOn(t *testing.T) {
	assert.False(t, MayActOn(nil, "0"))

	snap := &models.Snapshot{
		CurrentPlayer: "0",
		Session:       &models.SessionConfig{Room: &models.RoomMetadata{MatchID: "m1"}},
	}
	assert.True(t, MayActOn(snap, "0"))
	assert.False(t, MayActOn(snap, "1"))

	snap.Session = nil
	assert.False(t, MayActOn(snap, "0"))
}
