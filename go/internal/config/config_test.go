package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
match_id: m1
player_id: "1"
turn_duration: 45s
grace_buffer: 3s
player_labels:
  "0": red
  "1": blue
  "2": green
transport: connect
move_service_url: http://game:8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "m1", cfg.MatchID)
	assert.Equal(t, "1", cfg.PlayerID)
	assert.Equal(t, 45*time.Second, cfg.TurnDuration)
	assert.Equal(t, 3*time.Second, cfg.GraceBuffer)
	assert.Equal(t, "green", cfg.PlayerLabels["2"])
	assert.Equal(t, TransportConnect, cfg.Transport)
	assert.Equal(t, 48*time.Second, cfg.Reconciler().Budget())

	// Untouched keys keep their defaults.
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, "SOUP_STATE", cfg.StreamName)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "match_id: m1\nplayer_id: \"1\"\n")
	t.Setenv("MATCH_ID", "m2")
	t.Setenv("SEAT_PLAYER_ID", "")
	t.Setenv("TURN_DURATION", "30")
	t.Setenv("GRACE_BUFFER", "2s")
	t.Setenv("DB_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "m2", cfg.MatchID)
	assert.Equal(t, "", cfg.PlayerID)
	assert.Equal(t, 30*time.Second, cfg.TurnDuration)
	assert.Equal(t, 2*time.Second, cfg.GraceBuffer)
	assert.True(t, cfg.DBEnabled)
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.MatchID = "m1"
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing match", func(c *Config) { c.MatchID = "" }},
		{"zero turn", func(c *Config) { c.TurnDuration = 0 }},
		{"negative grace", func(c *Config) { c.GraceBuffer = -time.Second }},
		{"connect without url", func(c *Config) { c.Transport = TransportConnect }},
		{"unknown transport", func(c *Config) { c.Transport = "carrier-pigeon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
