package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/lettersoup/go/internal/turnclock"
)

const (
	TransportNATS    = "nats"
	TransportConnect = "connect"
)

// Config holds the seat agent's tunables. Values come from an optional YAML file and are
// overridden by environment variables.
type Config struct {
	MatchID  string `yaml:"match_id"`
	PlayerID string `yaml:"player_id"`

	TurnDuration time.Duration     `yaml:"turn_duration"`
	GraceBuffer  time.Duration     `yaml:"grace_buffer"`
	TickInterval time.Duration     `yaml:"tick_interval"`
	PlayerLabels map[string]string `yaml:"player_labels"`

	Transport      string        `yaml:"transport"`
	MoveServiceURL string        `yaml:"move_service_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	NATSURL    string `yaml:"nats_url"`
	StreamName string `yaml:"stream_name"`

	Port      string `yaml:"port"`
	DBEnabled bool   `yaml:"db_enabled"`
}

func Default() Config {
	return Config{
		TurnDuration:   turnclock.DefaultTurnDuration,
		GraceBuffer:    turnclock.DefaultGraceBuffer,
		TickInterval:   time.Second,
		PlayerLabels:   map[string]string{"0": "red", "1": "blue"},
		Transport:      TransportNATS,
		RequestTimeout: 5 * time.Second,
		NATSURL:        "nats://localhost:4222",
		StreamName:     "SOUP_STATE",
		Port:           "8081",
	}
}

// Load reads path over the defaults (an empty path skips the file) and applies env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.MatchID = getEnv("MATCH_ID", c.MatchID)
	// An empty seat id is valid: it denotes a spectator or a shared local device.
	if v, ok := os.LookupEnv("SEAT_PLAYER_ID"); ok {
		c.PlayerID = v
	}
	c.TurnDuration = getEnvAsDuration("TURN_DURATION", c.TurnDuration)
	c.GraceBuffer = getEnvAsDuration("GRACE_BUFFER", c.GraceBuffer)
	c.Transport = getEnv("MOVE_TRANSPORT", c.Transport)
	c.MoveServiceURL = getEnv("MOVE_SERVICE_URL", c.MoveServiceURL)
	c.NATSURL = getEnv("NATS_URL", c.NATSURL)
	c.StreamName = getEnv("STATE_STREAM", c.StreamName)
	c.Port = getEnv("GATEWAY_PORT", c.Port)
	c.DBEnabled = getEnvAsBool("DB_ENABLED", c.DBEnabled)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.MatchID == "" {
		return errors.New("match id is required")
	}
	if c.TurnDuration <= 0 {
		return fmt.Errorf("turn duration must be positive, got %s", c.TurnDuration)
	}
	if c.GraceBuffer < 0 {
		return fmt.Errorf("grace buffer must not be negative, got %s", c.GraceBuffer)
	}
	switch c.Transport {
	case TransportNATS:
	case TransportConnect:
		if c.MoveServiceURL == "" {
			return errors.New("move service url is required for the connect transport")
		}
	default:
		return fmt.Errorf("unknown move transport %q", c.Transport)
	}
	return nil
}

// Reconciler builds the turn clock from the configured durations.
func (c Config) Reconciler() turnclock.Reconciler {
	return turnclock.NewReconciler(c.TurnDuration, c.GraceBuffer)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("45s") or whole seconds ("45").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
