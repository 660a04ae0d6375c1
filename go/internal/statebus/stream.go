package statebus

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

type StreamConfig struct {
	Name            string
	SubjectPrefix   string
	MaxAge          time.Duration // How long to keep snapshots
	MaxMsgsPerSubj  int64         // Snapshots kept per match
	Replicas        int
	DuplicateWindow time.Duration
}

func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		Name:            "SOUP_STATE",
		SubjectPrefix:   "soup.state",
		MaxAge:          24 * time.Hour,
		MaxMsgsPerSubj:  16,
		Replicas:        1,
		DuplicateWindow: 2 * time.Minute,
	}
}

func (c StreamConfig) jetstreamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:              c.Name,
		Description:       "Authoritative letter soup state snapshots",
		Subjects:          []string{fmt.Sprintf("%s.>", c.SubjectPrefix)},
		Retention:         jetstream.LimitsPolicy,
		MaxAge:            c.MaxAge,
		MaxMsgsPerSubject: c.MaxMsgsPerSubj,
		Storage:           jetstream.FileStorage,
		Replicas:          c.Replicas,
		Duplicates:        c.DuplicateWindow,
	}
}

// EnsureStream creates the state stream or updates it when its limits drifted.
func EnsureStream(ctx context.Context, js jetstream.JetStream, cfg StreamConfig) error {
	sc := cfg.jetstreamConfig()

	stream, err := js.Stream(ctx, cfg.Name)
	if err != nil {
		if _, err = js.CreateStream(ctx, sc); err != nil {
			return fmt.Errorf("create stream: %w", err)
		}
		log.Info().Str("stream", cfg.Name).Msg("created JetStream stream")
		return nil
	}

	info, err := stream.Info(ctx)
	if err != nil {
		return fmt.Errorf("get stream info: %w", err)
	}
	if !isStreamConfigEqual(info.Config, sc) {
		if _, err = js.UpdateStream(ctx, sc); err != nil {
			return fmt.Errorf("update stream: %w", err)
		}
		log.Info().Str("stream", cfg.Name).Msg("updated JetStream stream")
	}
	return nil
}

func isStreamConfigEqual(a, b jetstream.StreamConfig) bool {
	return a.Name == b.Name &&
		a.MaxAge == b.MaxAge &&
		a.MaxMsgsPerSubject == b.MaxMsgsPerSubject &&
		a.Replicas == b.Replicas &&
		a.Duplicates == b.Duplicates
}
