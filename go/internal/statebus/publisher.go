package statebus

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/events"
)

// Publisher writes state envelopes to the state stream. The seat agent never publishes
// authoritative state itself; this serves the replay tool and local development.
type Publisher struct {
	js     jetstream.JetStream
	stream string
}

func NewPublisher(js jetstream.JetStream, stream string) *Publisher {
	return &Publisher{js: js, stream: stream}
}

func (p *Publisher) Publish(ctx context.Context, env events.StateEnvelope) error {
	msg, err := buildMsg(env)
	if err != nil {
		return err
	}

	ack, err := p.js.PublishMsg(ctx, msg,
		jetstream.WithMsgID(msg.Header.Get(nats.MsgIdHdr)),
		jetstream.WithExpectStream(p.stream),
	)
	if err != nil {
		return fmt.Errorf("publish to JetStream: %w", err)
	}

	log.Info().
		Str("subject", msg.Subject).
		Str("event_id", env.EventID).
		Uint64("version", env.Version).
		Uint64("sequence", ack.Sequence).
		Msg("published state snapshot")
	return nil
}

// buildMsg fills in envelope defaults and sets the de-duplication headers.
func buildMsg(env events.StateEnvelope) (*nats.Msg, error) {
	if env.MatchID == "" {
		return nil, fmt.Errorf("state envelope has no match id")
	}
	if env.EventID == "" {
		env.EventID = uuid.New().String()
	}
	if env.EventType == "" {
		env.EventType = events.EventTypeStateSynced
	}
	if env.Timestamp.IsZero() {
		env.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal state envelope: %w", err)
	}

	msg := nats.NewMsg(events.StateSubject(env.MatchID))
	msg.Data = data
	msg.Header.Set("Event-Type", env.EventType)
	msg.Header.Set("Match-ID", env.MatchID)
	msg.Header.Set("State-Version", strconv.FormatUint(env.Version, 10))
	msg.Header.Set(nats.MsgIdHdr, fmt.Sprintf("%s:%d", env.MatchID, env.Version))
	return msg, nil
}
