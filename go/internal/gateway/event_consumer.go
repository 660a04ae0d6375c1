package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/events"
	"github.com/mcdev12/lettersoup/go/internal/models"
)

// SnapshotObserver receives decoded authoritative snapshots.
type SnapshotObserver interface {
	Observe(ctx context.Context, snap models.Snapshot) error
}

var errUnexpectedEvent = errors.New("unexpected event type")

// JetStreamConsumerConfig holds configuration for the state consumer
type JetStreamConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	MatchID       string
	MaxDeliver    int
	AckWait       time.Duration
	MaxAckPending int
}

func DefaultJetStreamConsumerConfig() JetStreamConsumerConfig {
	return JetStreamConsumerConfig{
		StreamName:    "SOUP_STATE",
		MaxDeliver:    5,
		AckWait:       30 * time.Second,
		MaxAckPending: 16,
	}
}

// EventConsumer feeds authoritative state updates for one match into the seat controller
type EventConsumer struct {
	observer SnapshotObserver
	js       jetstream.JetStream
	consumer jetstream.Consumer
	config   JetStreamConsumerConfig
}

// NewEventConsumer creates the consumer, attaching to an existing durable if there is one.
func NewEventConsumer(ctx context.Context, js jetstream.JetStream, observer SnapshotObserver, config JetStreamConsumerConfig) (*EventConsumer, error) {
	if config.MatchID == "" {
		return nil, errors.New("match id is required")
	}
	ec := &EventConsumer{
		observer: observer,
		js:       js,
		config:   config,
	}
	if err := ec.ensureConsumer(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer: %w", err)
	}
	return ec, nil
}

func (ec *EventConsumer) ensureConsumer(ctx context.Context) error {
	stream, err := ec.js.Stream(ctx, ec.config.StreamName)
	if err != nil {
		return fmt.Errorf("get stream: %w", err)
	}

	// Last-per-subject delivery hands a late-joining seat the current snapshot first.
	consumerConfig := jetstream.ConsumerConfig{
		Name:          ec.config.ConsumerName,
		Durable:       ec.config.ConsumerName,
		Description:   "Letter soup seat state consumer",
		FilterSubject: events.StateSubject(ec.config.MatchID),
		DeliverPolicy: jetstream.DeliverLastPerSubjectPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    ec.config.MaxDeliver,
		AckWait:       ec.config.AckWait,
		MaxAckPending: ec.config.MaxAckPending,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	}

	consumer, err := stream.Consumer(ctx, ec.config.ConsumerName)
	if err != nil {
		consumer, err = stream.CreateConsumer(ctx, consumerConfig)
		if err != nil {
			return fmt.Errorf("create consumer: %w", err)
		}
		log.Info().
			Str("consumer", ec.config.ConsumerName).
			Str("stream", ec.config.StreamName).
			Msg("created JetStream consumer")
	} else {
		log.Info().
			Str("consumer", ec.config.ConsumerName).
			Str("stream", ec.config.StreamName).
			Msg("using existing JetStream consumer")
	}

	ec.consumer = consumer
	return nil
}

// Start consumes state updates until ctx is cancelled
func (ec *EventConsumer) Start(ctx context.Context) error {
	log.Info().
		Str("consumer", ec.config.ConsumerName).
		Str("match_id", ec.config.MatchID).
		Msg("starting JetStream state consumer")

	messageCh := make(chan jetstream.Msg, ec.config.MaxAckPending)

	consumeCtx, err := ec.consumer.Consume(func(msg jetstream.Msg) {
		select {
		case messageCh <- msg:
		case <-ctx.Done():
			msg.Nak()
		}
	})
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	defer consumeCtx.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("state consumer shutting down")
			return nil
		case msg := <-messageCh:
			ec.handle(ctx, msg)
		}
	}
}

func (ec *EventConsumer) handle(ctx context.Context, msg jetstream.Msg) {
	snap, err := decodeSnapshot(msg.Data())
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("dropping undecodable state update")
		if termErr := msg.Term(); termErr != nil {
			log.Error().Err(termErr).Msg("failed to TERM message")
		}
		return
	}

	if err := ec.observer.Observe(ctx, snap); err != nil {
		log.Error().
			Err(err).
			Str("subject", msg.Subject()).
			Uint64("version", snap.Version).
			Msg("failed to hand snapshot to orchestrator")
		if nakErr := msg.Nak(); nakErr != nil {
			log.Error().Err(nakErr).Msg("failed to NAK message")
		}
		return
	}

	if ackErr := msg.Ack(); ackErr != nil {
		log.Error().Err(ackErr).Msg("failed to ACK message")
	}
}

func decodeSnapshot(data []byte) (models.Snapshot, error) {
	var envelope events.StateEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return models.Snapshot{}, fmt.Errorf("unmarshal state envelope: %w", err)
	}
	if envelope.EventType != "" && envelope.EventType != events.EventTypeStateSynced {
		return models.Snapshot{}, fmt.Errorf("%w: %s", errUnexpectedEvent, envelope.EventType)
	}

	log.Debug().
		Str("event_id", envelope.EventID).
		Str("match_id", envelope.MatchID).
		Uint64("version", envelope.Version).
		Msg("decoded state update")

	return envelope.Snapshot(), nil
}

// GetConsumerInfo returns information about the consumer
func (ec *EventConsumer) GetConsumerInfo(ctx context.Context) (*jetstream.ConsumerInfo, error) {
	return ec.consumer.Info(ctx)
}
