package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/mcdev12/lettersoup/go/internal/config"
	"github.com/mcdev12/lettersoup/go/internal/gateway"
	"github.com/mcdev12/lettersoup/go/internal/mover"
	"github.com/mcdev12/lettersoup/go/internal/orchestrator"
	"github.com/mcdev12/lettersoup/go/internal/outcome"
	"github.com/mcdev12/lettersoup/go/internal/statebus"
)

const snapshotStaleAfter = 5 * time.Minute

type Services struct {
	Orchestrator *orchestrator.Orchestrator
	Gateway      *gateway.Service
	Health       *gateway.HealthChecker
}

// setupServices wires transport -> mover -> orchestrator -> gateway. database may be nil.
func setupServices(ctx context.Context, cfg config.Config, nc *nats.Conn, database *sql.DB) (*Services, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	streamCfg := statebus.DefaultStreamConfig()
	streamCfg.Name = cfg.StreamName
	if err := statebus.EnsureStream(ctx, js, streamCfg); err != nil {
		return nil, fmt.Errorf("ensure state stream: %w", err)
	}

	identity := mover.Identity{MatchID: cfg.MatchID, PlayerID: cfg.PlayerID}
	var moves orchestrator.Mover
	switch cfg.Transport {
	case config.TransportConnect:
		moves = mover.NewConnect(http.DefaultClient, cfg.MoveServiceURL, identity)
	default:
		moves = mover.NewNATS(nc, identity, cfg.RequestTimeout)
	}

	var (
		recorder orchestrator.ResultRecorder
		results  gateway.ResultStore
	)
	if database != nil {
		repo := outcome.NewRepository(database)
		recorder, results = repo, repo
	}

	orch := orchestrator.NewOrchestrator(orchestrator.Config{
		MatchID:       cfg.MatchID,
		LocalPlayerID: cfg.PlayerID,
		Reconciler:    cfg.Reconciler(),
		Labels:        outcome.Labels(cfg.PlayerLabels),
		TickInterval:  cfg.TickInterval,
	}, clockwork.NewRealClock(), moves, recorder)

	consumerCfg := gateway.DefaultJetStreamConsumerConfig()
	consumerCfg.StreamName = cfg.StreamName
	consumerCfg.MatchID = cfg.MatchID
	consumerCfg.ConsumerName = consumerName(cfg.MatchID, cfg.PlayerID)
	consumer, err := gateway.NewEventConsumer(ctx, js, orch, consumerCfg)
	if err != nil {
		return nil, fmt.Errorf("create state consumer: %w", err)
	}

	gw := gateway.NewService(gateway.DefaultConfig(), orch, consumer, results)
	orch.AddPublisher(gw.Publisher())

	var dbPinger interface {
		PingContext(ctx context.Context) error
	}
	if database != nil {
		dbPinger = database
	}
	health := gateway.NewHealthChecker(nc, dbPinger, orch, consumer, gw.Publisher(), snapshotStaleAfter)

	return &Services{
		Orchestrator: orch,
		Gateway:      gw,
		Health:       health,
	}, nil
}

// consumerName gives every seat its own durable so each one sees every snapshot.
func consumerName(matchID, playerID string) string {
	if playerID == "" {
		playerID = "local"
	}
	return fmt.Sprintf("seat-%s-%s", matchID, playerID)
}
