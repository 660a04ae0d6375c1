package gateway

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Service wires the display hub, the HTTP handlers and the state consumer for one seat
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	stateHandler      *StateHandler
	eventConsumer     *EventConsumer
}

// Config holds configuration for the seat gateway
type Config struct {
	ConnectionConfig ConnectionConfig
	JetStreamConfig  JetStreamConsumerConfig
	NATSConfig       NATSConfig
}

func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
		NATSConfig:       DefaultNATSConfig(),
	}
}

// NewService creates the gateway. consumer may be nil when snapshots arrive another way, and
// results may be nil when results are not stored.
func NewService(config Config, controller SeatController, consumer *EventConsumer, results ResultStore) *Service {
	connectionManager := NewConnectionManager(config.ConnectionConfig, controller)
	return &Service{
		connectionManager: connectionManager,
		wsHandler:         NewWebSocketHandler(connectionManager),
		stateHandler:      NewStateHandler(controller, results),
		eventConsumer:     consumer,
	}
}

// Publisher returns the hub so the orchestrator can push views to display clients.
func (s *Service) Publisher() *ConnectionManager {
	return s.connectionManager
}

// Start runs the hub and the consumer until ctx is cancelled
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting seat gateway service")

	go s.connectionManager.Start(ctx)

	if s.eventConsumer != nil {
		go func() {
			if err := s.eventConsumer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("state consumer failed")
			}
		}()
	}

	<-ctx.Done()
	log.Info().Msg("seat gateway service stopped")
	return nil
}

// RegisterRoutes registers the WebSocket and REST routes
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	s.stateHandler.RegisterStateRoutes(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
	log.Info().Msg("seat gateway routes registered")
}
