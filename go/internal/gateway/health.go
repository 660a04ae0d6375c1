package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/orchestrator"
)

type HealthStatus struct {
	Healthy            bool               `json:"healthy"`
	NATSConnected      bool               `json:"nats_connected"`
	DatabaseConnected  *bool              `json:"database_connected,omitempty"`
	Orchestrator       orchestrator.Stats `json:"orchestrator"`
	ConsumerPending    *uint64            `json:"consumer_pending,omitempty"`
	ConsumerAckPending int                `json:"consumer_ack_pending"`
	Connections        int                `json:"connections"`
	Errors             []string           `json:"errors"`
}

type natsStatus interface {
	IsConnected() bool
}

type pinger interface {
	PingContext(ctx context.Context) error
}

type statsSource interface {
	Stats() orchestrator.Stats
}

type consumerInfoSource interface {
	GetConsumerInfo(ctx context.Context) (*jetstream.ConsumerInfo, error)
}

// HealthChecker reports whether the seat can currently follow and act on the match.
type HealthChecker struct {
	nats     natsStatus
	db       pinger
	orch     statsSource
	consumer consumerInfoSource
	hub      *ConnectionManager
	clock    func() time.Time
	stale    time.Duration
}

// NewHealthChecker creates a checker. db may be nil when results are not stored and consumer
// may be nil when snapshots arrive another way; stale is how long a running game may go
// without a snapshot before the seat reports unhealthy.
func NewHealthChecker(nc natsStatus, db pinger, orch statsSource, consumer consumerInfoSource, hub *ConnectionManager, stale time.Duration) *HealthChecker {
	return &HealthChecker{
		nats:     nc,
		db:       db,
		orch:     orch,
		consumer: consumer,
		hub:      hub,
		clock:    time.Now,
		stale:    stale,
	}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Healthy: true,
		Errors:  []string{},
	}

	if h.nats != nil {
		status.NATSConnected = h.nats.IsConnected()
		if !status.NATSConnected {
			status.Healthy = false
			status.Errors = append(status.Errors, "NATS disconnected")
		}
	}

	if h.db != nil {
		connected := true
		if err := h.db.PingContext(ctx); err != nil {
			connected = false
			status.Healthy = false
			status.Errors = append(status.Errors, fmt.Sprintf("database ping failed: %v", err))
		}
		status.DatabaseConnected = &connected
	}

	status.Orchestrator = h.orch.Stats()
	if !status.Orchestrator.Running {
		status.Healthy = false
		status.Errors = append(status.Errors, "orchestrator not running")
	}

	// Only a live game is expected to keep producing snapshots.
	last := status.Orchestrator.LastSnapshotAt
	if h.stale > 0 && status.Orchestrator.Ticking && !last.IsZero() {
		if since := h.clock().Sub(last); since > h.stale {
			status.Healthy = false
			status.Errors = append(status.Errors, fmt.Sprintf("no snapshot for %s", since.Truncate(time.Second)))
		}
	}

	if h.consumer != nil {
		info, err := h.consumer.GetConsumerInfo(ctx)
		if err != nil {
			status.Healthy = false
			status.Errors = append(status.Errors, fmt.Sprintf("consumer info failed: %v", err))
		} else {
			pending := info.NumPending
			status.ConsumerPending = &pending
			status.ConsumerAckPending = info.NumAckPending
		}
	}

	if h.hub != nil {
		status.Connections = h.hub.ConnectionCount()
	}
	return status
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := h.Check(ctx)
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Error().Err(err).Msg("failed to encode health status")
	}
}
