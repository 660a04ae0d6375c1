package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/lettersoup/go/internal/orchestrator"
)

type fakeNATS bool

func (f fakeNATS) IsConnected() bool { return bool(f) }

type fakeDB struct{ err error }

func (f fakeDB) PingContext(context.Context) error { return f.err }

type fakeStats orchestrator.Stats

func (f fakeStats) Stats() orchestrator.Stats { return orchestrator.Stats(f) }

type fakeConsumer struct {
	info *jetstream.ConsumerInfo
	err  error
}

func (f fakeConsumer) GetConsumerInfo(context.Context) (*jetstream.ConsumerInfo, error) {
	return f.info, f.err
}

func TestHealthCheckerHealthy(t *testing.T) {
	now := time.Now()
	h := NewHealthChecker(fakeNATS(true), fakeDB{}, fakeStats{Running: true, Ticking: true, LastSnapshotAt: now.Add(-time.Second)}, fakeConsumer{info: &jetstream.ConsumerInfo{NumPending: 3, NumAckPending: 1}}, nil, time.Minute)
	h.clock = func() time.Time { return now }

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.True(t, status.Healthy)
	assert.True(t, status.NATSConnected)
	require.NotNil(t, status.DatabaseConnected)
	assert.True(t, *status.DatabaseConnected)
	require.NotNil(t, status.ConsumerPending)
	assert.Equal(t, uint64(3), *status.ConsumerPending)
	assert.Equal(t, 1, status.ConsumerAckPending)
	assert.Empty(t, status.Errors)
}

func TestHealthCheckerReportsFailures(t *testing.T) {
	now := time.Now()
	h := NewHealthChecker(fakeNATS(false), fakeDB{err: errors.New("refused")}, fakeStats{Running: false, Ticking: true, LastSnapshotAt: now.Add(-10 * time.Minute)}, fakeConsumer{err: errors.New("consumer not found")}, nil, time.Minute)
	h.clock = func() time.Time { return now }

	status := h.Check(context.Background())
	assert.False(t, status.Healthy)
	assert.Len(t, status.Errors, 5)
	assert.Contains(t, status.Errors, "consumer info failed: consumer not found")
	assert.Nil(t, status.ConsumerPending)
	assert.False(t, *status.DatabaseConnected)
}

func TestHealthCheckerIgnoresStalenessAfterGameOver(t *testing.T) {
	h := NewHealthChecker(fakeNATS(true), nil, fakeStats{Running: true, Ticking: false, LastSnapshotAt: time.Now().Add(-time.Hour)}, nil, nil, time.Minute)

	status := h.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Nil(t, status.DatabaseConnected)
}
