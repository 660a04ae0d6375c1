package orchestrator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/lettersoup/go/internal/models"
	"github.com/mcdev12/lettersoup/go/internal/outcome"
	"github.com/mcdev12/lettersoup/go/internal/turnclock"
)

const (
	defaultTickInterval   = time.Second
	snapshotChannelBuffer = 16
)

var (
	ErrStopped   = errors.New("orchestrator stopped")
	ErrNoSession = errors.New("no session context")
)

// Mover sends state-changing requests to the authoritative game service.
type Mover interface {
	WordFound(ctx context.Context, word models.SolvedWord) error
	ChangeTurn(ctx context.Context, anchor models.TurnAnchor) error
}

// ResultRecorder persists the terminal result of a session.
type ResultRecorder interface {
	RecordResult(ctx context.Context, res outcome.Result) error
}

// ViewPublisher receives a fresh view after every evaluation.
type ViewPublisher interface {
	PublishView(view View)
}

// Config holds the per-seat settings of an orchestrator.
type Config struct {
	MatchID       string
	LocalPlayerID string
	Reconciler    turnclock.Reconciler
	Labels        outcome.Labels
	TickInterval  time.Duration
}

type submission struct {
	word  string
	reply chan submissionDecision
}

type submissionDecision struct {
	word   models.SolvedWord
	reason error
}

// Orchestrator is the seat agent's controller loop. A single goroutine (Run) owns the
// snapshot, the trigger and the ticker; everything else talks to it through channels.
type Orchestrator struct {
	cfg        Config
	clock      clockwork.Clock
	mover      Mover
	recorder   ResultRecorder
	publishers []ViewPublisher
	instanceID string

	snapshotCh chan models.Snapshot
	submitCh   chan submission
	done       chan struct{}
	inFlight   sync.WaitGroup

	// owned by Run
	snap     *models.Snapshot
	trigger  Trigger
	ticker   clockwork.Ticker
	ticking  atomic.Bool
	finished bool

	viewMu sync.RWMutex
	view   View

	snapshotsApplied atomic.Uint64
	changeTurnsSent  atomic.Uint64
	lastSnapshotAt   atomic.Int64
}

// Stats is a point-in-time summary for health reporting.
type Stats struct {
	Running          bool      `json:"running"`
	Ticking          bool      `json:"ticking"`
	SnapshotsApplied uint64    `json:"snapshots_applied"`
	ChangeTurnsSent  uint64    `json:"change_turns_sent"`
	LastSnapshotAt   time.Time `json:"last_snapshot_at,omitempty"`
}

// NewOrchestrator creates an orchestrator. recorder may be nil when results are not stored.
func NewOrchestrator(cfg Config, clock clockwork.Clock, mover Mover, recorder ResultRecorder, publishers ...ViewPublisher) *Orchestrator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	if cfg.Reconciler.TurnDuration <= 0 {
		cfg.Reconciler = turnclock.NewReconciler(cfg.Reconciler.TurnDuration, cfg.Reconciler.GraceBuffer)
	}
	if cfg.Labels == nil {
		cfg.Labels = outcome.DefaultLabels()
	}
	return &Orchestrator{
		cfg:        cfg,
		clock:      clock,
		mover:      mover,
		recorder:   recorder,
		publishers: publishers,
		instanceID: uuid.New().String()[:8],
		snapshotCh: make(chan models.Snapshot, snapshotChannelBuffer),
		submitCh:   make(chan submission),
		done:       make(chan struct{}),
		view:       View{Words: []WordView{}},
	}
}

// Observe hands an authoritative snapshot to the loop.
func (o *Orchestrator) Observe(ctx context.Context, snap models.Snapshot) error {
	select {
	case <-o.done:
		return ErrStopped
	default:
	}
	select {
	case o.snapshotCh <- snap:
		return nil
	case <-o.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// View returns the most recently published display state.
func (o *Orchestrator) View() View {
	o.viewMu.RLock()
	defer o.viewMu.RUnlock()
	return o.view
}

// AddPublisher registers a publisher for subsequent views.
func (o *Orchestrator) AddPublisher(p ViewPublisher) {
	o.viewMu.Lock()
	defer o.viewMu.Unlock()
	o.publishers = append(o.publishers, p)
}

func (o *Orchestrator) Stats() Stats {
	stats := Stats{
		Ticking:          o.ticking.Load(),
		SnapshotsApplied: o.snapshotsApplied.Load(),
		ChangeTurnsSent:  o.changeTurnsSent.Load(),
	}
	select {
	case <-o.done:
	default:
		stats.Running = true
	}
	if ms := o.lastSnapshotAt.Load(); ms != 0 {
		stats.LastSnapshotAt = time.UnixMilli(ms)
	}
	return stats
}

// Done is closed once Run has returned and in-flight requests have completed.
func (o *Orchestrator) Done() <-chan struct{} {
	return o.done
}
