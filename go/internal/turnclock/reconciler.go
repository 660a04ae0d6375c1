package turnclock

import (
	"time"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

const (
	DefaultTurnDuration = 60 * time.Second
	DefaultGraceBuffer  = 5 * time.Second
)

// Reconciler derives the remaining turn time from the authoritative anchor.
//
// Nothing is counted down locally: every read recomputes from the anchor, so a seat that
// reconnects, resumes from background or has a skewed start converges on the same value.
type Reconciler struct {
	TurnDuration time.Duration
	GraceBuffer  time.Duration
}

// Reading is the result of reconciling an anchor against the current time.
type Reading struct {
	Known     bool              `json:"known"`
	Anchor    models.TurnAnchor `json:"anchor,omitempty"`
	Remaining time.Duration     `json:"remaining"`
	Expired   bool              `json:"expired"`
	Seconds   int               `json:"seconds"`
}

// NewReconciler creates a reconciler, falling back to defaults for non-positive values.
func NewReconciler(turnDuration, graceBuffer time.Duration) Reconciler {
	if turnDuration <= 0 {
		turnDuration = DefaultTurnDuration
	}
	if graceBuffer < 0 {
		graceBuffer = DefaultGraceBuffer
	}
	return Reconciler{TurnDuration: turnDuration, GraceBuffer: graceBuffer}
}

// Budget is the total time a turn may run before a seat must treat it as expired.
func (r Reconciler) Budget() time.Duration {
	return r.TurnDuration + r.GraceBuffer
}

// Remaining returns (TurnDuration+GraceBuffer) - (now-anchor) in millisecond resolution.
// Expired turns report 0, never a negative value.
func (r Reconciler) Remaining(anchor models.TurnAnchor, now time.Time) time.Duration {
	elapsed := now.UnixMilli() - int64(anchor)
	remaining := r.Budget().Milliseconds() - elapsed
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining) * time.Millisecond
}

// Expired reports whether the turn anchored at anchor is over.
func (r Reconciler) Expired(anchor models.TurnAnchor, now time.Time) bool {
	return r.Remaining(anchor, now) <= 0
}

// DisplaySeconds clamps a remaining duration to whole seconds in [0, TurnDuration].
// The grace buffer is never shown.
func (r Reconciler) DisplaySeconds(remaining time.Duration) int {
	secs := int(remaining / time.Second)
	limit := int(r.TurnDuration / time.Second)
	if secs > limit {
		return limit
	}
	if secs < 0 {
		return 0
	}
	return secs
}

// Observe reconciles an anchor that may not have been published yet.
// A nil anchor yields an unknown reading instead of an error.
func (r Reconciler) Observe(anchor *models.TurnAnchor, now time.Time) Reading {
	if anchor == nil {
		return Reading{}
	}
	remaining := r.Remaining(*anchor, now)
	return Reading{
		Known:     true,
		Anchor:    *anchor,
		Remaining: remaining,
		Expired:   remaining <= 0,
		Seconds:   r.DisplaySeconds(remaining),
	}
}
