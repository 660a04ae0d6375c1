package orchestrator

import (
	"github.com/mcdev12/lettersoup/go/internal/models"
	"github.com/mcdev12/lettersoup/go/internal/turnclock"
)

// TriggerState is the turn-advance trigger's position for the current anchor.
type TriggerState int

const (
	TriggerIdle TriggerState = iota
	TriggerArmed
	TriggerFired
	TriggerDisarmed
)

func (s TriggerState) String() string {
	switch s {
	case TriggerArmed:
		return "armed"
	case TriggerFired:
		return "fired"
	case TriggerDisarmed:
		return "disarmed"
	default:
		return "idle"
	}
}

// Trigger emits at most one change-turn per anchor.
// It is not safe for concurrent use; the orchestrator loop owns it.
type Trigger struct {
	state  TriggerState
	anchor models.TurnAnchor
}

// Observe records the anchor carried by a snapshot. A different anchor re-arms the trigger and
// discards any Fired state held for the previous one. It reports whether the anchor changed.
func (t *Trigger) Observe(anchor *models.TurnAnchor) bool {
	if t.state == TriggerDisarmed || anchor == nil {
		return false
	}
	if t.state != TriggerIdle && t.anchor == *anchor {
		return false
	}
	t.anchor = *anchor
	t.state = TriggerArmed
	return true
}

// Evaluate transitions Armed -> Fired when the turn is over and the seat may act.
// A true result means exactly one change-turn request must be sent for the reading's anchor.
func (t *Trigger) Evaluate(reading turnclock.Reading, mayAct bool) bool {
	if t.state != TriggerArmed || !reading.Known || reading.Anchor != t.anchor {
		return false
	}
	if !reading.Expired || !mayAct {
		return false
	}
	t.state = TriggerFired
	return true
}

// Disarm makes the trigger inert for the rest of the session.
func (t *Trigger) Disarm() {
	t.state = TriggerDisarmed
}

func (t *Trigger) State() TriggerState {
	return t.state
}

func (t *Trigger) Anchor() models.TurnAnchor {
	return t.anchor
}
