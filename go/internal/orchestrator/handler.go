package orchestrator

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/models"
	"github.com/mcdev12/lettersoup/go/internal/outcome"
	"github.com/mcdev12/lettersoup/go/internal/session"
)

// handleSnapshot applies an authoritative snapshot. Snapshots older than the one held are
// dropped so anchors are observed in version order.
func (o *Orchestrator) handleSnapshot(ctx context.Context, snap models.Snapshot) {
	if o.snap != nil && snap.Version < o.snap.Version {
		log.Debug().
			Uint64("version", snap.Version).
			Uint64("held_version", o.snap.Version).
			Msg("dropping stale snapshot")
		return
	}
	o.snap = &snap
	o.snapshotsApplied.Add(1)
	o.lastSnapshotAt.Store(o.clock.Now().UnixMilli())

	if o.trigger.Observe(snap.Anchor) {
		log.Debug().
			Int64("anchor", int64(*snap.Anchor)).
			Str("current_player", snap.CurrentPlayer).
			Msg("turn anchor changed - trigger re-armed")
	}

	if snap.GameOver != nil && !o.finished {
		o.finish(ctx)
	}

	// A seat joining after the deadline fires here instead of waiting a tick.
	o.evaluate(ctx)
}

// finish runs once on the absent -> present game-over transition.
func (o *Orchestrator) finish(ctx context.Context) {
	o.finished = true
	o.trigger.Disarm()
	o.stopTicker()

	ranking := rankSnapshot(o.snap)

	over := o.snap.GameOver
	log.Info().
		Str("instance", o.instanceID).
		Bool("draw", over.Draw).
		Str("winner", over.Winner).
		Int("players", len(ranking)).
		Msg("game over observed")

	if o.recorder == nil {
		return
	}
	matchID := o.matchID()
	if matchID == "" {
		log.Debug().Msg("no match id - skipping result recording")
		return
	}

	res := outcome.Result{
		MatchID:    matchID,
		Draw:       over.Draw,
		Winner:     over.Winner,
		Ranking:    ranking,
		RecordedAt: o.clock.Now(),
	}
	o.inFlight.Add(1)
	go func() {
		defer o.inFlight.Done()
		if err := o.recorder.RecordResult(ctx, res); err != nil {
			log.Error().Err(err).Str("match_id", res.MatchID).Msg("failed to record match result")
		}
	}()
}

// rankSnapshot ranks the solved words held by snap.
func rankSnapshot(snap *models.Snapshot) outcome.Ranking {
	var players []models.PlayerInRoom
	if snap.Session != nil {
		players = snap.Session.Players
	}
	return outcome.Rank(players, snap.Solution)
}

func (o *Orchestrator) mayAct() bool {
	return session.MayActOn(o.snap, o.cfg.LocalPlayerID)
}

func (o *Orchestrator) matchID() string {
	if o.snap != nil && o.snap.Session != nil && o.snap.Session.Room != nil && o.snap.Session.Room.MatchID != "" {
		return o.snap.Session.Room.MatchID
	}
	return o.cfg.MatchID
}
