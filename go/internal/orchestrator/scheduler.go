package orchestrator

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/models"
)

// Run owns the controller state until ctx is cancelled. It re-evaluates the turn clock once
// per tick and whenever a snapshot arrives, and releases the ticker as soon as the game is over.
func (o *Orchestrator) Run(ctx context.Context) error {
	log.Info().
		Str("instance", o.instanceID).
		Str("player_id", o.cfg.LocalPlayerID).
		Dur("tick", o.cfg.TickInterval).
		Msg("seat orchestrator started")

	o.startTicker()
	defer func() {
		o.stopTicker()
		o.inFlight.Wait()
		close(o.done)
		log.Info().Str("instance", o.instanceID).Msg("seat orchestrator stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("instance", o.instanceID).Msg("orchestrator shutdown requested")
			return nil
		case <-o.tickChan():
			o.evaluate(ctx)
		case snap := <-o.snapshotCh:
			o.handleSnapshot(ctx, snap)
		case sub := <-o.submitCh:
			sub.reply <- o.decide(sub.word)
		}
	}
}

func (o *Orchestrator) startTicker() {
	o.ticker = o.clock.NewTicker(o.cfg.TickInterval)
	o.ticking.Store(true)
}

// stopTicker is idempotent.
func (o *Orchestrator) stopTicker() {
	if o.ticker == nil {
		return
	}
	o.ticker.Stop()
	o.ticker = nil
	o.ticking.Store(false)
	log.Debug().Str("instance", o.instanceID).Msg("ticker released")
}

// tickChan returns nil once the ticker is released, which blocks that select case forever.
func (o *Orchestrator) tickChan() <-chan time.Time {
	if o.ticker == nil {
		return nil
	}
	return o.ticker.Chan()
}

// evaluate reconciles the clock for the current anchor, fires the trigger if due and
// publishes a fresh view.
func (o *Orchestrator) evaluate(ctx context.Context) {
	now := o.clock.Now()
	if o.snap != nil && !o.finished {
		reading := o.cfg.Reconciler.Observe(o.snap.Anchor, now)
		if o.trigger.Evaluate(reading, o.mayAct()) {
			o.dispatchChangeTurn(ctx, reading.Anchor)
		}
	}
	o.publish(o.buildView(now))
}

// dispatchChangeTurn sends the single change-turn request for anchor. A failed request is
// logged and not retried; the next authoritative anchor re-arms the trigger.
func (o *Orchestrator) dispatchChangeTurn(ctx context.Context, anchor models.TurnAnchor) {
	log.Info().
		Str("instance", o.instanceID).
		Int64("anchor", int64(anchor)).
		Msg("turn expired - requesting change turn")

	o.changeTurnsSent.Add(1)
	o.inFlight.Add(1)
	go func() {
		defer o.inFlight.Done()
		if err := o.mover.ChangeTurn(ctx, anchor); err != nil {
			log.Error().
				Err(err).
				Str("instance", o.instanceID).
				Int64("anchor", int64(anchor)).
				Msg("change turn request failed")
		}
	}()
}
