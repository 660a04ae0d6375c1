package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/models"
	"github.com/mcdev12/lettersoup/go/internal/session"
)

var (
	errNotYourTurn   = errors.New("seat does not own the turn")
	errGameOver      = errors.New("game is over")
	errUnknownWord   = errors.New("word is not part of the solution")
	errAlreadySolved = errors.New("word already solved")
)

// SubmitWord claims a word for the seat. Submissions the seat is not entitled to make are
// suppressed and report false with a nil error; only transport failures are returned.
func (o *Orchestrator) SubmitWord(ctx context.Context, word string) (bool, error) {
	reply := make(chan submissionDecision, 1)
	select {
	case o.submitCh <- submission{word: word, reply: reply}:
	case <-o.done:
		return false, ErrStopped
	case <-ctx.Done():
		return false, ctx.Err()
	}

	var decision submissionDecision
	select {
	case decision = <-reply:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	if decision.reason != nil {
		log.Debug().
			Err(decision.reason).
			Str("word", word).
			Str("player_id", o.cfg.LocalPlayerID).
			Msg("word submission suppressed")
		return false, nil
	}

	if err := o.mover.WordFound(ctx, decision.word); err != nil {
		return false, fmt.Errorf("failed to submit word %q: %w", decision.word.Word, err)
	}
	return true, nil
}

// decide runs on the loop goroutine.
func (o *Orchestrator) decide(word string) submissionDecision {
	if o.finished {
		return submissionDecision{reason: errGameOver}
	}
	solved, err := checkWord(o.snap, o.cfg.LocalPlayerID, word)
	return submissionDecision{word: solved, reason: err}
}

// checkWord applies the gate and the solution checks to a word claim.
func checkWord(snap *models.Snapshot, localPlayerID, word string) (models.SolvedWord, error) {
	if snap == nil || snap.Session == nil {
		return models.SolvedWord{}, ErrNoSession
	}
	if !session.MayActOn(snap, localPlayerID) {
		return models.SolvedWord{}, errNotYourTurn
	}
	if snap.GameOver != nil {
		return models.SolvedWord{}, errGameOver
	}

	word = strings.TrimSpace(word)
	for _, s := range snap.Solution {
		if !strings.EqualFold(s.Word, word) {
			continue
		}
		if s.IsSolved() {
			return models.SolvedWord{}, errAlreadySolved
		}
		return models.SolvedWord{Word: s.Word, SolvedBy: snap.CurrentPlayer}, nil
	}
	return models.SolvedWord{}, errUnknownWord
}
