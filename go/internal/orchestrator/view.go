package orchestrator

import (
	"fmt"
	"time"

	"github.com/mcdev12/lettersoup/go/internal/models"
	"github.com/mcdev12/lettersoup/go/internal/outcome"
	"github.com/mcdev12/lettersoup/go/internal/session"
	"github.com/mcdev12/lettersoup/go/internal/turnclock"
)

const onlineStatus = "Online Game"

type WordView struct {
	Word     string `json:"word"`
	Solved   bool   `json:"solved"`
	SolvedBy string `json:"solved_by,omitempty"`
}

// View is the display state of the seat, rebuilt after every evaluation.
type View struct {
	MatchID       string             `json:"match_id,omitempty"`
	Version       uint64             `json:"version"`
	Mode          models.SessionMode `json:"mode"`
	Status        string             `json:"status,omitempty"`
	Countdown     string             `json:"countdown,omitempty"`
	Clock         turnclock.Reading  `json:"clock"`
	CanAct        bool               `json:"can_act"`
	CurrentPlayer string             `json:"current_player,omitempty"`
	Puzzle        [][]string         `json:"puzzle,omitempty"`
	Words         []WordView         `json:"words"`
	GameOver      bool               `json:"game_over"`
	Message       string             `json:"message,omitempty"`
	Ranking       outcome.Ranking    `json:"ranking,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (o *Orchestrator) buildView(now time.Time) View {
	view := View{Words: []WordView{}, UpdatedAt: now}
	snap := o.snap
	if snap == nil {
		return view
	}

	mode := session.ResolveMode(snap.Session)
	view.MatchID = o.matchID()
	view.Version = snap.Version
	view.Mode = mode
	view.CurrentPlayer = snap.CurrentPlayer
	view.Puzzle = snap.Puzzle
	view.CanAct = !o.finished && o.mayAct()
	for _, s := range snap.Solution {
		view.Words = append(view.Words, WordView{Word: s.Word, Solved: s.IsSolved(), SolvedBy: s.SolvedBy})
	}

	if snap.GameOver != nil {
		view.GameOver = true
		view.Ranking = rankSnapshot(snap)
		if msg, ok := outcome.Message(snap.GameOver, mode, o.cfg.LocalPlayerID, o.cfg.Labels); ok {
			view.Message = msg
		}
		return view
	}

	// Without session context the status and countdown stay empty.
	if snap.Session == nil {
		return view
	}
	view.Status = statusLine(mode, snap.CurrentPlayer)
	view.Clock = o.cfg.Reconciler.Observe(snap.Anchor, now)
	if view.Clock.Known {
		view.Countdown = countdownText(view.Clock.Seconds, view.CanAct, currentPlayerName(snap))
	}
	return view
}

func statusLine(mode models.SessionMode, currentPlayer string) string {
	switch mode {
	case models.SessionModeOnline:
		return onlineStatus
	case models.SessionModeLocal:
		return fmt.Sprintf("Turn Player %s", outcome.PlayerNumber(currentPlayer))
	default:
		return ""
	}
}

func countdownText(seconds int, mayAct bool, ownerName string) string {
	if mayAct {
		return fmt.Sprintf("You have %d seconds.", seconds)
	}
	return fmt.Sprintf("%s has %d seconds.", ownerName, seconds)
}

func currentPlayerName(snap *models.Snapshot) string {
	if p, ok := snap.Session.PlayerByID(snap.CurrentPlayer); ok && p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Player %s", outcome.PlayerNumber(snap.CurrentPlayer))
}

func (o *Orchestrator) publish(view View) {
	o.viewMu.Lock()
	o.view = view
	publishers := o.publishers
	o.viewMu.Unlock()

	for _, p := range publishers {
		p.PublishView(view)
	}
}
