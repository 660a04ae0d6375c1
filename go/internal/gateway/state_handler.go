package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/orchestrator"
	"github.com/mcdev12/lettersoup/go/internal/outcome"
)

// SeatController is what the HTTP and WebSocket surfaces need from the orchestrator.
type SeatController interface {
	View() orchestrator.View
	SubmitWord(ctx context.Context, word string) (bool, error)
}

// ResultStore loads recorded match results.
type ResultStore interface {
	GetResult(ctx context.Context, matchID string) (*outcome.Result, error)
}

// SubmitWordRequest is the body of POST /api/session/words
type SubmitWordRequest struct {
	Word string `json:"word"`
}

// SubmitWordResponse reports whether a wordFound request was sent.
type SubmitWordResponse struct {
	Word      string `json:"word"`
	Submitted bool   `json:"submitted"`
}

// StateHandler handles HTTP requests for the seat's display state
type StateHandler struct {
	controller SeatController
	results    ResultStore
}

// NewStateHandler creates the handler. results may be nil when results are not stored.
func NewStateHandler(controller SeatController, results ResultStore) *StateHandler {
	return &StateHandler{
		controller: controller,
		results:    results,
	}
}

// HandleGetState handles GET /api/session/state
func (h *StateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.controller.View())
}

// HandleSubmitWord handles POST /api/session/words
func (h *StateHandler) HandleSubmitWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Word = strings.TrimSpace(req.Word)
	if req.Word == "" {
		http.Error(w, "word is required", http.StatusBadRequest)
		return
	}

	submitted, err := h.controller.SubmitWord(r.Context(), req.Word)
	switch {
	case errors.Is(err, orchestrator.ErrStopped):
		http.Error(w, "Session has ended", http.StatusServiceUnavailable)
		return
	case err != nil:
		log.Error().Err(err).Str("word", req.Word).Msg("failed to submit word")
		http.Error(w, "Failed to submit word", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, SubmitWordResponse{Word: req.Word, Submitted: submitted})
}

// HandleGetResult handles GET /api/session/result?match_id=<id>. The match id defaults to the
// one in the current view.
func (h *StateHandler) HandleGetResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.results == nil {
		http.Error(w, "Result storage is disabled", http.StatusNotImplemented)
		return
	}

	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		matchID = h.controller.View().MatchID
	}
	if matchID == "" {
		http.Error(w, "match_id is required", http.StatusBadRequest)
		return
	}

	res, err := h.results.GetResult(r.Context(), matchID)
	switch {
	case errors.Is(err, outcome.ErrResultNotFound):
		http.Error(w, "Result not found", http.StatusNotFound)
		return
	case err != nil:
		log.Error().Err(err).Str("match_id", matchID).Msg("failed to load match result")
		http.Error(w, "Failed to load result", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// RegisterStateRoutes registers state-related HTTP routes
func (h *StateHandler) RegisterStateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/session/state", h.HandleGetState)
	mux.HandleFunc("/api/session/words", h.HandleSubmitWord)
	mux.HandleFunc("/api/session/result", h.HandleGetResult)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
