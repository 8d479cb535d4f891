package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"shogi/communication"
	"shogi/game"
	"shogi/gamemaster"
	"shogi/meta"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Handler serves the /api/* routes on top of a match manager.
type Handler struct {
	manager *gamemaster.Manager
	mux     *http.ServeMux
}

func NewHandler(manager *gamemaster.Manager) *Handler {
	h := &Handler{manager: manager, mux: http.NewServeMux()}
	h.mux.HandleFunc("POST /api/new_match", h.handleNewMatch)
	h.mux.HandleFunc("GET /api/state", h.handleState)
	h.mux.HandleFunc("POST /api/select", h.handleSelect)
	h.mux.HandleFunc("POST /api/play", h.handlePlay)
	h.mux.HandleFunc("POST /api/ai_move", h.handleAIMove)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Start listens on addr until the server fails.
func Start(addr string, manager *gamemaster.Manager) error {
	log.Info().Msgf("listening on %s", addr)
	return http.ListenAndServe(addr, NewHandler(manager))
}

func (h *Handler) handleNewMatch(w http.ResponseWriter, r *http.Request) {
	var req communication.NewMatchRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if req.Depth < 0 || req.Depth > meta.MAX_DEPTH {
		writeError(w, http.StatusBadRequest, fmt.Errorf("depth %d out of range [0, %d]", req.Depth, meta.MAX_DEPTH))
		return
	}
	match := h.manager.NewMatch(gamemaster.WithDepth(req.Depth))
	log.Info().Str("match", match.ID()).Int("depth", req.Depth).Msg("match created")
	writeJSON(w, stateOf(match))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	match, err := h.manager.Get(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, stateOf(match))
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req communication.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	match, err := h.manager.Get(req.ID)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	square, err := game.ParseCoord(req.Square)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	targets, err := match.Select(square)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	resp := communication.SelectResponse{Targets: make([]string, len(targets))}
	for i, c := range targets {
		resp.Targets[i] = c.String()
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req communication.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	match, err := h.manager.Get(req.ID)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	move, err := game.ParseMove(req.Move)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := match.Play(move); err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, stateOf(match))
}

func (h *Handler) handleAIMove(w http.ResponseWriter, r *http.Request) {
	var req communication.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	match, err := h.manager.Get(req.ID)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	res, err := match.AITurn()
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	resp := communication.AIMove{
		Found:      res.Found,
		Score:      strconv.FormatFloat(res.Score, 'f', -1, 64),
		Nodes:      res.Metric.Nodes,
		MatchState: stateOf(match),
	}
	if res.Found {
		resp.Move = res.Move.String()
	}
	writeJSON(w, resp)
}

func stateOf(match *gamemaster.Match) communication.MatchState {
	history := match.History()
	state := communication.MatchState{
		ID:      match.ID(),
		Turn:    match.Turn().String(),
		Board:   match.Board().String(),
		History: make([]string, len(history)),
	}
	for i, u := range history {
		state.History[i] = u.Move.String()
	}
	return state
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, gamemaster.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, gamemaster.ErrNotYourTurn):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(communication.ErrorResponse{Error: err.Error()}); encErr != nil {
		log.Error().Err(encErr).Msg("failed to encode error response")
	}
}
