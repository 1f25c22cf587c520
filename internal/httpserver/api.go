// apps/go-server/internal/httpserver/api.go
//
// JSON API under /api.
// Errors are {"error": code}: 400 bad_json/invalid_word/invalid_letter,
// 403 fixed_word_disabled, 404 not_found, 409 game_over.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/endgame/apps/go-server/internal/game"
	"github.com/robalobadob/endgame/apps/go-server/internal/store"
)

// newGameReq is the payload for POST /api/game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "random" | "daily"
	Word string `json:"word"` // fixed secret word; only honored with ALLOW_FIXED_WORD
}

// guessReq is the payload for POST /api/game/{id}/guess.
type guessReq struct {
	Letter string `json:"letter"`
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

func (s *Server) writeBoard(w http.ResponseWriter, status int, g *game.Game) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(game.NewBoard(g, s.catalog))
}

// handleCatalog returns the language list and the wrong-guess limit.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"languages":       s.catalog,
		"maxWrongGuesses": s.maxWrong(),
	})
}

// handleNewGame creates a game and returns its first board.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Word != "" && !s.cfg.Game.AllowFixedWord {
		writeError(w, http.StatusForbidden, "fixed_word_disabled")
		return
	}
	g, err := s.startGame(r.Context(), game.ParseMode(req.Mode), req.Word)
	if errors.Is(err, errInvalidWord) {
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("start game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.writeBoard(w, http.StatusCreated, g)
}

// handleGetGame returns the current board of a game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	s.writeBoard(w, http.StatusOK, g)
}

// handleGuess applies one letter and returns the new board.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	id := chi.URLParam(r, "id")
	defer s.lockGame(id)()
	g, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	_, err = s.applyGuess(r.Context(), g, req.Letter)
	switch {
	case errors.Is(err, game.ErrInvalidLetter):
		writeError(w, http.StatusBadRequest, "invalid_letter")
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
	case err != nil:
		log.Error().Err(err).Str("gameId", g.ID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "save_failed")
	default:
		s.writeBoard(w, http.StatusOK, g)
	}
}
