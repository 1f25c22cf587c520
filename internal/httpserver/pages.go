// apps/go-server/internal/httpserver/pages.go
//
// Server-rendered game screen.
// GET "/" renders the board; POST "/guess" and POST "/new" change the game and
// redirect back (post/redirect/get). The game is found via the session cookie.

package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/endgame/apps/go-server/internal/game"
	"github.com/robalobadob/endgame/apps/go-server/internal/store"
)

// confettiPieces is the particle count handed to the browser confetti burst on a win.
const confettiPieces = 1000

// pageData feeds templates/index.html.
type pageData struct {
	Board          game.Board
	Attempts       int
	ConfettiPieces int
}

// currentGame returns the browser's game, starting a new one (and setting the
// session cookie) when the cookie is missing, invalid or points nowhere.
func (s *Server) currentGame(ctx context.Context, w http.ResponseWriter, r *http.Request) (*game.Game, error) {
	if id, err := s.sessionGameID(r); err == nil {
		g, err := s.store.Get(ctx, id)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	g, err := s.startGame(ctx, game.ModeRandom, "")
	if err != nil {
		return nil, err
	}
	if err := s.setSessionCookie(w, g.ID); err != nil {
		return nil, err
	}
	return g, nil
}

// handleIndex renders the game screen.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	g, err := s.currentGame(r.Context(), w, r)
	if err != nil {
		log.Error().Err(err).Msg("load game")
		http.Error(w, "could not load game", http.StatusInternalServerError)
		return
	}
	data := pageData{
		Board:          game.NewBoard(g, s.catalog),
		Attempts:       s.maxWrong(),
		ConfettiPieces: confettiPieces,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Error().Err(err).Msg("render index")
	}
}

// handleGuessForm applies the letter from a keyboard button and redirects home.
// Rejected guesses (bad letter, game over) leave the game untouched.
func (s *Server) handleGuessForm(w http.ResponseWriter, r *http.Request) {
	if id, err := s.sessionGameID(r); err == nil {
		defer s.lockGame(id)()
	}
	g, err := s.currentGame(r.Context(), w, r)
	if err != nil {
		log.Error().Err(err).Msg("load game")
		http.Error(w, "could not load game", http.StatusInternalServerError)
		return
	}
	if _, err := s.applyGuess(r.Context(), g, r.FormValue("letter")); err != nil {
		if !errors.Is(err, game.ErrInvalidLetter) && !errors.Is(err, game.ErrGameOver) {
			log.Error().Err(err).Str("gameId", g.ID).Msg("apply guess")
			http.Error(w, "could not save guess", http.StatusInternalServerError)
			return
		}
		log.Debug().Err(err).Str("gameId", g.ID).Msg("guess ignored")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleNewGameForm replaces a finished game with a fresh one. While the
// current game is still being played the request is ignored.
func (s *Server) handleNewGameForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if id, err := s.sessionGameID(r); err == nil {
		defer s.lockGame(id)()
	}
	g, err := s.currentGame(ctx, w, r)
	if err != nil {
		log.Error().Err(err).Msg("load game")
		http.Error(w, "could not load game", http.StatusInternalServerError)
		return
	}
	if !g.State(s.maxWrong()).Over {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	next, err := s.startGame(ctx, game.ParseMode(r.FormValue("mode")), "")
	if err != nil {
		log.Error().Err(err).Msg("start game")
		http.Error(w, "could not start game", http.StatusInternalServerError)
		return
	}
	if err := s.setSessionCookie(w, next.ID); err != nil {
		log.Error().Err(err).Msg("sign session")
		http.Error(w, "could not start game", http.StatusInternalServerError)
		return
	}
	if err := s.store.Delete(ctx, g.ID); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("delete finished game")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
