// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the Assembly: Endgame game.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts, request logs).
//   - Game screen: GET "/", POST "/guess", POST "/new" (server-rendered, post/redirect/get).
//   - JSON API under /api: new game, guess, read game, catalog.
//   - Diagnostics: "/health", "/metrics".
//
// Notes:
//   - The browser's current game is found through a signed session cookie (see session.go).
//   - Every response is rendered from game.NewBoard; nothing derived is stored.

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/endgame/apps/go-server/assets"
	"github.com/robalobadob/endgame/apps/go-server/internal/catalog"
	"github.com/robalobadob/endgame/apps/go-server/internal/config"
	"github.com/robalobadob/endgame/apps/go-server/internal/game"
	"github.com/robalobadob/endgame/apps/go-server/internal/store"
	"github.com/robalobadob/endgame/apps/go-server/internal/words"
)

// Server bundles router, game store, catalog and templates.
type Server struct {
	r       *chi.Mux
	http    *http.Server
	cfg     *config.Config
	store   store.Store
	catalog catalog.Catalog
	tmpl    *template.Template
	metrics *metrics

	// locks serialize load-guess-save per game, striped by ID hash.
	locks [64]sync.Mutex

	// pickWord chooses the secret word for a new game.
	pickWord func(mode game.Mode) string
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, st store.Store, cat catalog.Catalog) (*Server, error) {
	tmpl, err := template.ParseFS(assets.FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		store:   st,
		catalog: cat,
		tmpl:    tmpl,
		metrics: newMetrics(),
	}
	s.pickWord = func(mode game.Mode) string {
		if mode == game.ModeDaily {
			return words.Daily(time.Now(), cfg.Game.DailySalt)
		}
		return words.Random()
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                          // add X-Request-ID
	s.r.Use(chimw.RealIP)                             // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                            // one log line per request
	s.r.Use(chimw.Recoverer)                          // recover from panics
	s.r.Use(chimw.Timeout(cfg.Server.RequestTimeout)) // bound handler time

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Handle("/metrics", s.metrics.handler())

	// --- game screen ---
	s.r.Get("/", s.handleIndex)
	s.r.Post("/guess", s.handleGuessForm)
	s.r.Post("/new", s.handleNewGameForm)
	s.r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.Static()))))

	// --- JSON API ---
	s.r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Get("/catalog", s.handleCatalog)
		r.Post("/game/new", s.handleNewGame)
		r.Get("/game/{id}", s.handleGetGame)
		r.Post("/game/{id}/guess", s.handleGuess)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not_found")
		})
	})

	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Start serves HTTP on the configured address until Shutdown.
func (s *Server) Start() error { return s.http.ListenAndServe() }

// Shutdown stops accepting connections and waits for active requests.
func (s *Server) Shutdown(ctx context.Context) error { return s.http.Shutdown(ctx) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// maxWrong is the number of wrong guesses that loses a game.
func (s *Server) maxWrong() int { return s.catalog.MaxWrongGuesses() }

// lockGame locks the stripe owning id and returns its unlock func.
func (s *Server) lockGame(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.locks[h.Sum32()%uint32(len(s.locks))]
	mu.Lock()
	return mu.Unlock
}

// startGame creates and stores a new game. A non-empty word overrides the
// word source and must be plain a-z.
func (s *Server) startGame(ctx context.Context, mode game.Mode, word string) (*game.Game, error) {
	if word == "" {
		word = s.pickWord(mode)
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || !words.IsAlpha(word) {
		return nil, errInvalidWord
	}
	g := game.New(word, mode)
	if err := s.store.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("save new game: %w", err)
	}
	s.metrics.gamesStarted.WithLabelValues(string(mode)).Inc()
	log.Debug().Str("gameId", g.ID).Str("mode", string(mode)).Msg("game started")
	return g, nil
}

// applyGuess records a guess on g, persists it, and updates counters.
// Callers hold lockGame(g.ID) from the load of g until this returns.
func (s *Server) applyGuess(ctx context.Context, g *game.Game, letter string) (game.State, error) {
	before := len(g.Guessed)
	st, err := g.Guess(letter, s.maxWrong())
	if err != nil {
		s.metrics.guesses.WithLabelValues("rejected").Inc()
		return st, err
	}
	if len(g.Guessed) == before {
		s.metrics.guesses.WithLabelValues("repeat").Inc()
		return st, nil
	}
	if st.LastLetterWrong {
		s.metrics.guesses.WithLabelValues("wrong").Inc()
	} else {
		s.metrics.guesses.WithLabelValues("correct").Inc()
	}
	if err := s.store.Save(ctx, g); err != nil {
		return st, fmt.Errorf("save game: %w", err)
	}
	if st.Over {
		s.metrics.gamesFinished.WithLabelValues(string(st.Outcome())).Inc()
		log.Info().Str("gameId", g.ID).Str("outcome", string(st.Outcome())).
			Int("wrong", st.WrongCount).Msg("game finished")
	}
	return st, nil
}

var errInvalidWord = errors.New("word must be non-empty a-z")
