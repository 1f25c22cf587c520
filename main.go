// apps/go-server/main.go
//
// Entry point: loads .env and config, sets up zerolog, loads the word list and
// language catalog, opens the configured game store, runs the idle-game janitor
// and serves HTTP until SIGINT/SIGTERM.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/endgame/apps/go-server/internal/catalog"
	"github.com/robalobadob/endgame/apps/go-server/internal/config"
	"github.com/robalobadob/endgame/apps/go-server/internal/httpserver"
	"github.com/robalobadob/endgame/apps/go-server/internal/store"
	"github.com/robalobadob/endgame/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	setupLogging(cfg.Logging)

	if err := words.Init(cfg.Game.WordsFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	cat, err := catalog.Load(cfg.Game.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load language catalog")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closer, err := openStore(ctx, cfg.Store, cfg.Session.TTL)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer closer.Close()

	go store.Janitor(ctx, st, cfg.Store.SweepInterval, cfg.Session.TTL, func(n int, err error) {
		if err != nil {
			log.Warn().Err(err).Msg("sweep idle games")
			return
		}
		if n > 0 {
			log.Info().Int("removed", n).Msg("swept idle games")
		}
	})

	srv, err := httpserver.New(cfg, st, cat)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Str("store", cfg.Store.Driver).
			Int("words", words.Stats()).
			Int("languages", len(cat)).
			Msg("starting go-server")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// setupLogging configures the global zerolog logger.
func setupLogging(c config.LoggingConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	if c.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore builds the configured game store.
func openStore(ctx context.Context, c config.StoreConfig, ttl time.Duration) (store.Store, io.Closer, error) {
	switch c.Driver {
	case "", "memory":
		return store.NewMemoryStore(), nopCloser{}, nil
	case "sqlite":
		s, err := store.OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "redis":
		s, err := store.DialRedis(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB, ttl)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", c.Driver)
	}
}
