// apps/go-server/internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mode: how the secret word was chosen.
//   - Outcome: coarse result of a game (playing/won/lost).
//   - Game: the only stored state, a secret word plus the guessed letters.
//   - State: facts derived from a Game, recomputed on every read.

package game

import (
	"errors"
	"time"
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrInvalidLetter = errors.New("guess must be a single letter a-z")
)

// Mode records how the secret word was chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// ParseMode maps free-form input to a Mode, defaulting to ModeRandom.
func ParseMode(s string) Mode {
	if Mode(s) == ModeDaily {
		return ModeDaily
	}
	return ModeRandom
}

// Outcome is the coarse result of a game.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// Game is one (secret word, guessed letters) pair. A new game replaces the
// previous one wholesale; the word never changes mid-game.
type Game struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	Word      string    `json:"word"`    // lowercase a-z
	Guessed   string    `json:"guessed"` // distinct letters in guess order
	StartedAt time.Time `json:"startedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// State holds everything the view needs about a game. It is never stored.
type State struct {
	WrongCount      int    `json:"wrongCount"`
	MaxWrong        int    `json:"maxWrong"`
	Remaining       int    `json:"remaining"`
	Won             bool   `json:"won"`
	Lost            bool   `json:"lost"`
	Over            bool   `json:"over"`
	LastLetter      string `json:"lastLetter,omitempty"`
	LastLetterWrong bool   `json:"lastLetterWrong"`
}

// Outcome reports the result. A win takes precedence if both thresholds hold.
func (s State) Outcome() Outcome {
	switch {
	case s.Won:
		return OutcomeWon
	case s.Lost:
		return OutcomeLost
	default:
		return OutcomePlaying
	}
}
