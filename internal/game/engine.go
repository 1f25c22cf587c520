// apps/go-server/internal/game/engine.go
//
// Game state engine.
// Responsibilities:
//   - Derive win/loss/wrong-count facts from (word, guessed letters).
//   - Append guesses without duplicates.
//   - Apply a player's guess to a Game, refusing new letters once it is over.
//
// Derive and AddGuess are pure; only (*Game).Guess mutates.
package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// New constructs a game for word. The word is lowercased; choosing it is the
// caller's job (see the words package).
func New(word string, mode Mode) *Game {
	now := time.Now().UTC()
	return &Game{
		ID:        uuid.NewString(),
		Mode:      mode,
		Word:      strings.ToLower(word),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Derive computes the state of a game from its secret word and guessed
// letters. maxWrong is the number of wrong guesses that loses the game.
func Derive(word, guessed string, maxWrong int) State {
	s := State{MaxWrong: maxWrong}
	for _, r := range guessed {
		if !strings.ContainsRune(word, r) {
			s.WrongCount++
		}
	}

	s.Won = true
	for _, r := range word {
		if !strings.ContainsRune(guessed, r) {
			s.Won = false
			break
		}
	}
	s.Lost = s.WrongCount >= maxWrong
	s.Over = s.Won || s.Lost

	if s.Remaining = maxWrong - s.WrongCount; s.Remaining < 0 {
		s.Remaining = 0
	}
	if guessed != "" {
		last := []rune(guessed)
		r := last[len(last)-1]
		s.LastLetter = string(r)
		s.LastLetterWrong = !strings.ContainsRune(word, r)
	}
	return s
}

// AddGuess returns guessed with letter appended, or guessed unchanged if the
// letter is already present.
func AddGuess(guessed string, letter rune) string {
	if strings.ContainsRune(guessed, letter) {
		return guessed
	}
	return guessed + string(letter)
}

// ParseLetter normalizes player input to a single lowercase a-z rune.
func ParseLetter(s string) (rune, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0, ErrInvalidLetter
	}
	return rune(s[0]), nil
}

// State derives the current state of g.
func (g *Game) State(maxWrong int) State {
	return Derive(g.Word, g.Guessed, maxWrong)
}

// Guess records letter and returns the new state.
//
// Rules:
//   - Invalid input → ErrInvalidLetter.
//   - A letter already guessed is a no-op, whatever the game state.
//   - Any new letter once the game is over → ErrGameOver.
func (g *Game) Guess(letter string, maxWrong int) (State, error) {
	r, err := ParseLetter(letter)
	if err != nil {
		return g.State(maxWrong), err
	}
	if strings.ContainsRune(g.Guessed, r) {
		return g.State(maxWrong), nil
	}
	if st := g.State(maxWrong); st.Over {
		return st, ErrGameOver
	}
	g.Guessed = AddGuess(g.Guessed, r)
	g.UpdatedAt = time.Now().UTC()
	return g.State(maxWrong), nil
}
