// apps/go-server/internal/game/board.go
//
// Board view model.
// Everything the screen shows (chips, tiles, keys, banner, screen-reader text)
// is computed here from a Game and the catalog on each render.

package game

import (
	"fmt"
	"strings"

	"github.com/robalobadob/endgame/apps/go-server/internal/catalog"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Banner selects the status message shown above the chips.
type Banner string

const (
	BannerNone     Banner = ""
	BannerFarewell Banner = "farewell"
	BannerWon      Banner = "won"
	BannerLost     Banner = "lost"
)

// Chip is a catalog entry as drawn on screen.
type Chip struct {
	catalog.Language
	Lost bool `json:"lost"`
}

// Tile is one position of the secret word.
type Tile struct {
	Letter   string `json:"letter,omitempty"` // uppercase, empty while hidden
	Revealed bool   `json:"revealed"`
	Missed   bool   `json:"missed"`
}

// Key is one button of the on-screen keyboard.
type Key struct {
	Letter   string `json:"letter"`
	Correct  bool   `json:"correct"`
	Wrong    bool   `json:"wrong"`
	Disabled bool   `json:"disabled"`
}

// Board is everything a renderer needs for one frame of a game.
type Board struct {
	GameID       string  `json:"gameId"`
	State        State   `json:"state"`
	Outcome      Outcome `json:"outcome"`
	Banner       Banner  `json:"banner,omitempty"`
	Farewell     string  `json:"farewell,omitempty"`
	Chips        []Chip  `json:"chips"`
	Tiles        []Tile  `json:"tiles"`
	Keys         []Key   `json:"keys"`
	Announcement string  `json:"announcement,omitempty"`
	Progress     string  `json:"progress"`
	Word         string  `json:"word,omitempty"` // only once the game is over
}

// NewBoard lays out g against the catalog c.
func NewBoard(g *Game, c catalog.Catalog) Board {
	st := g.State(c.MaxWrongGuesses())
	b := Board{
		GameID:  g.ID,
		State:   st,
		Outcome: st.Outcome(),
	}

	switch {
	case !st.Over && st.LastLetterWrong:
		b.Banner = BannerFarewell
		b.Farewell = FarewellPhrase(c, st.WrongCount)
	case st.Won:
		b.Banner = BannerWon
	case st.Lost:
		b.Banner = BannerLost
	}
	if st.Over {
		b.Word = g.Word
	}

	b.Chips = make([]Chip, len(c))
	for i, l := range c {
		b.Chips[i] = Chip{Language: l, Lost: i < st.WrongCount}
	}

	b.Tiles = make([]Tile, 0, len(g.Word))
	spoken := make([]string, 0, len(g.Word))
	for _, r := range g.Word {
		guessed := strings.ContainsRune(g.Guessed, r)
		t := Tile{Revealed: guessed || st.Lost, Missed: st.Lost && !guessed}
		if t.Revealed {
			t.Letter = strings.ToUpper(string(r))
		}
		b.Tiles = append(b.Tiles, t)
		if guessed {
			spoken = append(spoken, string(r)+".")
		} else {
			spoken = append(spoken, "blank.")
		}
	}
	b.Progress = "Current word: " + strings.Join(spoken, " ")

	b.Keys = make([]Key, 0, len(alphabet))
	for _, r := range alphabet {
		guessed := strings.ContainsRune(g.Guessed, r)
		inWord := strings.ContainsRune(g.Word, r)
		b.Keys = append(b.Keys, Key{
			Letter:   strings.ToUpper(string(r)),
			Correct:  guessed && inWord,
			Wrong:    guessed && !inWord,
			Disabled: guessed || st.Over,
		})
	}

	b.Announcement = announce(st)
	return b
}

// announce is the screen-reader line for the most recent guess.
func announce(st State) string {
	if st.LastLetter == "" {
		return ""
	}
	var msg string
	if st.LastLetterWrong {
		msg = fmt.Sprintf("Sorry, the letter %s is not in the word.", st.LastLetter)
	} else {
		msg = fmt.Sprintf("Correct! The letter %s is in the word.", st.LastLetter)
	}
	return fmt.Sprintf("%s You have %d attempts left.", msg, st.Remaining)
}
