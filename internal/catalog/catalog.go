// apps/go-server/internal/catalog/catalog.go
//
// Language catalog: the ordered list of programming languages shown as
// chips on the game screen. The catalog doubles as the life counter: a game
// allows len(catalog)-1 wrong guesses before the last language is left alone.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/endgame/apps/go-server/assets"
)

// ErrInvalid is returned when a catalog cannot back a game.
var ErrInvalid = errors.New("catalog: invalid")

// Language is one chip: a display name plus its two colors.
type Language struct {
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
	Color           string `json:"color"`
}

// Catalog is the static, ordered language list.
type Catalog []Language

// MaxWrongGuesses is the number of wrong guesses that ends a game.
func (c Catalog) MaxWrongGuesses() int {
	return len(c) - 1
}

// Validate checks that every entry is complete and there are at least two
// entries, so at least one wrong guess is allowed.
func (c Catalog) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("%w: need at least 2 languages, got %d", ErrInvalid, len(c))
	}
	for i, l := range c {
		if l.Name == "" || l.BackgroundColor == "" || l.Color == "" {
			return fmt.Errorf("%w: entry %d is incomplete", ErrInvalid, i)
		}
	}
	return nil
}

// Parse decodes and validates a JSON catalog.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (Catalog, error) {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = assets.Languages()
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}
