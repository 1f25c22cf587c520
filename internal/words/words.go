// apps/go-server/internal/words/words.go
//
// Secret word source for the game engine.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to the embedded default.
//   - Keep a set for quick membership checks.
//   - Supply PickRandom / Random (uniform, repeats allowed), Contains and Stats.
//
// Initialization behavior (Init):
//   1. If a path is given (WORDS_FILE), load one word per line from it.
//   2. Otherwise use the embedded assets/words.txt.
//
// Constraints:
//   • Words must be non-empty and alphabetic (a–z); anything else is dropped.
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/endgame/apps/go-server/assets"
)

// ErrEmptyList is returned when no usable word survives normalization.
var ErrEmptyList = errors.New("words: list is empty")

var (
	initOnce   sync.Once
	list       []string
	set        map[string]struct{}
	initialErr error
)

// Init loads the word list exactly once.
// Returns an error if the list ends up empty.
func Init(path string) error {
	initOnce.Do(func() {
		var raw []string
		var err error
		if path != "" {
			raw, err = readWordFile(path)
		} else {
			raw, err = assets.WordList()
		}
		if err != nil {
			initialErr = fmt.Errorf("words: load: %w", err)
			return
		}
		list = Normalize(raw)
		set = toSet(list)
		if len(list) == 0 {
			initialErr = ErrEmptyList
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Normalize lowercases and trims every entry, dropping comments, blanks,
// non-alphabetic words and duplicates. Order is preserved.
func Normalize(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") || !IsAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsAlpha reports whether s is all lowercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// PickRandom returns a uniformly chosen entry of ws using crypto/rand.
// It returns "" for an empty list.
func PickRandom(ws []string) string {
	if len(ws) == 0 {
		return ""
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(ws))))
	if err != nil {
		return ws[0]
	}
	return ws[nBig.Int64()]
}

// Random picks a word from the loaded list.
// Falls back to "assembly" if Init was never called successfully.
func Random() string {
	if len(list) == 0 {
		return "assembly"
	}
	return PickRandom(list)
}

// All returns the loaded list. Callers must not modify it.
func All() []string {
	return list
}

// Contains reports whether w is in the loaded list.
func Contains(w string) bool {
	_, ok := set[strings.ToLower(w)]
	return ok
}

// Stats returns the number of loaded words.
func Stats() int {
	return len(list)
}
