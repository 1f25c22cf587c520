// apps/go-server/internal/game/farewell.go
//
// Farewell banner text.
// A wrong guess eliminates the next language chip; the banner names it with
// one of a fixed set of templates chosen at random per render.

package game

import (
	"fmt"
	"math/rand"

	"github.com/robalobadob/endgame/apps/go-server/internal/catalog"
)

var farewellTemplates = []string{
	"Farewell, %s",
	"Adios, %s",
	"R.I.P., %s",
	"We'll miss you, %s",
	"Oh no, not %s!",
	"%s bites the dust",
	"Gone but not forgotten, %s",
	"The end of %s as we know it",
	"Off into the sunset, %s",
	"%s, it's been real",
	"%s, your watch has ended",
	"%s has left the building",
}

// pickTemplate is swapped in tests.
var pickTemplate = func(n int) int { return rand.Intn(n) }

// FarewellPhrase taunts the language eliminated by the wrongCount-th wrong
// guess. wrongCount must be in [1, len(c)-1]; anything else panics, since the
// last language is never eliminated.
func FarewellPhrase(c catalog.Catalog, wrongCount int) string {
	if wrongCount < 1 || wrongCount > c.MaxWrongGuesses() {
		panic(fmt.Sprintf("game: farewell for wrong guess %d outside [1, %d]", wrongCount, c.MaxWrongGuesses()))
	}
	lang := c[wrongCount-1]
	return fmt.Sprintf(farewellTemplates[pickTemplate(len(farewellTemplates))], lang.Name)
}
