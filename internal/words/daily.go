// apps/go-server/internal/words/daily.go
//
// Word of the day: the same secret word for everyone on a given UTC date.
// The index comes from daily.WordIndex (HMAC of the date with a salt), so the
// sequence cannot be guessed from the list order alone.

package words

import (
	"time"

	"github.com/robalobadob/endgame/apps/go-server/internal/daily"
)

// Daily returns the word of the day for t using salt.
// Falls back to Random if no list is loaded.
func Daily(t time.Time, salt string) string {
	if len(list) == 0 {
		return Random()
	}
	return list[daily.WordIndex(t, salt, len(list))]
}
