// apps/go-server/internal/daily/daily.go
//
// Word-of-the-day selection.
// Every server sharing DAILY_SALT maps a UTC calendar day to the same list
// position, so the daily word needs no stored state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey formats the UTC calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps the UTC day of day onto [0, words) with HMAC-SHA256 keyed by
// salt. An empty list yields 0.
func WordIndex(day time.Time, salt string, words int) int {
	if words <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(day)))
	digest := binary.BigEndian.Uint64(mac.Sum(nil))
	return int(digest % uint64(words))
}
