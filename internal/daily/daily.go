// Package daily derives a date-keyed secret picker so everyone playing on the
// same day, with the same salt and word list, gets the same secrets.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordall/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns HMAC(salt, YYYY-MM-DD) folded to 64 bits.
func Seed(date time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for a PRNG seed
	return binary.BigEndian.Uint64(sum[:8])
}

// Picker returns a picker seeded for the given day.
func Picker(date time.Time, salt string) game.Picker {
	return game.NewRandPicker(Seed(date, salt))
}
