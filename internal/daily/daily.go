// Package daily picks a deterministic "rack of the day".
//
// The rack is seven tiles drawn without replacement from a full bag, shuffled
// by a PCG generator seeded from HMAC-SHA256(salt, YYYY-MM-DD). The same date
// and salt always give the same rack.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/robalobadob/nagaram/internal/scrabble"
)

// RackSize is the number of tiles in a rack.
const RackSize = 7

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Rack returns the rack for t's UTC date. Blanks are rendered as '_'.
func Rack(t time.Time, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	rng := rand.New(rand.NewPCG(binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])))

	bag := bagTiles()
	for i := 0; i < RackSize; i++ {
		j := i + rng.IntN(len(bag)-i)
		bag[i], bag[j] = bag[j], bag[i]
	}
	return string(bag[:RackSize])
}

// bagTiles lists every tile of a full bag in a fixed order.
func bagTiles() []rune {
	counts := scrabble.TileCounts()
	letters := make([]rune, 0, len(counts))
	for r := range counts {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	var out []rune
	for _, r := range letters {
		for n := 0; n < counts[r]; n++ {
			out = append(out, r)
		}
	}
	return out
}
