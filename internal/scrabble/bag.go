package scrabble

// Tile counts of one 100-tile English set. '_' is the two blanks.
var distribution = map[rune]int{
	'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12, 'f': 2, 'g': 3, 'h': 2, 'i': 9,
	'j': 1, 'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8, 'p': 2, 'q': 1, 'r': 6,
	's': 4, 't': 6, 'u': 4, 'v': 2, 'w': 2, 'x': 1, 'y': 2, 'z': 1,
	'_': 2,
}

// TileCounts returns a fresh copy of the tile distribution.
func TileCounts() map[rune]int {
	out := make(map[rune]int, len(distribution))
	for r, n := range distribution {
		out[r] = n
	}
	return out
}

// ValidDraw reports whether letters could all be drawn from one full bag.
// Placeholders ('?') are already on the board and are ignored. A letter drawn
// more often than the bag holds uses up a blank instead.
func ValidDraw(letters string) bool {
	bag := TileCounts()
	for _, r := range letters {
		if r == '?' {
			continue
		}
		if _, ok := bag[r]; !ok {
			return false
		}
		bag[r]--
		if bag[r] < 0 {
			bag['_']--
			if bag['_'] < 0 {
				return false
			}
		}
	}
	return true
}
