package scrabble

import "sort"

const (
	// BingoBonus is awarded for playing every tile of a full rack.
	BingoBonus = 50
	// bingoTiles is the number of rack tiles a bingo must exceed.
	bingoTiles = 6
)

// WordScore returns the Scrabble value of word played from rack.
//
// Letters found in rack score their face value and count as tiles used.
// The rest must come from wildcards: the highest valued of them are given to
// the placeholders (board tiles, full value) and the remainder to blanks,
// which score nothing. A letter no wildcard can cover also scores nothing.
// Using more than six rack tiles earns BingoBonus.
//
// rack is not modified.
func WordScore(word string, rack []rune, placeholders int) (int, error) {
	working := make([]rune, len(rack))
	copy(working, rack)

	var score, tilesUsed int
	var pending []int
	for _, r := range word {
		value, err := LetterScore(r)
		if err != nil {
			return 0, err
		}
		if i := indexRune(working, r); i >= 0 {
			working = append(working[:i], working[i+1:]...)
			score += value
			tilesUsed++
			continue
		}
		pending = append(pending, value)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(pending)))
	for _, value := range pending {
		if placeholders <= 0 {
			break
		}
		score += value
		placeholders--
	}

	if tilesUsed > bingoTiles {
		score += BingoBonus
	}
	return score, nil
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
