// Package present groups anagram results and renders them as text.
//
// Output format:
//
//	Anagrams for word:
//	8 points: word
//	5 points: ow, wo
//
// or, grouped by length:
//
//	Anagrams for word (score):
//	4 tiles: word (8)
//	2 tiles: ow (5), wo (5)
//
// Groups are sorted by key, highest first; entries keep arrival order.
package present

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/nagaram/internal/anagram"
	"github.com/robalobadob/nagaram/internal/scrabble"
)

// Group is one output line: a score or length and the words that share it.
type Group struct {
	Key     int      `json:"key"`
	Entries []string `json:"entries"`
}

// ByScore groups words by score.
func ByScore(results []anagram.Anagram) []Group {
	return group(results, func(a anagram.Anagram) (int, string) {
		return a.Score, a.Word
	})
}

// ByLength groups "word (score)" entries by word length.
func ByLength(results []anagram.Anagram) []Group {
	return group(results, func(a anagram.Anagram) (int, string) {
		return utf8.RuneCountInString(a.Word), fmt.Sprintf("%s (%d)", a.Word, a.Score)
	})
}

func group(results []anagram.Anagram, keyOf func(anagram.Anagram) (int, string)) []Group {
	index := make(map[int]int)
	var out []Group
	for _, a := range results {
		key, entry := keyOf(a)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Group{Key: key})
		}
		out[i].Entries = append(out[i].Entries, entry)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	return out
}

// Render drains seq and writes the report for input to w. A search error is
// returned before anything is written.
func Render(w io.Writer, input string, seq iter.Seq2[anagram.Anagram, error], byLength bool) error {
	results, err := anagram.Collect(seq)
	if err != nil {
		return err
	}

	noun, suffix, groups := "points", "", ByScore(results)
	if byLength {
		noun, suffix, groups = "tiles", " (score)", ByLength(results)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Anagrams for %s%s:\n", input, suffix)
	if !scrabble.ValidDraw(input) {
		fmt.Fprintf(bw, "%s is not possible in Scrabble.\n", input)
	}
	for _, g := range groups {
		fmt.Fprintf(bw, "%d %s: %s\n", g.Key, noun, strings.Join(g.Entries, ", "))
	}
	return bw.Flush()
}
