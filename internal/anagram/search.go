// internal/anagram/search.go
//
// Anagram search: streams a dictionary, keeps the words a rack can form and
// scores them.
//
// Flow per query:
//   1. Parse the letters into a rack.
//   2. Fold the Start/End board tiles into the rack's concrete letters.
//   3. Stream the dictionary filtered by Start/End.
//   4. Match each candidate against the rack (budget = blanks + placeholders).
//   5. Score matches with the folded letters and the placeholder count.
//
// Results arrive lazily in dictionary order. Breaking out of the loop stops
// the dictionary read.

package anagram

import (
	"iter"

	"github.com/robalobadob/nagaram/internal/rack"
	"github.com/robalobadob/nagaram/internal/scrabble"
	"github.com/robalobadob/nagaram/internal/words"
)

// Anagram is a formable word and its score.
type Anagram struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Query describes one search.
type Query struct {
	Letters string        // rack token, "_" for blanks and "?" for placeholders
	Variant words.Variant // word list to search
	Start   string        // tiles the word must start with, already on the board
	End     string        // tiles the word must end with, already on the board
}

// Searcher finds anagrams in a dictionary Source.
// It holds no mutable state; any number of searches may run at once.
type Searcher struct {
	src words.Source
}

// New returns a Searcher reading from src.
func New(src words.Source) *Searcher {
	return &Searcher{src: src}
}

// Search yields every word of the dictionary the query's rack can form.
// A dictionary or scoring error is yielded once as (Anagram{}, err) and ends
// the sequence.
func (s *Searcher) Search(q Query) iter.Seq2[Anagram, error] {
	return func(yield func(Anagram, error) bool) {
		r := rack.Parse(q.Letters).WithBoardTiles(q.Start, q.End)
		letters := NewMultiset(r.Letters)
		budget := r.Wildcards()

		for word, err := range s.src.Words(q.Variant, words.Filter{Start: q.Start, End: q.End}) {
			if err != nil {
				yield(Anagram{}, err)
				return
			}
			if !Formable(word, letters, budget) {
				continue
			}
			score, err := scrabble.WordScore(word, r.Letters, r.Placeholders)
			if err != nil {
				yield(Anagram{}, err)
				return
			}
			if !yield(Anagram{Word: word, Score: score}, nil) {
				return
			}
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Anagram, error]) ([]Anagram, error) {
	var out []Anagram
	for a, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, nil
}
