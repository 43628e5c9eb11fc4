// internal/words/words.go
//
// Dictionary sources for the anagram search.
//
// Responsibilities:
//   - Name the two supported word lists (TWL, SOWPODS) and their file names.
//   - Stream words lazily, one per line, filtered by prefix/suffix.
//   - Provide file system, embedded and in-memory implementations of Source.
//
// Word list files:
//   twl.txt      Tournament Word List (the default)
//   sowpods.txt  SOWPODS
//
// Lines are trimmed and lowercased; blank lines and "#" comments are skipped.
// Every call to Words opens its own file handle, so a Source may be shared by
// concurrent searches.

package words

import (
	"bufio"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/robalobadob/nagaram/assets"
)

// Variant selects a word list.
type Variant int

const (
	TWL Variant = iota
	SOWPODS
)

// ParseVariant maps a name to a Variant. The empty string means TWL.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "twl":
		return TWL, nil
	case "sowpods":
		return SOWPODS, nil
	}
	return TWL, fmt.Errorf("words: unknown dictionary %q", name)
}

func (v Variant) String() string {
	if v == SOWPODS {
		return "sowpods"
	}
	return "twl"
}

// File is the word list file name for v.
func (v Variant) File() string { return v.String() + ".txt" }

// Filter restricts words to those starting with Start and ending with End.
// Empty fields place no constraint. Overlapping Start and End are not
// reconciled: "aba" passes Start "ab", End "ba".
type Filter struct {
	Start string
	End   string
}

// Match reports whether word satisfies f.
func (f Filter) Match(word string) bool {
	return strings.HasPrefix(word, f.Start) && strings.HasSuffix(word, f.End)
}

// Source streams the words of a dictionary that pass a Filter, in list order.
// An I/O failure is yielded once as a non-nil error, ending the sequence.
type Source interface {
	Words(v Variant, f Filter) iter.Seq2[string, error]
}

// FSSource reads word lists named by Variant.File from a file system.
type FSSource struct {
	FS fs.FS
}

// Dir returns a Source reading word lists from the directory path.
func Dir(path string) FSSource { return FSSource{FS: os.DirFS(path)} }

// Embedded returns a Source over the word lists compiled into the binary.
func Embedded() FSSource { return FSSource{FS: assets.FS} }

// Words implements Source.
func (s FSSource) Words(v Variant, f Filter) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		file, err := s.FS.Open(v.File())
		if err != nil {
			yield("", fmt.Errorf("words: open %s: %w", v.File(), err))
			return
		}
		defer file.Close()

		sc := bufio.NewScanner(file)
		for sc.Scan() {
			w, ok := normalizeLine(sc.Text())
			if !ok || !f.Match(w) {
				continue
			}
			if !yield(w, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", fmt.Errorf("words: read %s: %w", v.File(), err))
		}
	}
}

// normalizeLine trims and lowercases a line, rejecting blanks and comments.
func normalizeLine(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	return w, true
}

// List is an in-memory Source. Words are yielded as stored, whatever the
// variant.
type List []string

// Words implements Source.
func (l List) Words(_ Variant, f Filter) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, w := range l {
			if f.Match(w) && !yield(w, nil) {
				return
			}
		}
	}
}

// Count returns the number of words in the v list of src.
func Count(src Source, v Variant) (int, error) {
	n := 0
	for _, err := range src.Words(v, Filter{}) {
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
