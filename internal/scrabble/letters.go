// internal/scrabble/letters.go
//
// Letter values for the standard English Scrabble set.
// Lookup is case-insensitive; anything outside a–z is an InvalidLetterError.

package scrabble

import (
	"errors"
	"fmt"
)

// ErrInvalidLetter matches any InvalidLetterError via errors.Is.
var ErrInvalidLetter = errors.New("scrabble: invalid letter")

// InvalidLetterError reports a rune with no Scrabble value.
type InvalidLetterError struct {
	Letter rune
}

func (e *InvalidLetterError) Error() string {
	return fmt.Sprintf("scrabble: invalid letter %q", e.Letter)
}

// Is lets errors.Is(err, ErrInvalidLetter) succeed.
func (e *InvalidLetterError) Is(target error) bool { return target == ErrInvalidLetter }

// points is indexed by lowercase ASCII letter.
var points = [26]int{
	'a' - 'a': 1, 'e' - 'a': 1, 'i' - 'a': 1, 'o' - 'a': 1, 'u' - 'a': 1,
	'l' - 'a': 1, 'n' - 'a': 1, 'r' - 'a': 1, 's' - 'a': 1, 't' - 'a': 1,
	'd' - 'a': 2, 'g' - 'a': 2,
	'b' - 'a': 3, 'c' - 'a': 3, 'm' - 'a': 3, 'p' - 'a': 3,
	'f' - 'a': 4, 'h' - 'a': 4, 'v' - 'a': 4, 'w' - 'a': 4, 'y' - 'a': 4,
	'k' - 'a': 5,
	'j' - 'a': 8, 'x' - 'a': 8,
	'q' - 'a': 10, 'z' - 'a': 10,
}

// LetterScore returns the face value of r.
func LetterScore(r rune) (int, error) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0, &InvalidLetterError{Letter: r}
	}
	return points[r-'a'], nil
}
