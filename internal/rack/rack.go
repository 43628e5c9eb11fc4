// internal/rack/rack.go
//
// Rack parsing for anagram searches.
// A raw input token such as "so_me?h?ng" is split into:
//   - Letters:      concrete tiles, in input order ("somehng").
//   - Blanks:       rack blanks ("_"), which score nothing when used.
//   - Placeholders: tiles already on the board ("?"), which score full value.
//
// Notes:
//   • No validation happens here; digits or punctuation pass through and
//     surface later as scoring errors.
//   • A Rack is a value type. Methods never mutate the receiver.

package rack

import "strings"

const (
	Blank       = '_' // rack blank, worth 0 points
	Placeholder = '?' // board tile played through, worth full points
)

// Rack holds the tiles available to form a word.
type Rack struct {
	Letters      []rune // concrete letters, case preserved
	Blanks       int    // count of Blank markers
	Placeholders int    // count of Placeholder markers
}

// Parse splits raw into concrete letters and wildcard counts.
func Parse(raw string) Rack {
	var r Rack
	for _, c := range raw {
		switch c {
		case Blank:
			r.Blanks++
		case Placeholder:
			r.Placeholders++
		default:
			r.Letters = append(r.Letters, c)
		}
	}
	return r
}

// WithBoardTiles returns a copy of r with the runes of start and end appended
// to Letters. Board tiles are concrete letters, so wildcard counts are kept.
func (r Rack) WithBoardTiles(start, end string) Rack {
	letters := make([]rune, 0, len(r.Letters)+len(start)+len(end))
	letters = append(letters, r.Letters...)
	letters = append(letters, []rune(start)...)
	letters = append(letters, []rune(end)...)
	return Rack{Letters: letters, Blanks: r.Blanks, Placeholders: r.Placeholders}
}

// Wildcards is the number of letters the rack can supply without a matching tile.
func (r Rack) Wildcards() int { return r.Blanks + r.Placeholders }

// String renders the rack back into token form, letters first.
func (r Rack) String() string {
	var b strings.Builder
	b.WriteString(string(r.Letters))
	b.WriteString(strings.Repeat(string(Blank), r.Blanks))
	b.WriteString(strings.Repeat(string(Placeholder), r.Placeholders))
	return b.String()
}
