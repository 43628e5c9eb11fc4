package scrabble

import (
	"errors"
	"testing"
)

func TestWordScore(t *testing.T) {
	tests := []struct {
		name         string
		word         string
		rack         string
		placeholders int
		want         int
	}{
		{"adam", "adam", "adam", 0, 7},
		{"python", "python", "python", 0, 14},
		{"qwerty", "qwerty", "qwerty", 0, 21},
		{"tornado bingo", "tornado", "tornado", 0, 58},
		{"watches bingo", "watches", "watches", 0, 65},
		{"built on points counted", "yesterday", "yesterd", 2, 66},
		{"blank scores nothing", "elephant", "e_ephant", 0, 62},
		{"placeholder preferred over blank", "short", "sh_rt", 1, 8},
		{"impossible word", "madhacker", "qpiixny", 0, 0},
		{"uppercase letters", "ADAM", "ADAM", 0, 7},
		{"empty word", "", "abc", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WordScore(tt.word, []rune(tt.rack), tt.placeholders)
			if err != nil {
				t.Fatalf("WordScore(%q): %v", tt.word, err)
			}
			if got != tt.want {
				t.Fatalf("WordScore(%q, %q, %d) = %d, want %d", tt.word, tt.rack, tt.placeholders, got, tt.want)
			}
		})
	}
}

func TestWordScoreDoesNotModifyRack(t *testing.T) {
	rack := []rune("adam")
	if _, err := WordScore("adam", rack, 0); err != nil {
		t.Fatal(err)
	}
	if string(rack) != "adam" {
		t.Fatalf("rack modified: %q", string(rack))
	}
}

func TestBingoBoundary(t *testing.T) {
	// Six rack tiles plus one placeholder: no bonus.
	six, err := WordScore("tornado", []rune("tornad"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if six != 8 {
		t.Fatalf("six tiles = %d, want 8", six)
	}
	seven, err := WordScore("tornado", []rune("tornado"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if seven != 8+BingoBonus {
		t.Fatalf("seven tiles = %d, want %d", seven, 8+BingoBonus)
	}
	// Board letters folded into the rack can push the count past seven.
	eight, err := WordScore("tornados", []rune("tornados"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if eight != 9+BingoBonus {
		t.Fatalf("eight tiles = %d, want %d", eight, 9+BingoBonus)
	}
}

func TestPlaceholderTakesHighestLetter(t *testing.T) {
	// "quip" from "ui" needs q (10) and p (3) from wildcards.
	got, err := WordScore("quip", []rune("ui"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := 1 + 1 + 10; got != want {
		t.Fatalf("quip = %d, want %d (q on the placeholder)", got, want)
	}

	withBlank, err := WordScore("quip", []rune("ui"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if withBlank > got {
		t.Fatalf("placeholder score %d lower than blank score %d", got, withBlank)
	}
}

func TestWordScoreInvalidLetter(t *testing.T) {
	for _, word := range []string{"yumm🍔", "c3po", "it's"} {
		_, err := WordScore(word, []rune(word), 0)
		if !errors.Is(err, ErrInvalidLetter) {
			t.Errorf("WordScore(%q) err = %v, want ErrInvalidLetter", word, err)
		}
	}
}

func TestLetterScore(t *testing.T) {
	want := map[int]string{
		1:  "aeioulnrst",
		2:  "dg",
		3:  "bcmp",
		4:  "fhvwy",
		5:  "k",
		8:  "jx",
		10: "qz",
	}
	for value, letters := range want {
		for _, r := range letters {
			for _, c := range []rune{r, r - 'a' + 'A'} {
				got, err := LetterScore(c)
				if err != nil {
					t.Fatalf("LetterScore(%q): %v", c, err)
				}
				if got != value {
					t.Errorf("LetterScore(%q) = %d, want %d", c, got, value)
				}
			}
		}
	}
}

func TestLetterScoreInvalid(t *testing.T) {
	for _, r := range []rune{'🍔', '.', '4', ')', 'é', '_', '?'} {
		_, err := LetterScore(r)
		var ile *InvalidLetterError
		if !errors.As(err, &ile) {
			t.Fatalf("LetterScore(%q) err = %v, want *InvalidLetterError", r, err)
		}
		if ile.Letter != r {
			t.Errorf("InvalidLetterError.Letter = %q, want %q", ile.Letter, r)
		}
		if !errors.Is(err, ErrInvalidLetter) {
			t.Errorf("errors.Is(%v, ErrInvalidLetter) = false", err)
		}
	}
}

func TestValidDraw(t *testing.T) {
	tests := []struct {
		word  string
		valid bool
	}{
		{"aabbccdd", true},
		{"????????????zyx__", true},
		{"????????????zyx___", false},
		{"zzabcdef", true},
		{"zzzabcdef", true},
		{"zzzzabcdef", false},
		{"xuyxj_ics_", false},
		{"ifoxfxajxk_cw", false},
		{"abcdefghijklmnopqrstuvwxyz_?", true},
		{"yummy_🍔", false},
		{"vin_diesel_in_xxx", false},
		{"WORD", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := ValidDraw(tt.word); got != tt.valid {
			t.Errorf("ValidDraw(%q) = %v, want %v", tt.word, got, tt.valid)
		}
	}
}

func TestTileCountsIsCopy(t *testing.T) {
	counts := TileCounts()
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 100 {
		t.Fatalf("bag holds %d tiles, want 100", total)
	}
	counts['z'] = 0
	if TileCounts()['z'] != 1 {
		t.Fatal("TileCounts returned shared map")
	}
}
