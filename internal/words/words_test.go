package words

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, src Source, v Variant, f Filter) []string {
	t.Helper()
	var out []string
	for w, err := range src.Words(v, f) {
		if err != nil {
			t.Fatalf("Words: %v", err)
		}
		out = append(out, w)
	}
	return out
}

func TestParseVariant(t *testing.T) {
	tests := map[string]Variant{"": TWL, "twl": TWL, "TWL": TWL, " sowpods ": SOWPODS, "SOWPODS": SOWPODS}
	for in, want := range tests {
		got, err := ParseVariant(in)
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseVariant(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseVariant("collins"); err == nil {
		t.Fatal("ParseVariant(collins) succeeded")
	}
	if SOWPODS.File() != "sowpods.txt" || TWL.File() != "twl.txt" {
		t.Fatalf("files = %q, %q", TWL.File(), SOWPODS.File())
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		f    Filter
		word string
		want bool
	}{
		{Filter{}, "anything", true},
		{Filter{Start: "sax"}, "saxifrage", true},
		{Filter{Start: "sax"}, "axe", false},
		{Filter{End: "ly"}, "ably", true},
		{Filter{End: "ly"}, "lye", false},
		{Filter{Start: "ab", End: "ly"}, "ably", true},
		{Filter{Start: "ab", End: "ly"}, "ablyx", false},
		// Overlap is allowed: both constraints share the middle letter.
		{Filter{Start: "ab", End: "ba"}, "aba", true},
	}
	for _, tt := range tests {
		if got := tt.f.Match(tt.word); got != tt.want {
			t.Errorf("%+v.Match(%q) = %v, want %v", tt.f, tt.word, got, tt.want)
		}
	}
}

func TestFSSource(t *testing.T) {
	src := FSSource{FS: fstest.MapFS{
		"twl.txt":     {Data: []byte("# comment\nAble\n  bake \n\nbalk\ncake\n")},
		"sowpods.txt": {Data: []byte("aahed\nable\n")},
	}}

	if diff := cmp.Diff([]string{"able", "bake", "balk", "cake"}, collect(t, src, TWL, Filter{})); diff != "" {
		t.Errorf("twl (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"bake", "cake"}, collect(t, src, TWL, Filter{End: "ke"})); diff != "" {
		t.Errorf("end filter (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"bake"}, collect(t, src, TWL, Filter{Start: "b", End: "e"})); diff != "" {
		t.Errorf("both filters (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"aahed", "able"}, collect(t, src, SOWPODS, Filter{})); diff != "" {
		t.Errorf("sowpods (-want +got):\n%s", diff)
	}
}

func TestFSSourceMissingFile(t *testing.T) {
	src := FSSource{FS: fstest.MapFS{}}
	var got error
	for _, err := range src.Words(SOWPODS, Filter{}) {
		got = err
	}
	if !errors.Is(got, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", got)
	}
}

func TestFSSourceEarlyBreak(t *testing.T) {
	src := FSSource{FS: fstest.MapFS{"twl.txt": {Data: []byte("a\nb\nc\n")}}}
	var got []string
	for w, err := range src.Words(TWL, Filter{}) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, w)
		break
	}
	if diff := cmp.Diff([]string{"a"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "twl.txt"), []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := Count(Dir(dir), TWL)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("Count = %d, want 2", n)
	}
	if _, err := Count(Dir(dir), SOWPODS); err == nil {
		t.Fatal("Count on missing sowpods.txt succeeded")
	}
}

func TestEmbedded(t *testing.T) {
	src := Embedded()
	for _, v := range []Variant{TWL, SOWPODS} {
		first := collect(t, src, v, Filter{})
		if len(first) == 0 || first[0] != "aa" {
			t.Fatalf("%v: first word = %v, want aa", v, first[:min(1, len(first))])
		}
	}
	twl := collect(t, src, TWL, Filter{Start: "b", End: "d"})
	for _, w := range twl {
		if w == "bord" || w == "brod" {
			t.Fatalf("twl contains sowpods-only word %q", w)
		}
	}
	sow := collect(t, src, SOWPODS, Filter{Start: "b", End: "d"})
	if len(sow) <= len(twl) {
		t.Fatalf("sowpods b…d = %d words, twl = %d", len(sow), len(twl))
	}
}

func TestList(t *testing.T) {
	l := List{"do", "dow", "rod", "word"}
	if diff := cmp.Diff([]string{"dow"}, collect(t, l, SOWPODS, Filter{End: "w"})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"do", "dow"}, collect(t, l, TWL, Filter{Start: "do"})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
