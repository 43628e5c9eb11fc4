package anagram

// Multiset counts letters. Missing keys count as zero.
type Multiset map[rune]int

// NewMultiset counts the runes of letters.
func NewMultiset(letters []rune) Multiset {
	m := make(Multiset, len(letters))
	for _, r := range letters {
		m.Add(r)
	}
	return m
}

// Add increments the count of r.
func (m Multiset) Add(r rune) { m[r]++ }

// Count returns the count of r.
func (m Multiset) Count(r rune) int { return m[r] }

// Clone returns an independent copy of m.
func (m Multiset) Clone() Multiset {
	out := make(Multiset, len(m))
	for r, n := range m {
		out[r] = n
	}
	return out
}

// Match reports whether candidate can be spelled from letters plus at most
// budget wildcards, and how many wildcards it needs. The scan stops at the
// first letter that would overdraw the budget. letters is not modified.
func Match(candidate string, letters Multiset, budget int) (used int, ok bool) {
	remaining := letters.Clone()
	for _, r := range candidate {
		if remaining.Count(r) > 0 {
			remaining[r]--
			continue
		}
		used++
		if used > budget {
			return used, false
		}
	}
	return used, true
}

// Formable is Match without the wildcard count.
func Formable(candidate string, letters Multiset, budget int) bool {
	_, ok := Match(candidate, letters, budget)
	return ok
}
