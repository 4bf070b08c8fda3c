// Package dictionary provides membership and iteration over known words,
// and composition of several such sources into one merged lexicon.
package dictionary

// Dictionary is a polymorphic membership/iteration contract. Any type that
// can answer "do you contain this word" and "let me iterate your words"
// can act as a Dictionary, including another merged Dictionary.
//
// Membership is case-sensitive in the canonical form stored. Callers that
// want case-insensitive behavior must canonicalize themselves before
// calling Contains.
type Dictionary interface {
	// Contains reports whether word (a scalar sequence) is a known word.
	Contains(word []rune) bool
	// Each calls yield for every word in the dictionary, in an
	// implementation-defined but stable order. Iteration stops early if
	// yield returns false.
	Each(yield func(word []rune) bool)
}

// Words materializes every word an Each-based Dictionary produces. Useful
// for tests and small dictionaries; large ones should prefer Each directly.
func Words(d Dictionary) [][]rune {
	var out [][]rune
	d.Each(func(word []rune) bool {
		cp := make([]rune, len(word))
		copy(cp, word)
		out = append(out, cp)
		return true
	})
	return out
}

// setDictionary is the backing store for Curated dictionaries: a set of
// words keyed by their string form, preserving
// first-insertion order for iteration.
type setDictionary struct {
	index map[string]int
	words [][]rune
}

func newSetDictionary() *setDictionary {
	return &setDictionary{index: make(map[string]int)}
}

func (s *setDictionary) add(word []rune) {
	key := string(word)
	if _, ok := s.index[key]; ok {
		return
	}
	cp := make([]rune, len(word))
	copy(cp, word)
	s.index[key] = len(s.words)
	s.words = append(s.words, cp)
}

func (s *setDictionary) Contains(word []rune) bool {
	_, ok := s.index[string(word)]
	return ok
}

func (s *setDictionary) Each(yield func(word []rune) bool) {
	for _, w := range s.words {
		if !yield(w) {
			return
		}
	}
}

func (s *setDictionary) Len() int { return len(s.words) }
