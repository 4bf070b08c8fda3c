package dictionary

// Merged composes an ordered list of Dictionaries: Contains is the union
// (any member containing the word is enough), and Each concatenates every
// member's iteration in order. Duplicates across members are not
// deduplicated; callers (the suggestion engine among them) must tolerate
// the same word surfacing more than once.
//
// Members are held by reference (interface values wrapping pointers), so
// several Mergeds can share one base lexicon without copying it, matching
// spec.md's reference-counted sharing note in §9.
type Merged struct {
	members []Dictionary
}

// NewMerged returns an empty Merged dictionary.
func NewMerged() *Merged {
	return &Merged{}
}

// Add appends a member dictionary. Adding a member invalidates any
// SuggestionCache built against a prior state of this Merged; callers that
// own such a cache must clear it after calling Add.
func (m *Merged) Add(d Dictionary) {
	m.members = append(m.members, d)
}

// Contains reports whether any member dictionary contains word.
func (m *Merged) Contains(word []rune) bool {
	for _, d := range m.members {
		if d.Contains(word) {
			return true
		}
	}
	return false
}

// Each concatenates every member's iteration order. Stops early, across
// member boundaries, the moment yield returns false.
func (m *Merged) Each(yield func(word []rune) bool) {
	for _, d := range m.members {
		done := false
		d.Each(func(word []rune) bool {
			if !yield(word) {
				done = true
				return false
			}
			return true
		})
		if done {
			return
		}
	}
}
