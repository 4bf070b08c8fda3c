// Package lint defines the shape of a diagnostic produced by any linter in
// this module, independent of how it is transported to an editor.
package lint

import "github.com/orizon-lang/prose/internal/document"

// Kind is a tagged variant over diagnostic categories. Spelling is the
// only category defined.
type Kind int

const (
	Spelling Kind = iota
)

func (k Kind) String() string {
	switch k {
	case Spelling:
		return "Spelling"
	default:
		return "Unknown"
	}
}

// Suggestion is a tagged variant of possible fixes. ReplaceWith is the only
// variant the spell linter emits; others are reserved for future linters.
type Suggestion struct {
	ReplaceWith []rune
}

// Lint is a single diagnostic: a span, a kind, a message, ordered
// suggestions, and a stable sort priority (lower sorts first / more
// important). The spell linter always emits priority 63.
type Lint struct {
	Span        document.Span
	Kind        Kind
	Message     string
	Suggestions []Suggestion
	Priority    uint8
}

// SortKey orders lints the way every consumer is expected to: ascending
// priority, then ascending span start.
func SortKey(l Lint) (uint8, int) { return l.Priority, l.Span.Start }

// Sort orders a slice of Lints in place by (priority asc, span.Start asc).
func Sort(lints []Lint) {
	// insertion sort is fine here: lint slices per document are small, and
	// a dependency-free stable sort keeps this package import-light.
	for i := 1; i < len(lints); i++ {
		j := i
		for j > 0 && less(lints[j], lints[j-1]) {
			lints[j], lints[j-1] = lints[j-1], lints[j]
			j--
		}
	}
}

func less(a, b Lint) bool {
	pa, sa := SortKey(a)
	pb, sb := SortKey(b)
	if pa != pb {
		return pa < pb
	}
	return sa < sb
}
