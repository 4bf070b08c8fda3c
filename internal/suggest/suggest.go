package suggest

import "github.com/orizon-lang/prose/internal/dictionary"

// maxQueryLen bounds the work a single Suggest call can do. Words longer
// than this are truncated for distance purposes rather than rejected, so
// the engine still returns candidates (possibly a poor match) instead of
// silently giving up on long, heavily-mangled input.
const maxQueryLen = 64

type candidate struct {
	word  []rune
	dist  int
	order int
}

// Suggest returns up to maxResults dictionary words within maxDistance of
// query, ordered by ascending edit distance with ties broken by
// dictionary iteration order (a stable secondary key, since the
// dictionaries this module ships do not track frequency).
//
// Empty query returns no results. maxDistance == 0 returns [query] if it is
// a dictionary member, else nothing. Suggest never panics on oversized
// input; queries longer than 64 scalars are capped for the purposes of the
// distance computation.
func Suggest(query []rune, maxResults, maxDistance int, dict dictionary.Dictionary) [][]rune {
	if len(query) == 0 || maxResults == 0 {
		return nil
	}

	work := query
	if len(work) > maxQueryLen {
		work = work[:maxQueryLen]
	}

	if maxDistance == 0 {
		if dict.Contains(query) {
			return [][]rune{cloneRunes(query)}
		}
		return nil
	}

	var candidates []candidate
	order := 0
	dict.Each(func(word []rune) bool {
		d := levenshtein(work, word, maxDistance)
		if d <= maxDistance {
			candidates = append(candidates, candidate{word: cloneRunes(word), dist: d, order: order})
		}
		order++
		return true
	})

	sortCandidates(candidates)

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	out := make([][]rune, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

// sortCandidates is a small stable insertion sort: candidate lists coming
// out of Suggest are bounded by dictionary size but typically tiny once
// filtered by edit distance, so an allocation-free stable sort beats
// pulling in sort.Slice's reflection-based comparator for this hot path.
func sortCandidates(c []candidate) {
	for i := 1; i < len(c); i++ {
		j := i
		for j > 0 && less(c[j], c[j-1]) {
			c[j], c[j-1] = c[j-1], c[j]
			j--
		}
	}
}

func less(a, b candidate) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.order < b.order
}

func cloneRunes(r []rune) []rune {
	cp := make([]rune, len(r))
	copy(cp, r)
	return cp
}
