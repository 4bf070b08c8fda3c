package dictionary

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed assets/words.txt
var curatedWordList string

// Curated is the base dictionary built once at server start from an
// embedded word list (spec.md §6's create_from_curated()). It stores only
// lowercase forms; capitalization is the linter's concern, not the
// dictionary's (spec.md §4.1).
type Curated struct {
	*setDictionary
}

// CreateFromCurated parses the embedded curated word list into a Curated
// dictionary. The list is bundled at build time via go:embed, so this
// never touches the filesystem at runtime.
func CreateFromCurated() *Curated {
	set := newSetDictionary()

	sc := bufio.NewScanner(strings.NewReader(curatedWordList))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.add([]rune(strings.ToLower(line)))
	}

	return &Curated{setDictionary: set}
}
