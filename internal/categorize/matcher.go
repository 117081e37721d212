package categorize

import (
	"strings"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Uncategorized is returned by Search when no keyword matches.
const Uncategorized = "uncategorized"

// Index maps lower-cased keywords to the user's category names.
//
// Keywords are scanned in the order they were first inserted: categories in
// the order given to Build, each archetype's keywords in registry order. A
// keyword generated again by a later category keeps its scan position but now
// points at the later category.
type Index struct {
	order     []string
	byKeyword map[string]string
}

// Build indexes the keywords of every enabled category that resolves to an
// archetype in reg. Categories without an archetype contribute nothing.
func Build(categories []model.Category, reg *Registry) *Index {
	ix := &Index{byKeyword: make(map[string]string)}
	for _, c := range categories {
		if !c.Enabled {
			continue
		}
		arch, ok := reg.Resolve(c.Name)
		if !ok {
			continue
		}
		for _, kw := range arch.Keywords() {
			if kw == "" {
				continue
			}
			if _, seen := ix.byKeyword[kw]; !seen {
				ix.order = append(ix.order, kw)
			}
			ix.byKeyword[kw] = c.Name
		}
	}
	return ix
}

// Len returns the number of distinct keywords.
func (ix *Index) Len() int { return len(ix.order) }

// Lookup returns the category and keyword of the first keyword contained in
// description.
func (ix *Index) Lookup(description string) (category, keyword string, ok bool) {
	text := strings.ToLower(description)
	for _, kw := range ix.order {
		if strings.Contains(text, kw) {
			return ix.byKeyword[kw], kw, true
		}
	}
	return "", "", false
}

// Search returns the suggested category for description, or Uncategorized.
func (ix *Index) Search(description string) string {
	if cat, _, ok := ix.Lookup(description); ok {
		return cat
	}
	return Uncategorized
}

// Apply fills the Category of transactions that have none and match a
// keyword. Unmatched transactions are left empty for manual review. Returns
// the number of transactions categorized.
func (ix *Index) Apply(txns []model.Transaction) int {
	n := 0
	for i := range txns {
		if txns[i].Category != "" {
			continue
		}
		if cat, _, ok := ix.Lookup(txns[i].Description); ok {
			txns[i].Category = cat
			n++
		}
	}
	return n
}
