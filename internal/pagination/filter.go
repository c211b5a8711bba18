package pagination

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultMaxSuggestions caps how many near misses Suggest returns.
const DefaultMaxSuggestions = 3

// Filter returns the items whose lowercase form contains the lowercase
// form of term, in their original order. A blank term keeps everything.
// The input slice is never modified.
func Filter(items []string, term string) []string {
	if strings.TrimSpace(term) == "" {
		return slices.Clone(items)
	}
	needle := strings.ToLower(term)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Suggest proposes up to limit items close to term when Filter found
// nothing. Items containing the letters of term in order rank first;
// otherwise items within a small edit distance are offered.
func Suggest(items []string, term string, limit int) []string {
	term = strings.TrimSpace(term)
	if term == "" || len(items) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}

	ranks := fuzzy.RankFindFold(term, items)
	if len(ranks) > 0 {
		slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
			if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
				return c
			}
			return cmp.Compare(a.OriginalIndex, b.OriginalIndex)
		})
		out := make([]string, 0, min(limit, len(ranks)))
		for _, r := range ranks[:min(limit, len(ranks))] {
			out = append(out, r.Target)
		}
		return out
	}

	return nearestByEditDistance(items, term, limit)
}

type scored struct {
	item  string
	dist  int
	index int
}

func nearestByEditDistance(items []string, term string, limit int) []string {
	needle := strings.ToLower(term)
	maxDist := max(1, len([]rune(needle))/3)

	var candidates []scored
	for i, item := range items {
		d := fuzzy.LevenshteinDistance(needle, strings.ToLower(item))
		if d <= maxDist {
			candidates = append(candidates, scored{item: item, dist: d, index: i})
		}
	}
	slices.SortFunc(candidates, func(a, b scored) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.item)
	}
	return out
}
