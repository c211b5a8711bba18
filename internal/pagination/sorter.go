package pagination

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders.
const (
	SortOrderNone = "none"
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ErrInvalidSortOrder reports an unknown sort order.
var ErrInvalidSortOrder = errors.New("sort order must be 'none', 'asc' or 'desc'")

// ParseSortOrder normalizes order; an empty string means SortOrderNone.
func ParseSortOrder(order string) (string, error) {
	switch o := strings.ToLower(strings.TrimSpace(order)); o {
	case "":
		return SortOrderNone, nil
	case SortOrderNone, SortOrderAsc, SortOrderDesc:
		return o, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
}

// Sort returns a sorted copy of items using case-insensitive English
// collation. SortOrderNone keeps the client's order. The sort is stable,
// so names that collate equally keep their relative order.
func Sort(items []string, order string) []string {
	sorted := slices.Clone(items)
	if order != SortOrderAsc && order != SortOrderDesc {
		return sorted
	}

	col := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(sorted, func(a, b string) int {
		c := col.CompareString(a, b)
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return sorted
}
