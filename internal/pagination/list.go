package pagination

import "slices"

// SelectableList is a list shown for picking, together with its active
// filter and the layout of the entries that pass it.
type SelectableList struct {
	full      []string
	filter    string
	displayed []string
	threshold int
	plan      Plan
}

// NewSelectableList prepares items for display, sorted by order.
func NewSelectableList(items []string, threshold int, order string) *SelectableList {
	l := &SelectableList{
		full:      Sort(items, order),
		threshold: threshold,
	}
	l.SetFilter("")
	return l
}

// SetFilter replaces the active filter and recomputes the layout.
func (l *SelectableList) SetFilter(term string) {
	l.filter = term
	l.displayed = Filter(l.full, term)
	l.plan = Layout(l.displayed, l.threshold)
}

// Filter returns the active filter term.
func (l *SelectableList) Filter() string {
	return l.filter
}

// Full returns every item regardless of the filter.
func (l *SelectableList) Full() []string {
	return slices.Clone(l.full)
}

// Displayed returns the items that pass the filter.
func (l *SelectableList) Displayed() []string {
	return slices.Clone(l.displayed)
}

// Plan returns the layout of the displayed items.
func (l *SelectableList) Plan() Plan {
	return l.plan
}

// NoMatches reports whether a filter is active and matched nothing.
func (l *SelectableList) NoMatches() bool {
	return l.filter != "" && len(l.displayed) == 0
}

// Suggestions proposes near misses for the active filter.
func (l *SelectableList) Suggestions(limit int) []string {
	if !l.NoMatches() {
		return nil
	}
	return Suggest(l.full, l.filter, limit)
}
