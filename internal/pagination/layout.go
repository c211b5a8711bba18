package pagination

// DefaultColumnsThreshold is the list length at which two columns are used.
const DefaultColumnsThreshold = 20

// Entry is one numbered item in a layout. Index is 1-based.
type Entry struct {
	Index int
	Item  string
}

// Plan is a list arranged for display. Numbering runs down the first
// column and continues down the second; indices are contiguous from 1.
type Plan struct {
	// Columns holds one or two columns of entries.
	Columns [][]Entry
	// Rows is the number of display rows.
	Rows int
}

// Layout arranges items in one column, or in two when there are at least
// threshold items. With L items in two columns the first column holds
// ceil(L/2) entries. A non-positive threshold selects the default.
func Layout(items []string, threshold int) Plan {
	if threshold <= 0 {
		threshold = DefaultColumnsThreshold
	}

	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Index: i + 1, Item: item}
	}

	switch {
	case len(entries) == 0:
		return Plan{}
	case len(entries) < threshold:
		return Plan{Columns: [][]Entry{entries}, Rows: len(entries)}
	default:
		rows := (len(entries) + 1) / 2
		return Plan{
			Columns: [][]Entry{entries[:rows], entries[rows:]},
			Rows:    rows,
		}
	}
}

// Len returns the number of entries in the plan.
func (p Plan) Len() int {
	n := 0
	for _, col := range p.Columns {
		n += len(col)
	}
	return n
}

// TwoColumn reports whether the plan uses two columns.
func (p Plan) TwoColumn() bool {
	return len(p.Columns) == 2
}

// Row returns the entries displayed on row i (0-based), left to right.
func (p Plan) Row(i int) []Entry {
	if i < 0 || i >= p.Rows {
		return nil
	}
	row := make([]Entry, 0, len(p.Columns))
	for _, col := range p.Columns {
		if i < len(col) {
			row = append(row, col[i])
		}
	}
	return row
}

// Resolve maps a displayed index back to its item.
func (p Plan) Resolve(index int) (string, bool) {
	if index < 1 {
		return "", false
	}
	offset := index - 1
	for _, col := range p.Columns {
		if offset < len(col) {
			return col[offset].Item, true
		}
		offset -= len(col)
	}
	return "", false
}

// Entries returns every entry in index order.
func (p Plan) Entries() []Entry {
	out := make([]Entry, 0, p.Len())
	for _, col := range p.Columns {
		out = append(out, col...)
	}
	return out
}
