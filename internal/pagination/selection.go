package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SelectionKind says what the user asked for at a list prompt.
type SelectionKind int

const (
	// SelectInvalid is never returned with a nil error.
	SelectInvalid SelectionKind = iota
	// SelectIndex picks the numbered entry.
	SelectIndex
	// SelectBack returns to the main menu.
	SelectBack
	// SelectFilter asks for a filter term, or applies Term when given inline.
	SelectFilter
	// SelectClearFilter removes the active filter.
	SelectClearFilter
)

// Selection is a parsed list prompt input.
type Selection struct {
	Kind  SelectionKind
	Index int
	Term  string
}

// Input validation errors.
var (
	ErrEmptySelection   = errors.New("no selection entered")
	ErrOutOfRange       = errors.New("selection out of range")
	ErrInvalidSelection = errors.New("invalid selection")
)

// ParseSelection interprets input against a list of n displayed entries.
// Accepted forms are an index in [1, n], "0" to go back, "f" (optionally
// followed by a term) to filter, and "c" to clear the filter.
func ParseSelection(input string, n int) (Selection, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return Selection{}, ErrEmptySelection
	}

	lower := strings.ToLower(in)
	switch {
	case lower == "0":
		return Selection{Kind: SelectBack}, nil
	case lower == "f" || lower == "/":
		return Selection{Kind: SelectFilter}, nil
	case strings.HasPrefix(lower, "f "), strings.HasPrefix(lower, "/"):
		return Selection{Kind: SelectFilter, Term: strings.TrimSpace(in[1:])}, nil
	case lower == "c":
		return Selection{Kind: SelectClearFilter}, nil
	}

	idx, err := strconv.Atoi(in)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %q", ErrInvalidSelection, in)
	}
	if idx < 1 || idx > n {
		return Selection{}, fmt.Errorf("%w: enter a number between 0 and %d", ErrOutOfRange, n)
	}
	return Selection{Kind: SelectIndex, Index: idx}, nil
}
