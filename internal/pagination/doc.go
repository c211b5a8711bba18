// Package pagination turns a flat list of names into something a person
// can pick from on a terminal.
//
// It filters by case-insensitive substring, lays long lists out in two
// columns with one continuous numbering, and parses the selection typed
// at the prompt. Everything here is pure; no I/O and no shared state.
package pagination
