// Package console draws menu screens on a terminal and reads the user's
// answers with readline. Rendering uses lipgloss and degrades to plain
// text when output is not a terminal or color is disabled.
package console
