// Package menu holds the interactive state machine: which screen the
// user is on, what each input means there, and which client action it
// triggers.
//
// The Controller does no terminal I/O. Each input line goes through
// Handle, which returns a Step describing the outcome; View describes
// the current screen for whatever renders it. The Controller alone
// decides how client errors are worded and when the list cache is
// invalidated.
package menu
