// Package runner invokes the external VPN client as a short-lived child
// process with a bounded wait.
//
// Every call produces a Result whose Status tells the caller whether the
// client succeeded, exited non-zero, overran its timeout, could not be
// started at all, or was cancelled by the user. The runner never retries;
// callers decide how to report or recover.
package runner
