// Package terminal implements the simulated portfolio terminal: a fixed
// command table over the portfolio content, a bounded command history with
// cursor recall, and the per-visitor Session that ties them to a transcript.
//
// # Commands
//
// Input is trimmed and lower-cased before lookup, so "  HELP  " and "help"
// behave the same. Unknown input produces one error line:
//
//	Command not found: xyz. Type 'help' for available commands.
//
// The clear command empties the transcript instead of printing text. The
// exit command only prints a farewell; the terminal stays interactive.
//
// # History
//
// The history keeps the 50 most recent submissions, oldest first, and
// skips a submission equal to the one before it. Its cursor is -1 when the
// user is not navigating, 0 for the most recent entry, and grows toward
// older entries. Navigation clamps at both ends.
//
// # Sessions
//
// A Session starts in the booting state and ignores submissions until
// Boot is called; front-ends call it from a one-shot timer. Sessions are
// single-owner and must not be shared between goroutines. The Registry
// they read from is immutable and may be shared freely.
package terminal
