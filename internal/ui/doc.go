// Package ui renders styled output for the commands that print once and
// exit: termfolio run, termfolio scan and termfolio config.
//
// The interactive terminal lives in package tui. This package only writes
// Lipgloss-rendered strings to an io.Writer:
//
//   - Header: command banner with ordered parameters
//   - Result: success, failure and warning boxes
//   - RenderTranscript: terminal lines styled like the interactive view
//   - RenderInstanceTable: servers found on the local network
//
// Output width follows the terminal (golang.org/x/term) and is clamped to
// MinTerminalWidth..MaxContentWidth. When stdout is not a terminal Lipgloss
// drops colours, so piping the output yields plain text.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Portfolio", "termfolio run about")
//	p.PrintTranscript(sess.Lines())
package ui
