// Package tui runs the portfolio terminal inside a local terminal emulator
// using Bubble Tea.
//
// The screen follows the same layout as the browser terminal: a header with
// the portfolio title and window dots, a scrolling transcript, the prompt,
// and a footer listing the key bindings. Until the boot delay elapses the
// transcript area shows a spinner and the boot message, and keystrokes other
// than ctrl+c are ignored.
//
// Components:
//   - bubbles/textinput: the prompt line
//   - bubbles/viewport: transcript scrolling (pgup/pgdown and the mouse wheel)
//   - bubbles/spinner: boot indicator
//   - bubbles/help + key: footer
//
// Usage:
//
//	sess := terminal.NewSession(p, nil)
//	err := tui.Run(ctx, sess, tui.Options{BootDelay: time.Second})
package tui
