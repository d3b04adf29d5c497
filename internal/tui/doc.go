// Package tui is the terminal presenter for the calculator engine.
//
// Allowed here:
// - key and command-line routing to engine commands
// - keypad layout, themes, help footer
//
// Not allowed here:
// - input rules or arithmetic (calc)
// - number formatting (display)
package tui
