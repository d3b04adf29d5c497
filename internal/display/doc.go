// Package display turns engine values into the strings a user sees.
//
// Allowed here:
// - result rendering (fixed and scientific), error markers
// - locale-aware grouping of the entry buffer
//
// Not allowed here:
// - calculator state or input rules (calc)
// - styling and layout (tui)
package display
