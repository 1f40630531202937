// Package tui is the terminal browser for sysctl parameters.
//
// Allowed here:
// - the bubbletea model, key bindings and rendering
// - periodic refresh driven by the configured tick rate
//
// Not allowed here:
// - argument parsing (cli) or reading /proc/sys directly (sysctl)
package tui
