// Package sysctl models kernel parameters exposed under /proc/sys.
//
// Allowed here:
// - section identifiers and their open string mapping
// - reading parameter names and values through an afero filesystem
// - pure filtering helpers used by the terminal UI
//
// Not allowed here:
// - writing parameter values
// - command-line or presentation concerns
package sysctl
