// Package cli is responsible for parsing command-line arguments, validating
// user input, and deciding whether the program should run at all. It
// translates flags into the application's configuration, or prints help,
// version or error text and reports that nothing should run.
package cli
