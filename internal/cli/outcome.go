package cli

import "github.com/jask/systeroid-tui/internal/config"

// ExitUsage is the exit code for malformed invocations and invalid values.
const ExitUsage = 2

// Outcome is the result of resolving the command line. It is one of Help,
// Version, Failure or Ready.
type Outcome interface {
	// ExitCode is the status the process should exit with when no
	// configuration was produced.
	ExitCode() int
	isOutcome()
}

// Help means usage text was requested.
type Help struct {
	Usage string
}

// Version means the version line was requested.
type Version struct {
	Line string
}

// Failure means the arguments were rejected.
type Failure struct {
	Message string
}

// Ready carries the resolved configuration.
type Ready struct {
	Config config.Config
}

func (Help) ExitCode() int    { return 0 }
func (Version) ExitCode() int { return 0 }
func (Failure) ExitCode() int { return ExitUsage }
func (Ready) ExitCode() int   { return 0 }

func (Help) isOutcome()    {}
func (Version) isOutcome() {}
func (Failure) isOutcome() {}
func (Ready) isOutcome()   {}
