package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jask/systeroid-tui/internal/buildinfo"
	"github.com/jask/systeroid-tui/internal/config"
)

// Run parses and resolves args (without the program name). Help and version
// text go to stdout, errors to stderr as "error: '<details>'". A non-nil
// configuration is returned only for a Ready outcome; otherwise the caller
// should exit with outcome.ExitCode().
func Run(args []string, stdout, stderr io.Writer) (*config.Config, Outcome) {
	slog.Debug("CLI parser started.", "args", len(args))

	var outcome Outcome
	m, err := Parse(args)
	if err != nil {
		outcome = Failure{Message: err.Error()}
	} else {
		outcome = Resolve(m, buildinfo.Current())
	}

	switch o := outcome.(type) {
	case Help:
		fmt.Fprintln(stdout, o.Usage)
	case Version:
		fmt.Fprintln(stdout, o.Line)
	case Failure:
		fmt.Fprintf(stderr, "error: '%s'\n", o.Message)
	case Ready:
		cfg := o.Config
		return &cfg, outcome
	}
	return nil, outcome
}
