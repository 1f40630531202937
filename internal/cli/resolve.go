package cli

import (
	"log/slog"

	"github.com/jask/systeroid-tui/internal/buildinfo"
	"github.com/jask/systeroid-tui/internal/config"
)

// Resolve turns a match set into an Outcome. Help takes priority over
// version, and both over building a configuration. Resolve has no side
// effects.
func Resolve(m *Matches, info buildinfo.Info) Outcome {
	if m.Present(OptHelp) {
		slog.Debug("help requested")
		return Help{Usage: Usage(info.Name, Options())}
	}
	if m.Present(OptVersion) {
		slog.Debug("version requested")
		return Version{Line: info.String()}
	}

	if free := m.Free(); len(free) > 0 {
		slog.Debug("ignoring positional arguments", "args", free)
	}
	cfg, err := config.Load(m.flags)
	if err != nil {
		return Failure{Message: err.Error()}
	}
	return Ready{Config: cfg}
}
