package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/jask/systeroid-tui/internal/cli"
	"github.com/jask/systeroid-tui/internal/config"
	"github.com/jask/systeroid-tui/internal/docs"
	"github.com/jask/systeroid-tui/internal/logging"
	"github.com/jask/systeroid-tui/internal/sysctl"
	"github.com/jask/systeroid-tui/internal/tui"
)

// debugLogEnv names a file that receives debug logs while the UI is running.
const debugLogEnv = "SYSTEROID_TUI_DEBUG"

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run encapsulates the program for testing and returns the exit code.
func run(stdout, stderr io.Writer, args []string) int {
	// Use a minimal logger until the UI takes over the terminal.
	slog.SetDefault(logging.New(stderr, "warn"))

	cfg, outcome := cli.Run(args, stdout, stderr)
	if cfg == nil {
		return outcome.ExitCode()
	}

	ctx := context.Background()
	fsys := afero.NewOsFs()
	tree := sysctl.NewTree(fsys, sysctl.DefaultRoot)
	index := loadDocs(fsys, *cfg)

	closeLog, err := redirectLogs()
	if err != nil {
		fmt.Fprintf(stderr, "error: '%v'\n", err)
		return 1
	}
	defer closeLog()

	p := tea.NewProgram(tui.New(ctx, *cfg, tree, index), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(stderr, "error: '%v'\n", err)
		return 1
	}
	return 0
}

// loadDocs returns the documentation index, or nil when docs are disabled or
// cannot be found. Missing docs are not fatal.
func loadDocs(fsys afero.Fs, cfg config.Config) docs.Index {
	if cfg.NoDocs {
		return nil
	}
	root, err := docs.Locate(fsys, cfg.KernelDocs)
	if err != nil {
		slog.Warn("kernel documentation unavailable", "err", err)
		return nil
	}
	index, err := docs.Load(fsys, root)
	if err != nil {
		slog.Warn("kernel documentation unavailable", "root", root, "err", err)
		return nil
	}
	return index
}

// redirectLogs keeps log output off the screen while the UI runs.
func redirectLogs() (func(), error) {
	path := os.Getenv(debugLogEnv)
	if path == "" {
		slog.SetDefault(logging.Discard())
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	slog.SetDefault(logging.New(f, "debug"))
	return func() { _ = f.Close() }, nil
}
