package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/systeroid-tui/internal/sysctl"
)

// DefaultTickRate is the refresh interval in milliseconds used when none is given.
const DefaultTickRate uint64 = 250

// Flag names the configuration is resolved from.
const (
	KeyTickRate = "tick-rate"
	KeyDocs     = "docs"
	KeySection  = "section"
	KeyQuery    = "query"
	KeyNoDocs   = "no-docs"
)

// ErrInvalidTickRate is returned when the tick rate is not a non-negative integer.
var ErrInvalidTickRate = errors.New("invalid tick rate")

// Config holds the resolved startup settings of the terminal UI.
type Config struct {
	// TickRate is the refresh interval in milliseconds.
	TickRate uint64
	// KernelDocs is the path of the kernel documentation, if given.
	KernelDocs *string
	// Section restricts the listing to one sysctl section, if given.
	Section *sysctl.Section
	// SearchQuery is searched for on startup, if given.
	SearchQuery *string
	// NoDocs disables parsing and display of the kernel documentation.
	NoDocs bool
}

// Default returns the configuration used when no flags are supplied.
func Default() Config {
	return Config{TickRate: DefaultTickRate}
}

// TickInterval is TickRate as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickRate) * time.Millisecond
}

// Load resolves parsed flags into a Config. Defaults come from viper; only
// flags the user actually supplied count as present. No files or environment
// variables are consulted.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault(KeyTickRate, DefaultTickRate)
	v.SetDefault(KeyNoDocs, false)

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	raw := v.GetString(KeyTickRate)
	tick, err := strconv.ParseUint(trimPlus(raw), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return Config{}, fmt.Errorf("%w %q: %w", ErrInvalidTickRate, raw, err)
	}

	c := Config{
		TickRate: tick,
		NoDocs:   flags.Changed(KeyNoDocs) && v.GetBool(KeyNoDocs),
	}
	if flags.Changed(KeyDocs) {
		docs := v.GetString(KeyDocs)
		c.KernelDocs = &docs
	}
	if flags.Changed(KeySection) {
		section := sysctl.ParseSection(v.GetString(KeySection))
		c.Section = &section
	}
	if flags.Changed(KeyQuery) {
		query := v.GetString(KeyQuery)
		c.SearchQuery = &query
	}

	slog.Debug("configuration resolved", "tick_rate", c.TickRate, "no_docs", c.NoDocs)
	return c, nil
}

// trimPlus drops a single leading '+' so "+500" reads as 500. A sign right
// after it ("++5", "+-5") is left in place and fails to parse.
func trimPlus(raw string) string {
	if len(raw) > 1 && raw[0] == '+' && raw[1] != '+' && raw[1] != '-' {
		return raw[1:]
	}
	return raw
}
