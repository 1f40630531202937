package cli

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/jask/systeroid-tui/internal/config"
)

// Arity tells whether an option takes a value.
type Arity int

const (
	NoValue Arity = iota
	RequiredValue
)

// Long names of the options that do not feed the configuration directly.
const (
	OptHelp    = "help"
	OptVersion = "version"
)

// Option describes one recognized command-line option.
type Option struct {
	Short       string
	Long        string
	Hint        string
	Description string
	Arity       Arity
}

// Options returns the recognized options in help order.
func Options() []Option {
	return []Option{
		{Short: "t", Long: config.KeyTickRate, Hint: "<ms>", Arity: RequiredValue,
			Description: "set the tick rate of the terminal [default: 250]"},
		{Short: "D", Long: config.KeyDocs, Hint: "<path>", Arity: RequiredValue,
			Description: "set the path of the kernel documentation"},
		{Short: "s", Long: config.KeySection, Hint: "<section>", Arity: RequiredValue,
			Description: "set the section to filter"},
		{Short: "q", Long: config.KeyQuery, Hint: "<query>", Arity: RequiredValue,
			Description: "set the query to search"},
		{Short: "n", Long: config.KeyNoDocs, Arity: NoValue,
			Description: "do not show the kernel documentation"},
		{Short: "h", Long: OptHelp, Arity: NoValue,
			Description: "display this help and exit"},
		{Short: "V", Long: OptVersion, Arity: NoValue,
			Description: "output version information and exit"},
	}
}

// Forms renders the option as it appears in help, e.g. "-t, --tick-rate <ms>".
func (o Option) Forms() string {
	s := "-" + o.Short + ", --" + o.Long
	if o.Arity == RequiredValue && o.Hint != "" {
		s += " " + o.Hint
	}
	return s
}

// newFlagSet registers opts on a silent pflag set. Every value option is a
// plain string; coercion happens later in config.Load.
func newFlagSet(opts []Option) *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	for _, o := range opts {
		switch o.Arity {
		case RequiredValue:
			fs.StringP(o.Long, o.Short, "", o.Description)
		default:
			fs.BoolP(o.Long, o.Short, false, o.Description)
		}
	}
	return fs
}
