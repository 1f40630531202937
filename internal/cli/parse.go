package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// ParseError reports a malformed invocation: an unknown option, a missing
// value, a repeated option, or a value given to a flag.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Matches is the validated result of applying arguments to Options().
type Matches struct {
	flags *pflag.FlagSet
	free  []string
}

// Parse validates args (without the program name) against Options().
// It only recognizes shape and presence; values stay raw strings.
// Nothing is printed.
func Parse(args []string) (*Matches, error) {
	opts := Options()
	args, err := checkArgs(args, opts)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	fs := newFlagSet(opts)
	seen := make(map[string]bool)

	err = fs.ParseAll(args, func(flag *pflag.Flag, value string) error {
		if seen[flag.Name] {
			return fmt.Errorf("option '%s' given more than once", flag.Name)
		}
		seen[flag.Name] = true
		return fs.Set(flag.Name, value)
	})
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	slog.Debug("arguments parsed", "options", len(seen), "free", fs.NArg())
	return &Matches{flags: fs, free: fs.Args()}, nil
}

// checkArgs looks at the raw tokens before pflag does. A flag with an
// attached value ("--no-docs=true", "-n=1") is rejected, and a short value
// option written "-t=500" is split so that the '=' stays part of its value.
// Tokens after "--" are left alone.
func checkArgs(args []string, opts []Option) ([]string, error) {
	long := make(map[string]Option, len(opts))
	short := make(map[byte]Option, len(opts))
	for _, o := range opts {
		long[o.Long] = o
		if o.Short != "" {
			short[o.Short[0]] = o
		}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		out = append(out, a)
		switch {
		case a == "--":
			return append(out, args[i+1:]...), nil
		case strings.HasPrefix(a, "--"):
			name, _, attached := strings.Cut(a[2:], "=")
			o, ok := long[name]
			if !ok {
				continue
			}
			if attached && o.Arity == NoValue {
				return nil, fmt.Errorf("option '%s' does not take an argument", o.Long)
			}
			if !attached && o.Arity == RequiredValue && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case len(a) > 1 && a[0] == '-':
			for j := 1; j < len(a); j++ {
				o, ok := short[a[j]]
				if !ok {
					break
				}
				rest := a[j+1:]
				if o.Arity == NoValue {
					if strings.HasPrefix(rest, "=") {
						return nil, fmt.Errorf("option '%s' does not take an argument", o.Long)
					}
					continue
				}
				switch {
				case rest == "" && i+1 < len(args):
					i++
					out = append(out, args[i])
				case strings.HasPrefix(rest, "="):
					out[len(out)-1] = a[:j+1]
					out = append(out, rest)
				}
				break
			}
		}
	}
	return out, nil
}

// Present reports whether the option with the given long name was supplied.
func (m *Matches) Present(name string) bool {
	return m.flags.Changed(name)
}

// Value returns the raw value supplied for a value-taking option.
func (m *Matches) Value(name string) (string, bool) {
	if !m.Present(name) {
		return "", false
	}
	return m.flags.Lookup(name).Value.String(), true
}

// Free returns the positional arguments, which are accepted and ignored.
func (m *Matches) Free() []string {
	return append([]string(nil), m.free...)
}
