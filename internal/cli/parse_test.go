package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	m, err := Parse(nil)
	require.NoError(t, err)
	for _, o := range Options() {
		assert.False(t, m.Present(o.Long), "%s should be absent", o.Long)
	}
	assert.Empty(t, m.Free())
}

func TestParseForms(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"short separate": {"-t", "500"},
		"short attached": {"-t500"},
		"long separate":  {"--tick-rate", "500"},
		"long equals":    {"--tick-rate=500"},
	}
	for name, args := range cases {
		m, err := Parse(args)
		require.NoError(t, err, name)
		v, ok := m.Value("tick-rate")
		require.True(t, ok, name)
		require.Equal(t, "500", v, name)
	}
}

func TestParseGroupedFlags(t *testing.T) {
	t.Parallel()

	m, err := Parse([]string{"-nq", "vm"})
	require.NoError(t, err)
	assert.True(t, m.Present("no-docs"))
	v, ok := m.Value("query")
	assert.True(t, ok)
	assert.Equal(t, "vm", v)
}

func TestParseKeepsValuesRaw(t *testing.T) {
	t.Parallel()

	m, err := Parse([]string{"-t", "abc", "-s", "NotASection", "-D", "relative/path"})
	require.NoError(t, err, "the parser does not interpret values")

	v, _ := m.Value("tick-rate")
	assert.Equal(t, "abc", v)
	v, _ = m.Value("section")
	assert.Equal(t, "NotASection", v)
	v, _ = m.Value("docs")
	assert.Equal(t, "relative/path", v)
}

func TestParseValueMayLookLikeFlag(t *testing.T) {
	t.Parallel()

	m, err := Parse([]string{"-t", "-5"})
	require.NoError(t, err)
	v, _ := m.Value("tick-rate")
	assert.Equal(t, "-5", v)
}

func TestParseShortEqualsKeepsSign(t *testing.T) {
	t.Parallel()

	m, err := Parse([]string{"-t=500"})
	require.NoError(t, err)
	v, _ := m.Value("tick-rate")
	assert.Equal(t, "=500", v)

	m, err = Parse([]string{"-nq=vm"})
	require.NoError(t, err)
	assert.True(t, m.Present("no-docs"))
	v, _ = m.Value("query")
	assert.Equal(t, "=vm", v)
}

func TestParseSkipsValuesOfValueOptions(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"short": {"-q", "--help=true"},
		"long":  {"--query", "-n=true"},
	}
	for name, args := range cases {
		m, err := Parse(args)
		require.NoError(t, err, name)
		v, _ := m.Value("query")
		assert.Equal(t, args[1], v, name)
		assert.False(t, m.Present(OptHelp), name)
	}
}

func TestParseLeavesTokensAfterTerminator(t *testing.T) {
	t.Parallel()

	m, err := Parse([]string{"--", "--no-docs=true", "-t=5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--no-docs=true", "-t=5"}, m.Free())
	assert.False(t, m.Present("no-docs"))
}

func TestParseFreeArguments(t *testing.T) {
	t.Parallel()

	m, err := Parse([]string{"extra", "-n", "--", "-t"})
	require.NoError(t, err)
	assert.Equal(t, []string{"extra", "-t"}, m.Free())
	assert.False(t, m.Present("tick-rate"))
}

func TestParseFailures(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		args []string
		msg  string
	}{
		"unknown long":        {[]string{"--bogus"}, "unknown flag: --bogus"},
		"unknown short":       {[]string{"-x"}, "unknown shorthand flag: 'x' in -x"},
		"missing short value": {[]string{"-t"}, "flag needs an argument"},
		"missing long value":  {[]string{"--query"}, "flag needs an argument"},
		"duplicate":           {[]string{"-t", "1", "--tick-rate", "2"}, "option 'tick-rate' given more than once"},
		"duplicate flag":      {[]string{"-nn"}, "option 'no-docs' given more than once"},
		"flag with value":     {[]string{"--help=false"}, "option 'help' does not take an argument"},
		"long flag true":      {[]string{"--no-docs=true"}, "option 'no-docs' does not take an argument"},
		"short flag true":     {[]string{"-n=true"}, "option 'no-docs' does not take an argument"},
		"help true":           {[]string{"--help=true"}, "option 'help' does not take an argument"},
		"grouped flag value":  {[]string{"-nV=1"}, "option 'version' does not take an argument"},
	}
	for name, tc := range cases {
		m, err := Parse(tc.args)
		require.Error(t, err, name)
		require.Nil(t, m, name)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), "%s: want *ParseError, got %T", name, err)
		require.Contains(t, err.Error(), tc.msg, name)
	}
}

func TestMatchesFreeIsCopy(t *testing.T) {
	t.Parallel()

	m, err := Parse([]string{"a"})
	require.NoError(t, err)
	free := m.Free()
	free[0] = "changed"
	require.Equal(t, []string{"a"}, m.Free())
}
