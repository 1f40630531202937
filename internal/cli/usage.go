package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpTemplate = `
Usage:
    {bin} [options]

Options:
{usage}

For more details see {bin}(8).`

var (
	formsColumn = lipgloss.NewStyle().PaddingLeft(4).PaddingRight(4)
	descColumn  = lipgloss.NewStyle()
)

// Usage renders the help text for bin with one line per option.
func Usage(bin string, opts []Option) string {
	forms := make([]string, len(opts))
	descs := make([]string, len(opts))
	for i, o := range opts {
		forms[i] = o.Forms()
		descs[i] = o.Description
	}

	table := lipgloss.JoinHorizontal(lipgloss.Top,
		formsColumn.Render(strings.Join(forms, "\n")),
		descColumn.Render(strings.Join(descs, "\n")),
	)
	lines := strings.Split(table, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}

	r := strings.NewReplacer("{bin}", bin, "{usage}", strings.Join(lines, "\n"))
	return r.Replace(helpTemplate)
}
