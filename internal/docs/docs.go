// Package docs extracts per-parameter help text from the Linux kernel
// documentation (Documentation/admin-guide/sysctl/*.rst).
package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jask/systeroid-tui/internal/sysctl"
)

// ErrNoDocs is returned when no kernel documentation can be found.
var ErrNoDocs = errors.New("kernel documentation not found")

// DefaultPaths are the usual install locations of the kernel Documentation
// directory, tried in order. Glob patterns are allowed.
var DefaultPaths = []string{
	"/usr/share/doc/linux/",
	"/usr/share/doc/linux-doc/",
	"/usr/share/doc/kernel-doc-*/Documentation",
	"/usr/src/linux/Documentation",
}

// Index maps "<section>/<name>" to documentation text.
type Index map[string]string

// Locate picks the documentation root. An explicit path wins but must exist;
// otherwise the first existing DefaultPaths entry is used.
func Locate(fsys afero.Fs, explicit *string) (string, error) {
	if explicit != nil {
		if ok, _ := afero.DirExists(fsys, *explicit); !ok {
			return "", fmt.Errorf("%w: %s", ErrNoDocs, *explicit)
		}
		return *explicit, nil
	}
	for _, pattern := range DefaultPaths {
		matches, err := afero.Glob(fsys, pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if ok, _ := afero.DirExists(fsys, m); ok {
				return m, nil
			}
		}
	}
	return "", ErrNoDocs
}

// Load parses the page of every known section found under root. Sections
// without a page are skipped.
func Load(fsys afero.Fs, root string) (Index, error) {
	index := make(Index)
	pages := 0
	for _, section := range sysctl.Sections() {
		file := filepath.Join(root, filepath.FromSlash(section.DocsFile()))
		data, err := afero.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			slog.Warn("skipping documentation page", "file", file, "err", err)
			continue
		}
		pages++
		for name, text := range parsePage(string(data)) {
			index[key(section.Name, name)] = text
		}
	}
	if pages == 0 {
		return nil, fmt.Errorf("%w: no sysctl pages under %s", ErrNoDocs, root)
	}
	slog.Debug("kernel documentation loaded", "root", root, "pages", pages, "entries", len(index))
	return index, nil
}

// Lookup returns the text documenting p, or "" when there is none.
func (idx Index) Lookup(p sysctl.Parameter) string {
	if idx == nil {
		return ""
	}
	return idx[key(p.Section.String(), p.BaseName())]
}

func key(section, name string) string {
	return strings.ToLower(section) + "/" + strings.ToLower(name)
}

// parsePage splits an rst page into titled entries. A title is a line
// underlined by a run of '=', '-' or '~' at least as long as the title.
// Titles such as "a, b & c" document several parameters at once.
func parsePage(page string) map[string]string {
	lines := strings.Split(strings.ReplaceAll(page, "\r\n", "\n"), "\n")
	entries := make(map[string]string)

	var names []string
	var body []string
	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		for _, n := range names {
			if text != "" {
				entries[n] = text
			}
		}
		names, body = nil, nil
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t")
		if i+1 < len(lines) && isTitle(line, strings.TrimRight(lines[i+1], " \t")) {
			flush()
			names = titleNames(line)
			i++
			continue
		}
		if isUnderline(line) {
			continue
		}
		body = append(body, line)
	}
	flush()
	return entries
}

func isTitle(title, under string) bool {
	t := strings.TrimSpace(title)
	if t == "" || isUnderline(t) {
		return false
	}
	return isUnderline(under) && len(under) >= len(t)
}

func isUnderline(s string) bool {
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '=' && c != '-' && c != '~' {
		return false
	}
	return strings.Count(s, string(c)) == len(s)
}

func titleNames(title string) []string {
	fields := strings.FieldsFunc(title, func(r rune) bool { return r == ',' || r == '&' })
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(strings.TrimSpace(f), ":")
		if f == "" || strings.ContainsRune(f, ' ') {
			continue
		}
		names = append(names, f)
	}
	return names
}
