package sysctl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DefaultRoot is where the kernel exposes its parameters.
const DefaultRoot = "/proc/sys"

// ErrNotFound is returned when a parameter has no backing file.
var ErrNotFound = errors.New("parameter not found")

// Tree reads parameters from a directory laid out like /proc/sys.
type Tree struct {
	fs   afero.Fs
	root string
}

// NewTree returns a Tree rooted at root on fsys.
func NewTree(fsys afero.Fs, root string) *Tree {
	return &Tree{fs: fsys, root: filepath.Clean(root)}
}

// Root returns the directory the tree reads from.
func (t *Tree) Root() string {
	return t.root
}

// Parameters walks the tree and returns every readable parameter sorted by
// name. Entries that cannot be read (write-only or permission-restricted
// files) are skipped.
func (t *Tree) Parameters(ctx context.Context) ([]Parameter, error) {
	var params []Parameter
	err := afero.Walk(t.fs, t.root, func(path string, info fs.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == t.root {
				return err
			}
			slog.Debug("skipping unreadable sysctl entry", "path", path, "err", err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		value, readErr := t.readFile(path)
		if readErr != nil {
			slog.Debug("skipping unreadable sysctl entry", "path", path, "err", readErr)
			return nil
		}
		params = append(params, NewParameter(t.nameOf(path), value))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", t.root, err)
	}
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })
	return params, nil
}

// Read returns the current value of the named parameter.
func (t *Tree) Read(name string) (string, error) {
	path := t.pathOf(name)
	value, err := t.readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return value, err
}

// Refresh re-reads the values of params and returns an updated copy.
// Parameters that can no longer be read keep their previous value.
func (t *Tree) Refresh(ctx context.Context, params []Parameter) ([]Parameter, error) {
	out := make([]Parameter, len(params))
	for i, p := range params {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = p
		value, err := t.Read(p.Name)
		if err != nil {
			continue
		}
		out[i].Value = value
	}
	return out, nil
}

func (t *Tree) readFile(path string) (string, error) {
	data, err := afero.ReadFile(t.fs, path)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(string(data)), " "), nil
}

func (t *Tree) nameOf(path string) string {
	rel, err := filepath.Rel(t.root, path)
	if err != nil {
		rel = path
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}

func (t *Tree) pathOf(name string) string {
	return filepath.Join(t.root, filepath.FromSlash(strings.ReplaceAll(name, ".", "/")))
}
