package docs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/systeroid-tui/internal/sysctl"
)

const vmPage = `===============================
Documentation for /proc/sys/vm/
===============================

Intro text that belongs to no parameter.

swappiness
==========

This control is used to define the rough relative IO cost of swapping
and filesystem paging.

The default value is 60.

dirty_background_bytes & dirty_bytes
====================================

Dirty memory thresholds.

overcommit_memory:
------------------

Controls overcommit of system memory.
`

func writeDocs(t *testing.T, fsys afero.Fs, root string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, root+"/admin-guide/sysctl/vm.rst", []byte(vmPage), 0o644))
	require.NoError(t, afero.WriteFile(fsys, root+"/admin-guide/sysctl/kernel.rst", []byte("hostname\n========\n\nThe host name.\n"), 0o644))
}

func TestLoadAndLookup(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDocs(t, fsys, "/docs")

	index, err := Load(fsys, "/docs")
	require.NoError(t, err)

	swap := index.Lookup(sysctl.NewParameter("vm.swappiness", "60"))
	assert.Contains(t, swap, "rough relative IO cost")
	assert.Contains(t, swap, "The default value is 60.")
	assert.NotContains(t, swap, "Dirty memory")

	assert.Equal(t, "Dirty memory thresholds.", index.Lookup(sysctl.NewParameter("vm.dirty_bytes", "0")))
	assert.Equal(t, "Dirty memory thresholds.", index.Lookup(sysctl.NewParameter("vm.dirty_background_bytes", "0")))
	assert.Equal(t, "Controls overcommit of system memory.", index.Lookup(sysctl.NewParameter("vm.overcommit_memory", "0")))
	assert.Equal(t, "The host name.", index.Lookup(sysctl.NewParameter("kernel.hostname", "box")))
	assert.Equal(t, "", index.Lookup(sysctl.NewParameter("net.ipv4.ip_forward", "1")))
}

func TestLoadWithoutPages(t *testing.T) {
	t.Parallel()

	_, err := Load(afero.NewMemMapFs(), "/empty")
	require.ErrorIs(t, err, ErrNoDocs)
}

func TestLoadOnlyReadsKnownSectionPages(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/docs/admin-guide/sysctl/index.rst", []byte("swappiness\n==========\n\nNot a section page.\n"), 0o644))

	_, err := Load(fsys, "/docs")
	require.ErrorIs(t, err, ErrNoDocs)

	require.NoError(t, afero.WriteFile(fsys, "/docs/admin-guide/sysctl/vm.rst", []byte(vmPage), 0o644))
	index, err := Load(fsys, "/docs")
	require.NoError(t, err)
	assert.NotContains(t, index, "index/swappiness")
	assert.Contains(t, index, "vm/swappiness")
}

func TestNilIndexLookup(t *testing.T) {
	t.Parallel()

	var index Index
	assert.Equal(t, "", index.Lookup(sysctl.NewParameter("vm.swappiness", "60")))
}

func TestLocate(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	_, err := Locate(fsys, nil)
	require.ErrorIs(t, err, ErrNoDocs)

	require.NoError(t, fsys.MkdirAll("/usr/share/doc/kernel-doc-6.1/Documentation", 0o755))
	root, err := Locate(fsys, nil)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/doc/kernel-doc-6.1/Documentation", root)

	explicit := "/opt/linux/Documentation"
	_, err = Locate(fsys, &explicit)
	require.ErrorIs(t, err, ErrNoDocs)

	require.NoError(t, fsys.MkdirAll(explicit, 0o755))
	root, err = Locate(fsys, &explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, root)
}

func TestParsePageIgnoresProseTitles(t *testing.T) {
	t.Parallel()

	entries := parsePage(vmPage)
	_, ok := entries["Documentation for /proc/sys/vm/"]
	assert.False(t, ok)
	assert.Len(t, entries, 4)
}
