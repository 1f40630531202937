package sysctl

import (
	"path"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Kind identifies a top-level /proc/sys directory.
type Kind int

const (
	Unknown Kind = iota
	Abi
	Fs
	Kernel
	Net
	Sunrpc
	User
	Vm
)

var kindNames = []struct {
	kind Kind
	name string
}{
	{Abi, "abi"},
	{Fs, "fs"},
	{Kernel, "kernel"},
	{Net, "net"},
	{Sunrpc, "sunrpc"},
	{User, "user"},
	{Vm, "vm"},
}

// maxSuggestDistance bounds how far a typo may be from a known section name.
const maxSuggestDistance = 2

// Section is a sysctl section. Known sections carry their canonical
// lowercase name; Unknown sections carry whatever string they were parsed
// from, unchanged.
type Section struct {
	Kind Kind
	Name string
}

// ParseSection maps any string to a Section. It never fails: a known name
// (case-insensitive) or a dotted parameter name starting with one, such as
// "vm.swappiness", yields that section, and everything else becomes an
// Unknown section holding the raw input.
func ParseSection(s string) Section {
	lower := strings.ToLower(s)
	for _, kn := range kindNames {
		if lower == kn.name || strings.HasPrefix(lower, kn.name+".") {
			return Section{Kind: kn.kind, Name: kn.name}
		}
	}
	return Section{Kind: Unknown, Name: s}
}

// Sections returns every known section in display order.
func Sections() []Section {
	out := make([]Section, 0, len(kindNames))
	for _, kn := range kindNames {
		out = append(out, Section{Kind: kn.kind, Name: kn.name})
	}
	return out
}

func (s Section) String() string {
	return s.Name
}

// IsKnown reports whether s is one of the enumerated sections.
func (s Section) IsKnown() bool {
	return s.Kind != Unknown
}

// Contains reports whether the parameter name belongs to s. Unknown sections
// match by dotted prefix, so "net.ipv4" selects every net.ipv4.* parameter.
func (s Section) Contains(name string) bool {
	if s.Name == "" {
		return false
	}
	prefix := strings.ToLower(s.Name)
	lower := strings.ToLower(name)
	return lower == prefix || strings.HasPrefix(lower, prefix+".")
}

// Suggest returns the closest known section name for an Unknown section, or
// "" when s is known or nothing is close enough.
func (s Section) Suggest() string {
	if s.IsKnown() || s.Name == "" {
		return ""
	}
	lower := strings.ToLower(s.Name)
	best, bestDist := "", maxSuggestDistance+1
	for _, known := range Sections() {
		if d := levenshtein.ComputeDistance(lower, known.Name); d < bestDist {
			best, bestDist = known.Name, d
		}
	}
	return best
}

// DocsFile is the path of the section's page relative to the kernel
// Documentation directory. Unknown sections have none.
func (s Section) DocsFile() string {
	if !s.IsKnown() {
		return ""
	}
	return path.Join("admin-guide", "sysctl", s.Name+".rst")
}
