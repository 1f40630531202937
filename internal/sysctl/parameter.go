package sysctl

import "strings"

// Parameter is a single kernel tunable.
type Parameter struct {
	Name    string
	Value   string
	Section Section
}

// NewParameter builds a Parameter, deriving its section from the name.
func NewParameter(name, value string) Parameter {
	return Parameter{Name: name, Value: value, Section: ParseSection(name)}
}

// Matches reports whether the parameter name contains query, ignoring case.
// An empty query matches everything.
func (p Parameter) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

// BaseName is the last dotted component of the name.
func (p Parameter) BaseName() string {
	if i := strings.LastIndexByte(p.Name, '.'); i >= 0 {
		return p.Name[i+1:]
	}
	return p.Name
}

// Filter keeps the parameters inside section (when non-nil) whose names
// match query. The input slice is not modified.
func Filter(params []Parameter, section *Section, query string) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if section != nil && !section.Contains(p.Name) {
			continue
		}
		if !p.Matches(query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
