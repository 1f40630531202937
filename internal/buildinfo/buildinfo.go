// Package buildinfo carries program metadata. The variables are meant to be
// overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/jask/systeroid-tui/internal/buildinfo.Version=1.2.0"
package buildinfo

var (
	Name    = "systeroid-tui"
	Version = "0.1.0"
	Commit  = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Name    string
	Version string
	Commit  string
}

// Current returns the metadata the binary was built with.
func Current() Info {
	return Info{Name: Name, Version: Version, Commit: Commit}
}

// String formats the info as "<name> <version>".
func (i Info) String() string {
	return i.Name + " " + i.Version
}
