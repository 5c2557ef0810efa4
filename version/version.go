// Package version provides shared version information and a reusable
// version command, so CLIs built on this library do not duplicate the
// boilerplate.
package version

import "fmt"

// Info holds version information for a consumer CLI.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	Name      string `json:"name"`
}

// New creates an Info with development defaults. Version, BuildDate,
// and GitCommit are expected to be overridden via ldflags at build
// time:
//
//	go build -ldflags "-X main.version=1.2.3"
func New(name string) *Info {
	return &Info{
		Version:   "0.0.0-dev",
		BuildDate: "unknown",
		GitCommit: "unknown",
		Name:      name,
	}
}

// String renders the one-line human-readable form.
func (i *Info) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
