package version

import "fmt"

// Version is set with ldflags at release build time.
var Version = "v0.1.0"

// GitCommit is set with ldflags at release build time.
var GitCommit = ""

func String() string {
	if GitCommit != "" {
		return fmt.Sprintf("%s (%s)", Version, GitCommit)
	}
	return Version
}
