// Package cmd holds the build metadata of the minnote binary.
//
// Release builds set these with:
//
//	-ldflags "-X github.com/thoreinstein/minnote/cmd.Version=v1.2.3 ..."
package cmd

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
