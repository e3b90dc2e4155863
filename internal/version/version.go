// Package version holds build metadata injected at link time.
package version

// Version is the tool version, overridable via -ldflags.
var Version = "dev"
