// Package version provides version information and build metadata for
// matryoshka.
//
// Version information comes from two sources: compile-time variables
// (Version, Commit, Date) injected via -ldflags, with a fallback to runtime
// build info from debug.ReadBuildInfo() for development builds.
package version
