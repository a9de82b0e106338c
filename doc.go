// Package main provides the matryoshka command-line interface.
//
// matryoshka recursively archives a directory tree into nested zip
// containers: every file becomes its own zip, every directory becomes a zip
// holding the zips of its immediate children, all the way up to a single
// root archive placed next to the target directory. Temporary containers
// below the root carry a short run token so repeated or overlapping runs
// never collide; the token never leaks into the final archive.
//
// The main binary supports multiple subcommands:
//   - pack: Build the nested archive for a directory tree
//   - inspect: List the entries of a produced archive
//   - seed: Generate randomized test trees
package main
