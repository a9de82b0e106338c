// Package cmd provides the command-line interface implementation for
// matryoshka.
//
// It uses the Cobra library for command structure and Fang for styling.
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - pack: Nested-archive construction for a directory tree
//   - inspect: Entry listing for produced archives
//   - seed: Randomized test-tree generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands are thin: all
// archiving behavior lives in the zipper package, and this layer only
// parses flags and renders progress.
package cmd
