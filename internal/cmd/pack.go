package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/matryoshka-zip/matryoshka/zipper"
	"github.com/spf13/cobra"
)

// NewPackCmd creates and returns the pack subcommand for the matryoshka
// CLI. It drives the recursive archiving run with various options.
func NewPackCmd() *cobra.Command {
	var (
		depth    int
		keepTemp bool
		verbose  bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "pack FOLDER",
		Short: "Build a nested zip archive for a directory tree",
		Long: `Build a nested zip archive for a directory tree.

Every file in FOLDER becomes its own zip, every subfolder becomes a zip
holding the zips of its children, and the result is a single FOLDER.zip
placed next to FOLDER. Temporary zips created along the way are removed
unless --keep-temp is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args[0], depth, keepTemp, verbose, quiet)
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", zipper.NoDepthLimit, "Maximum directory traversal depth (negative for unlimited)")
	cmd.Flags().BoolVar(&keepTemp, "keep-temp", false, "Keep temporary zip files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return cmd
}

func runPack(folder string, depth int, keepTemp, verbose, quiet bool) error {
	opts := zipper.Options{
		MaxDepth:         depth,
		KeepIntermediate: keepTemp,
	}
	switch {
	case quiet:
		opts.Verbosity = zipper.Quiet
	case verbose:
		opts.Verbosity = zipper.Verbose
	default:
		opts.Reporter = newBarReporter(os.Stdout)
	}

	err := zipper.Run(folder, opts)
	if errors.Is(err, zipper.ErrInvalidTarget) {
		// Nothing to do, not a failed run.
		if !quiet {
			fmt.Printf("Error: %s is not a valid directory\n", folder)
		}
		return nil
	}
	return err
}
