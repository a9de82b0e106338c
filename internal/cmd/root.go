package cmd

import (
	"github.com/matryoshka-zip/matryoshka/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the matryoshka
// CLI. It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matryoshka",
		Short: "matryoshka - nested zip archives for directory trees",
		Long: `matryoshka creates nested zip files from a directory, like a matryoshka doll.

Each folder becomes a zip file, each file inside it becomes its own zip
inside that archive, and subfolders nest the same way all the way down.
The only durable output is a single <folder>.zip next to the target.

Use subcommands to perform different operations:
  - pack: Build the nested archive for a directory tree
  - inspect: List the entries of a produced archive
  - seed: Generate randomized test trees`,
		Version: version.GetFullVersion(),
	}

	groupArchive := "archive"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	packCmd := NewPackCmd()
	inspectCmd := NewInspectCmd()
	seedCmd := NewSeedCmd()

	packCmd.GroupID = groupArchive
	inspectCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
