package cmd

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewInspectCmd creates and returns the inspect subcommand for the
// matryoshka CLI. It lists the entries of a produced archive, optionally
// descending into nested archives.
func NewInspectCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "inspect ARCHIVE",
		Short: "List the entries of a produced archive",
		Long: `List the entries of a zip archive produced by pack.

With --recursive, nested .zip entries are opened in memory and their own
entries listed indented below them, down to the innermost containers.
Prints the total entry count across all levels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0], recursive)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into nested .zip entries")

	return cmd
}

func runInspect(w io.Writer, path string, recursive bool) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	total, err := listEntries(w, &r.Reader, 0, recursive)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Total entries: %d\n", total)
	return nil
}

// listEntries prints each entry of r, recursing into nested zip entries
// when asked. Nested archives are small (one file or one directory level),
// so reading them into memory is fine.
func listEntries(w io.Writer, r *zip.Reader, indent int, recursive bool) (int, error) {
	count := 0
	for _, f := range r.File {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", indent), f.Name)
		count++
		if !recursive || !strings.HasSuffix(f.Name, ".zip") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return count, fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return count, fmt.Errorf("read entry %s: %w", f.Name, err)
		}
		nested, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return count, fmt.Errorf("entry %s is not a zip archive: %w", f.Name, err)
		}
		n, err := listEntries(w, nested, indent+1, true)
		count += n
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
