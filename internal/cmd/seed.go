package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the matryoshka
// CLI. It generates a randomized nested directory tree of small text files
// for exercising pack.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		maxDepth   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a randomized test tree",
		Long: `Generate a nested directory tree of small text files for testing.

Files are distributed across randomly chosen directory chains up to the
given depth. Each file contains a single UUID line. Directory and file
names are short random hex strings, so repeated seeds never collide.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, maxDepth, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 4, "Maximum nesting depth of generated directories")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount, maxDepth int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d test files in %s (max depth %d)\n", fileCount, outputPath, maxDepth)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Pool of directory names so chains overlap and form a real tree
	// instead of one directory per file.
	dirPool := make([]string, 16)
	for i := range dirPool {
		dirPool[i] = randomHexName(4)
	}

	filesCreated := 0
	dirsUsed := make(map[string]bool)

	for filesCreated < fileCount {
		depthBig, _ := rand.Int(rand.Reader, big.NewInt(int64(maxDepth+1)))
		depth := int(depthBig.Int64())

		dirPath := outputPath
		for range depth {
			idx, _ := rand.Int(rand.Reader, big.NewInt(int64(len(dirPool))))
			dirPath = filepath.Join(dirPath, dirPool[idx.Int64()])
		}

		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}
		dirsUsed[dirPath] = true

		filePath := filepath.Join(dirPath, randomHexName(8)+".txt")
		if _, err := os.Stat(filePath); err == nil {
			continue
		}

		content := uuid.New().String() + "\n"
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			continue
		}
		filesCreated++

		if verbose && filesCreated%100 == 0 {
			fmt.Printf("Created %d/%d files...\n", filesCreated, fileCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d files across %d directories\n", filesCreated, len(dirsUsed))
	}
}

// randomHexName returns n random lowercase hex characters.
func randomHexName(n int) string {
	const hex = "0123456789abcdef"
	out := make([]byte, n)
	for i := range out {
		idx, _ := rand.Int(rand.Reader, big.NewInt(16))
		out[i] = hex[idx.Int64()]
	}
	return string(out)
}
