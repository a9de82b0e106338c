package zipper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Verbosity selects how much progress output a run produces.
type Verbosity int

const (
	// Normal is the default progress-bar mode.
	Normal Verbosity = iota
	// Quiet produces no progress output at all.
	Quiet
	// Verbose emits a line per operation plus a final summary.
	Verbose
)

// NoDepthLimit disables the depth check; the walk descends all the way.
const NoDepthLimit = -1

// Options configures a single archiving run.
type Options struct {
	// MaxDepth limits how deep the walk descends. Depth 0 is the target
	// directory itself; directories beyond the limit are skipped without
	// producing an artifact. Negative means unlimited (NoDepthLimit).
	MaxDepth int

	// KeepIntermediate leaves every tokened container on disk instead of
	// removing each one after it is appended into its parent.
	KeepIntermediate bool

	// Verbosity picks the default Reporter when none is supplied.
	Verbosity Verbosity

	// Reporter receives progress events. When nil, one is derived from
	// Verbosity: a line-per-event reporter for Verbose, none otherwise.
	Reporter Reporter
}

// NewRunToken returns a short random identifier unique to one run, used to
// disambiguate temporary container filenames. Collision avoidance is all
// it is for; no cryptographic property is required.
func NewRunToken() string {
	return uuid.New().String()[:8]
}

// Run archives the directory tree rooted at root into nested zip
// containers, leaving a single <root>.zip next to the target directory.
//
// A missing or non-directory target returns ErrInvalidTarget with no work
// done. Any I/O failure aborts the run immediately; temporary containers
// created before the failure are left on disk.
func Run(root string, opts Options) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, root)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}

	rep := opts.Reporter
	if rep == nil {
		if opts.Verbosity == Verbose {
			rep = NewVerboseReporter(os.Stdout)
		} else {
			rep = NopReporter{}
		}
	}

	token := NewRunToken()
	rep.RunStart(root, opts.MaxDepth, opts.KeepIntermediate, token)

	c := &composer{
		maxDepth: opts.MaxDepth,
		keep:     opts.KeepIntermediate,
		token:    token,
		rep:      rep,
	}
	var created []Artifact
	if _, err := c.processDirectory(root, 0, &created); err != nil {
		return err
	}

	rep.Done(len(created))
	return nil
}
