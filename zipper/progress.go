package zipper

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/taigrr/colorhash"
)

// Reporter receives progress events from a run. Each directory reports two
// sequential streams, files then subdirectories: a phase call with the item
// count followed by one Tick per item. The composer calls these
// synchronously; implementations render however they like but must not
// block.
type Reporter interface {
	RunStart(root string, maxDepth int, keep bool, token string)
	DirStart(path string, depth int)
	DirSkipped(path string, depth, maxDepth int)
	FilesPhase(dir string, total int)
	SubdirsPhase(dir string, total int)
	Tick()
	Created(a Artifact)
	Appended(entryName, parentPath string)
	Removed(path string)
	Done(created int)
}

// NopReporter discards all progress events. Used for quiet mode.
type NopReporter struct{}

func (NopReporter) RunStart(string, int, bool, string) {}
func (NopReporter) DirStart(string, int)               {}
func (NopReporter) DirSkipped(string, int, int)        {}
func (NopReporter) FilesPhase(string, int)             {}
func (NopReporter) SubdirsPhase(string, int)           {}
func (NopReporter) Tick()                              {}
func (NopReporter) Created(Artifact)                   {}
func (NopReporter) Appended(string, string)            {}
func (NopReporter) Removed(string)                     {}
func (NopReporter) Done(int)                           {}

// VerboseReporter prints one human-readable line per operation and a final
// count of containers created. The run token is colorized with a color
// derived from the token itself, so two interleaved runs are easy to tell
// apart in scrollback.
type VerboseReporter struct {
	w io.Writer
}

// NewVerboseReporter returns a VerboseReporter writing to w.
func NewVerboseReporter(w io.Writer) *VerboseReporter {
	return &VerboseReporter{w: w}
}

// tokenStyle maps a run token to a stable ANSI 256 foreground color.
func tokenStyle(token string) lipgloss.Style {
	h := int(colorhash.HashString(token))
	if h < 0 {
		h = -h
	}
	// avoid the 16 base colors, several of which are unreadable on
	// common backgrounds
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(16 + h%216)))
}

func (r *VerboseReporter) RunStart(root string, maxDepth int, keep bool, token string) {
	fmt.Fprintf(r.w, "Starting matryoshka run on %s\n", root)
	if maxDepth < 0 {
		fmt.Fprintln(r.w, "Max depth: unlimited")
	} else {
		fmt.Fprintf(r.w, "Max depth: %d\n", maxDepth)
	}
	fmt.Fprintf(r.w, "Keep temporary files: %v\n", keep)
	fmt.Fprintf(r.w, "Run token: %s\n", tokenStyle(token).Render(token))
}

func (r *VerboseReporter) DirStart(path string, depth int) {
	fmt.Fprintf(r.w, "\nProcessing directory: %s (depth %d)\n", path, depth)
}

func (r *VerboseReporter) DirSkipped(path string, depth, maxDepth int) {
	fmt.Fprintf(r.w, "Skipping directory %s - max depth %d reached\n", path, maxDepth)
}

func (r *VerboseReporter) FilesPhase(dir string, total int) {
	fmt.Fprintf(r.w, "Files found: %d\n", total)
}

func (r *VerboseReporter) SubdirsPhase(dir string, total int) {
	fmt.Fprintf(r.w, "Subdirectories found: %d\n", total)
}

func (r *VerboseReporter) Tick() {}

func (r *VerboseReporter) Created(a Artifact) {
	fmt.Fprintf(r.w, "Created %s\n", a.Path)
}

func (r *VerboseReporter) Appended(entryName, parentPath string) {
	fmt.Fprintf(r.w, "Added %s to %s\n", entryName, parentPath)
}

func (r *VerboseReporter) Removed(path string) {
	fmt.Fprintf(r.w, "Removed temporary file: %s\n", path)
}

func (r *VerboseReporter) Done(created int) {
	fmt.Fprintf(r.w, "\nMatryoshka run complete. Created %d zip files.\n", created)
}
