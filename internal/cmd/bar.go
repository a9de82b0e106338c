package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matryoshka-zip/matryoshka/zipper"
)

const barWidth = 24

var (
	barFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	barLabelStyle = lipgloss.NewStyle().Faint(true)
)

type barPhase struct {
	label string
	total int
	done  int
}

// barReporter renders the normal-mode progress output: one bar per
// directory phase (files, then subdirectories), redrawn in place on each
// tick. Phases nest during recursion, so they live on a stack; a tick
// always advances the innermost unfinished phase. All other events are
// ignored.
type barReporter struct {
	w     io.Writer
	stack []barPhase
}

func newBarReporter(w io.Writer) *barReporter {
	return &barReporter{w: w}
}

func (b *barReporter) phase(dir, unit string, total int) {
	if total == 0 {
		return
	}
	b.stack = append(b.stack, barPhase{
		label: fmt.Sprintf("%s in %s", unit, filepath.Base(dir)),
		total: total,
	})
	b.draw()
}

func (b *barReporter) draw() {
	p := b.stack[len(b.stack)-1]
	filled := barWidth * p.done / p.total
	bar := barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
	fmt.Fprintf(b.w, "\r%s %s %d/%d", barLabelStyle.Render(p.label), bar, p.done, p.total)
	if p.done >= p.total {
		fmt.Fprintln(b.w)
	}
}

func (b *barReporter) RunStart(string, int, bool, string) {}
func (b *barReporter) DirStart(string, int)               {}
func (b *barReporter) DirSkipped(string, int, int)        {}

func (b *barReporter) FilesPhase(dir string, total int) {
	b.phase(dir, "files", total)
}

func (b *barReporter) SubdirsPhase(dir string, total int) {
	b.phase(dir, "subdirectories", total)
}

func (b *barReporter) Tick() {
	if len(b.stack) == 0 {
		return
	}
	p := &b.stack[len(b.stack)-1]
	p.done++
	b.draw()
	if p.done >= p.total {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *barReporter) Created(zipper.Artifact) {}
func (b *barReporter) Appended(string, string) {}
func (b *barReporter) Removed(string)          {}
func (b *barReporter) Done(int)                {}
