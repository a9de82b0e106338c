package zipper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// composer carries the run-scoped knobs through the recursive walk. The
// set of created artifacts is threaded through the calls as an explicit
// accumulator rather than held here, so each directory's processing stays
// independently testable.
type composer struct {
	maxDepth int // negative means unlimited
	keep     bool
	token    string
	rep      Reporter
}

// ListChildren returns the immediate children of dir, partitioned into
// regular files and subdirectories. Files already carrying a .zip suffix
// are treated as pre-existing content and left out of the file set, and
// symlinks are skipped entirely, which also guards the walk against
// symlink cycles. Entries come back sorted by name (os.ReadDir order) so
// repeated runs produce identical entry structures.
func ListChildren(dir string) (files, subdirs []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		switch {
		case e.IsDir():
			subdirs = append(subdirs, e.Name())
		case e.Type().IsRegular() && !strings.HasSuffix(e.Name(), ".zip"):
			files = append(files, e.Name())
		}
	}
	return files, subdirs, nil
}

// processDirectory builds the container for dir and everything below it.
// It returns nil (and no error) when dir sits beyond the depth limit, in
// which case the caller must not append anything for it.
//
// Order is fixed: the directory's own container first, then every file,
// then every subdirectory, each child appended into the directory's
// container the moment it is finished.
func (c *composer) processDirectory(dir string, depth int, created *[]Artifact) (*Artifact, error) {
	if c.maxDepth >= 0 && depth > c.maxDepth {
		c.rep.DirSkipped(dir, depth, c.maxDepth)
		return nil, nil
	}
	c.rep.DirStart(dir, depth)

	// The root container is the run's durable output and never carries
	// the token.
	token := c.token
	if depth == 0 {
		token = ""
	}
	own, err := ZipDirectory(dir, "", token)
	if err != nil {
		return nil, err
	}
	own.Depth = depth
	*created = append(*created, own)
	c.rep.Created(own)

	files, subdirs, err := ListChildren(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	c.rep.FilesPhase(dir, len(files))
	for _, name := range files {
		child, err := ZipFile(filepath.Join(dir, name), "", c.token)
		if err != nil {
			return nil, err
		}
		child.Depth = depth + 1
		*created = append(*created, child)
		c.rep.Created(child)
		if err := c.consume(&own, child); err != nil {
			return nil, err
		}
		c.rep.Tick()
	}

	c.rep.SubdirsPhase(dir, len(subdirs))
	for _, name := range subdirs {
		child, err := c.processDirectory(filepath.Join(dir, name), depth+1, created)
		if err != nil {
			return nil, err
		}
		if child != nil {
			if err := c.consume(&own, *child); err != nil {
				return nil, err
			}
		}
		c.rep.Tick()
	}

	return &own, nil
}

// consume appends child into parent under its token-free name, then
// removes the child's standalone container unless intermediates are kept.
// Every non-root container is consumed exactly once, immediately after it
// is finished.
func (c *composer) consume(parent *Artifact, child Artifact) error {
	entryName := StripToken(filepath.Base(child.Path), c.token)
	if err := parent.AppendChild(child, entryName); err != nil {
		return err
	}
	c.rep.Appended(entryName, parent.Path)
	if !c.keep {
		if err := os.Remove(child.Path); err != nil {
			return fmt.Errorf("remove temporary %s: %w", child.Path, err)
		}
		c.rep.Removed(child.Path)
	}
	return nil
}
