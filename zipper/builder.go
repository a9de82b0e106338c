package zipper

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Artifact is a container file on disk produced for one filesystem entry.
type Artifact struct {
	Path      string // on-disk location of the container
	Source    string // the file or directory the container represents
	Depth     int    // distance from the run's root directory (root = 0)
	Temporary bool   // tokened containers are temporary; only the root survives
}

// ArtifactName returns the container filename for a filesystem entry name.
// A non-empty token is embedded before the extension to keep temporary
// containers from colliding across runs.
func ArtifactName(base, token string) string {
	if token != "" {
		return base + "_" + token + ".zip"
	}
	return base + ".zip"
}

// StripToken removes the run token from a container filename. Entry names
// inside containers are always token-free, so the retained root archive
// never exposes the token at any nesting level.
func StripToken(name, token string) string {
	if token == "" {
		return name
	}
	return strings.ReplaceAll(name, "_"+token, "")
}

// newZipWriter wraps w in a zip writer whose Deflate encoder runs at
// maximum compression.
func newZipWriter(w io.Writer) *zip.Writer {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	return zw
}

// ZipFile creates a container at outputDir/<base>[_token].zip holding
// exactly one entry: the file's bytes under its base name. Any existing
// file at the destination path is overwritten. An empty outputDir defaults
// to the file's own directory.
func ZipFile(path, outputDir, token string) (Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Artifact{}, fmt.Errorf("%w: %s", ErrExpectedFile, path)
	}
	if outputDir == "" {
		outputDir = filepath.Dir(path)
	}

	src, err := os.Open(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	dest := filepath.Join(outputDir, ArtifactName(filepath.Base(path), token))
	out, err := os.Create(dest)
	if err != nil {
		return Artifact{}, fmt.Errorf("create %s: %w", dest, err)
	}

	zw := newZipWriter(out)
	w, err := zw.Create(filepath.Base(path))
	if err == nil {
		_, err = io.Copy(w, src)
	}
	if closeErr := zw.Close(); err == nil {
		err = closeErr
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", dest, err)
	}

	return Artifact{Path: dest, Source: path, Temporary: token != ""}, nil
}

// ZipDirectory creates a new, initially empty container at
// outputDir/<base>[_token].zip. Children are appended later by the
// composer. An empty outputDir defaults to the directory's parent, which
// places the root run's output alongside the target directory.
func ZipDirectory(path, outputDir, token string) (Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return Artifact{}, fmt.Errorf("%w: %s", ErrExpectedDirectory, path)
	}
	if outputDir == "" {
		outputDir = filepath.Dir(path)
	}

	dest := filepath.Join(outputDir, ArtifactName(filepath.Base(path), token))
	out, err := os.Create(dest)
	if err != nil {
		return Artifact{}, fmt.Errorf("create %s: %w", dest, err)
	}

	zw := newZipWriter(out)
	err = zw.Close()
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", dest, err)
	}

	return Artifact{Path: dest, Source: path, Temporary: token != ""}, nil
}

// AppendChild adds the child container's file content to a's container as
// one entry named entryName. The zip central directory sits at the end of
// the file, so the archive is rewritten next to itself with the extra entry
// and renamed over the original; existing entries are copied raw without
// recompression. The container is fully closed before AppendChild returns.
func (a *Artifact) AppendChild(child Artifact, entryName string) error {
	r, err := zip.OpenReader(a.Path)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", a.Path, err)
	}
	defer r.Close()

	tmp, err := os.CreateTemp(filepath.Dir(a.Path), filepath.Base(a.Path)+".*")
	if err != nil {
		return fmt.Errorf("create append scratch for %s: %w", a.Path, err)
	}
	tmpPath := tmp.Name()

	err = func() error {
		zw := newZipWriter(tmp)
		for _, f := range r.File {
			hdr := f.FileHeader
			w, createErr := zw.CreateRaw(&hdr)
			if createErr != nil {
				return createErr
			}
			raw, rawErr := f.OpenRaw()
			if rawErr != nil {
				return rawErr
			}
			if _, copyErr := io.Copy(w, raw); copyErr != nil {
				return copyErr
			}
		}

		src, openErr := os.Open(child.Path)
		if openErr != nil {
			return openErr
		}
		defer src.Close()
		w, createErr := zw.Create(entryName)
		if createErr != nil {
			return createErr
		}
		if _, copyErr := io.Copy(w, src); copyErr != nil {
			return copyErr
		}
		return zw.Close()
	}()
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("append %s to %s: %w", entryName, a.Path, err)
	}

	if err := os.Rename(tmpPath, a.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("append %s to %s: %w", entryName, a.Path, err)
	}
	return nil
}

// CountEntries returns the number of entries in the container at path.
func CountEntries(path string) (int, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return len(r.File), nil
}

// HasEntry reports whether the container at path holds an entry with the
// given name.
func HasEntry(path, name string) (bool, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return false, err
	}
	defer r.Close()
	for _, f := range r.File {
		if f.Name == name {
			return true, nil
		}
	}
	return false, nil
}
