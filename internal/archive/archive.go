// Package archive inspects downloaded release artifacts and extracts a
// single executable from them.
//
// The container format is decided once, from the filename suffix, when the
// artifact is opened. Three shapes exist behind the Archive interface: tar
// containers (plain or gzip/bzip2/xz compressed), zip containers, and raw
// single-member compressed streams (.gz/.bz2 without a .tar suffix). Each
// operation opens the underlying file itself and releases it on every exit
// path, so an Archive value holds no file handle between calls.
package archive

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

var (
	// ErrUnsupportedFormat indicates a filename suffix that matches no
	// known archive or compression scheme.
	ErrUnsupportedFormat = errors.New("unsupported archive format")

	// ErrNotRegularFile indicates the selected tar member is a
	// directory, symlink, or other special type.
	ErrNotRegularFile = errors.New("not a regular file")
)

// Entry describes one candidate member of an open archive.
type Entry struct {
	Name string      // path inside the archive
	Size int64       // uncompressed size in bytes
	Mode fs.FileMode // stored mode bits, including type bits
}

// Display renders the entry for a numbered selection list: mode rendering,
// padded human-readable size, and path.
func (e Entry) Display() string {
	return fmt.Sprintf("%s  %s  %s", e.Mode.String(), FormatSizePadded(e.Size), e.Name)
}

// Archive is a single downloaded release artifact opened for inspection.
type Archive interface {
	// List enumerates candidate entries sorted by descending size (the
	// largest file is usually the binary of interest). ok is false for
	// raw compressed streams, which carry exactly one anonymous member
	// and cannot be enumerated.
	List() (entries []Entry, ok bool, err error)

	// Extract writes exactly the bytes of the named entry to dest and
	// ensures the result carries owner, group, and other execute bits.
	// The write goes through a temporary file beside dest, so a failed
	// extraction never leaves a partial file at the final path.
	Extract(name, dest string) error
}

// Open inspects the filename suffix and returns the matching Archive
// implementation. It fails with ErrUnsupportedFormat when the suffix is not
// recognized; no file I/O happens until the first operation.
func Open(path string) (Archive, error) {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, ".tar.gz"), strings.HasSuffix(base, ".tgz"):
		return &tarArchive{path: path, decompress: gzipReader}, nil
	case strings.HasSuffix(base, ".tar.bz2"):
		return &tarArchive{path: path, decompress: bzip2Reader}, nil
	case strings.HasSuffix(base, ".tar.xz"):
		return &tarArchive{path: path, decompress: xzReader}, nil
	case strings.HasSuffix(base, ".tar"):
		return &tarArchive{path: path}, nil
	case strings.HasSuffix(base, ".zip"):
		return &zipArchive{path: path}, nil
	case strings.HasSuffix(base, ".gz"):
		return &rawStream{path: path, decompress: gzipReader}, nil
	case strings.HasSuffix(base, ".bz2"):
		return &rawStream{path: path, decompress: bzip2Reader}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, base)
	}
}

// IsSupportedName reports whether Open would accept the given filename.
func IsSupportedName(name string) bool {
	for _, suffix := range []string{".tar", ".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".gz", ".bz2"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// ImplicitEntryName derives the member name implied by a raw compressed
// stream's filename: the base name with its compression suffix stripped.
func ImplicitEntryName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// decompressFunc wraps a reader of compressed bytes. nil means the input is
// not compressed.
type decompressFunc func(io.Reader) (io.Reader, error)

func gzipReader(r io.Reader) (io.Reader, error) {
	return gzip.NewReader(r)
}

func bzip2Reader(r io.Reader) (io.Reader, error) {
	return bzip2.NewReader(r), nil
}

func xzReader(r io.Reader) (io.Reader, error) {
	return xz.NewReader(r)
}

// writeFile streams src to dest through a temporary file in the same
// directory, closing it before permissions are applied and renaming it into
// place only once everything succeeded.
func writeFile(src io.Reader, dest string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	tmpPath := dest + ".partial"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	cleanupNeeded = false
	return nil
}
