package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"sort"
)

// tarArchive reads tar containers, optionally behind a gzip, bzip2, or xz
// decompression layer.
type tarArchive struct {
	path       string
	decompress decompressFunc // nil for plain .tar
}

// List enumerates regular-file members only. Directories, symlinks, and
// special types never make sense as an executable to install, so they are
// skipped rather than shown.
func (a *tarArchive) List() ([]Entry, bool, error) {
	var entries []Entry

	err := a.scan(func(hdr *tar.Header, _ *tar.Reader) (bool, error) {
		if hdr.Typeflag == tar.TypeReg {
			entries = append(entries, Entry{
				Name: hdr.Name,
				Size: hdr.Size,
				Mode: hdr.FileInfo().Mode(),
			})
		}
		return false, nil
	})
	if err != nil {
		return nil, true, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})
	return entries, true, nil
}

// Extract writes the named member to dest, preserving the member's own
// mode bits and forcing the three execute bits on top of them.
func (a *tarArchive) Extract(name, dest string) error {
	found := false

	err := a.scan(func(hdr *tar.Header, tr *tar.Reader) (bool, error) {
		if hdr.Name != name {
			return false, nil
		}
		if hdr.Typeflag != tar.TypeReg {
			return true, fmt.Errorf("%w: %s", ErrNotRegularFile, name)
		}

		perm := hdr.FileInfo().Mode().Perm() | 0111
		if err := writeFile(tr, dest, perm); err != nil {
			return true, err
		}
		found = true
		return true, nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("entry %q not found in archive", name)
	}
	return nil
}

// scan opens the archive, walks its members in order, and hands each header
// to fn until fn asks to stop or the archive ends. The file handle and any
// decompression layer are released on every exit path.
func (a *tarArchive) scan(fn func(hdr *tar.Header, tr *tar.Reader) (stop bool, err error)) error {
	file, err := os.Open(a.path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	var src io.Reader = file
	if a.decompress != nil {
		src, err = a.decompress(file)
		if err != nil {
			return fmt.Errorf("open compressed stream: %w", err)
		}
	}

	tr := tar.NewReader(src)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read tar header: %w", err)
		}

		stop, err := fn(hdr, tr)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}
