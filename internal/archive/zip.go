package archive

import (
	"archive/zip"
	"fmt"
	"sort"
)

// zipArchive reads zip containers. Mode bits are recovered from the stored
// external file attributes, which are absent for archives produced on
// non-Unix systems; extraction compensates by forcing execute bits.
type zipArchive struct {
	path string
}

func (a *zipArchive) List() ([]Entry, bool, error) {
	r, err := zip.OpenReader(a.path)
	if err != nil {
		return nil, true, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	var entries []Entry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, Entry{
			Name: f.Name,
			Size: int64(f.UncompressedSize64),
			Mode: f.Mode(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})
	return entries, true, nil
}

func (a *zipArchive) Extract(name, dest string) error {
	r, err := zip.OpenReader(a.path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name || f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open entry: %w", err)
		}
		defer rc.Close()

		perm := f.Mode().Perm()
		if perm == 0 {
			perm = 0644
		}
		return writeFile(rc, dest, perm|0111)
	}

	return fmt.Errorf("entry %q not found in archive", name)
}
