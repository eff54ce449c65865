package archive

import (
	"fmt"
	"os"
)

// rawStream handles single-member compressed files (.gz or .bz2 without a
// .tar suffix). The payload is anonymous: there is no listing, and the one
// implicit entry's name comes from the filename with the compression suffix
// stripped (see ImplicitEntryName).
type rawStream struct {
	path       string
	decompress decompressFunc
}

func (s *rawStream) List() ([]Entry, bool, error) {
	return nil, false, nil
}

// Extract decompresses the payload to dest. The name argument is ignored;
// raw streams have exactly one member. The format carries no mode bits, so
// the output is always written 0755.
func (s *rawStream) Extract(_, dest string) error {
	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	src, err := s.decompress(file)
	if err != nil {
		return fmt.Errorf("open compressed stream: %w", err)
	}

	return writeFile(src, dest, 0755)
}
