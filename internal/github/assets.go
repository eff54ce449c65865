package github

import "strings"

// checksumSuffixes marks assets that are checksum companions rather than
// installable artifacts. The bare "sum" suffix catches the sha256sum /
// md5sum style of naming.
var checksumSuffixes = []string{".sha256", ".sha512", "sum"}

// FilterChecksums drops checksum-companion assets, preserving the order of
// everything else. The returned slice is always a fresh allocation.
func FilterChecksums(assets []Asset) []Asset {
	filtered := make([]Asset, 0, len(assets))
	for _, asset := range assets {
		if isChecksumName(asset.Name) {
			continue
		}
		filtered = append(filtered, asset)
	}
	return filtered
}

func isChecksumName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range checksumSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
