package platform

import "strings"

// familyMap maps distribution names to their canonical family names.
// This is used to normalize variations of family strings from gopsutil.
var familyMap = map[string]string{
	"debian":  FamilyDebian,
	"ubuntu":  FamilyDebian, // gopsutil might return ubuntu as family
	"rhel":    FamilyRHEL,
	"centos":  FamilyRHEL,
	"rocky":   FamilyRHEL,
	"fedora":  FamilyFedora,
	"arch":    FamilyArch,
	"manjaro": FamilyArch,
	"alpine":  FamilyAlpine,
}

// normalizeArch folds alternate spellings of supported architectures onto
// their GOARCH names. Unrecognized values pass through unchanged so keyword
// derivation can fall back to the raw string.
func normalizeArch(arch string) string {
	switch arch {
	case "amd64", "x86_64", "x64":
		return "amd64"
	case "arm64", "aarch64":
		return "arm64"
	default:
		return arch
	}
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// mapFamily maps distribution family strings to canonical family names.
func mapFamily(family string) string {
	normalized := strings.ToLower(strings.TrimSpace(family))
	if canonical, ok := familyMap[normalized]; ok {
		return canonical
	}
	return FamilyUnknown
}
