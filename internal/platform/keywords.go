package platform

// osFamilies lists the recognized OS families and their asset-name tokens.
// "unknown" covers the vendor field of target triples like
// x86_64-unknown-linux-gnu. Order is fixed so derived keyword sets are
// deterministic.
var osFamilies = []struct {
	os     string
	tokens []string
}{
	{"linux", []string{"linux", "unknown"}},
	{"windows", []string{"windows", "msvc", ".exe"}},
	{"darwin", []string{"apple", "darwin", ".pkg"}},
}

// x8664Tokens are the spellings of x86-64 seen in release asset names.
var x8664Tokens = []string{"x86_64", "amd64", "x64"}

// Keywords holds the positive and negative substrings used to weight
// release asset names. Lower weight means a better platform match.
type Keywords struct {
	Positive []string
	Negative []string
}

// KeywordsFor derives ranking keywords from detected platform info.
//
// The host family's tokens score positive and the other families' tokens
// negative. An unrecognized OS falls back to the raw GOOS string as the
// sole positive OS keyword, with every known family scoring negative.
// The same pattern applies to the architecture: the x86-64 token set is
// positive on amd64 hosts and negative otherwise, in which case the raw
// architecture string becomes the positive fallback.
//
// Matching is by substring, so "x86_64" also hits "x86_64_v2". That is
// deliberate: asset naming is too inconsistent for word-boundary rules.
func KeywordsFor(info *Info) Keywords {
	var kw Keywords

	recognized := false
	for _, fam := range osFamilies {
		if fam.os == info.OS {
			recognized = true
			kw.Positive = append(kw.Positive, fam.tokens...)
		} else {
			kw.Negative = append(kw.Negative, fam.tokens...)
		}
	}
	if !recognized {
		kw.Positive = append(kw.Positive, info.OS)
	}

	if info.Arch == "amd64" {
		kw.Positive = append(kw.Positive, x8664Tokens...)
	} else {
		kw.Negative = append(kw.Negative, x8664Tokens...)
		kw.Positive = append(kw.Positive, info.ArchRaw)
	}

	return kw
}
