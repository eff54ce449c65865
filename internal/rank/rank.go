// Package rank orders release asset names by how well they match a set of
// platform keywords.
//
// Ranking is a pure function: it never drops or duplicates entries, it only
// produces a permutation of the input indices. Callers keep the original
// slice and index into it through the returned order.
package rank

import (
	"sort"
	"strings"
)

// Rank scores each name against the keyword sets and returns the input
// indices ordered best match first.
//
// A name's weight is the number of negative keywords it contains minus the
// number of positive keywords it contains, compared case-insensitively by
// substring. Lower weight wins. Ties keep their input order: release assets
// arrive from the API in a meaningful default order, so the sort must be
// stable.
func Rank(names []string, positive, negative []string) []int {
	weights := make([]int, len(names))
	for i, name := range names {
		weights[i] = weigh(name, positive, negative)
	}

	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] < weights[order[b]]
	})

	return order
}

// weigh computes the net keyword score for a single name.
// Substring containment is deliberate: "x86_64" should also hit
// "x86_64_v2", and ".exe" anywhere in the name is a signal.
func weigh(name string, positive, negative []string) int {
	lower := strings.ToLower(name)

	weight := 0
	for _, kw := range negative {
		if strings.Contains(lower, strings.ToLower(kw)) {
			weight++
		}
	}
	for _, kw := range positive {
		if strings.Contains(lower, strings.ToLower(kw)) {
			weight--
		}
	}
	return weight
}
