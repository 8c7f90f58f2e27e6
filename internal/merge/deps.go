package merge

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MergeDependencies reconciles two dependency maps (package name → semver
// range string) into a new map. Names present in only one map carry over
// unchanged. For names present in both, the range whose base version is
// higher wins; equal bases prefer the incoming string. When either range
// fails to parse as semver, the incoming range wins. Inputs are never
// mutated, and merging a map with itself yields an equal map.
func MergeDependencies(existing, incoming map[string]string) map[string]string {
	out := make(map[string]string, len(existing)+len(incoming))
	for name, rng := range existing {
		out[name] = rng
	}

	for name, incRange := range incoming {
		curRange, ok := out[name]
		if !ok {
			out[name] = incRange
			continue
		}
		out[name] = pickRange(curRange, incRange)
	}

	return out
}

// pickRange chooses between an existing and an incoming range for the same
// package name.
func pickRange(existing, incoming string) string {
	if existing == incoming {
		return existing
	}

	cur, curErr := parseRangeBase(existing)
	inc, incErr := parseRangeBase(incoming)
	if curErr != nil || incErr != nil {
		// Unparsable on either side: the literal baseline is that the
		// incoming range overwrites.
		return incoming
	}

	if cur.GreaterThan(inc) {
		return existing
	}
	return incoming
}

// parseRangeBase extracts the base version from a range string such as
// "^17.0.0", "~1.2.3", ">=2.0.0" or "v3.1.0" and parses it as semver.
func parseRangeBase(rng string) (*semver.Version, error) {
	s := strings.TrimSpace(rng)
	s = strings.TrimLeft(s, "^~=<> ")
	s = strings.TrimPrefix(s, "v")
	return semver.NewVersion(s)
}
