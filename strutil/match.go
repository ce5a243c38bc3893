package strutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Needle is either a single string or a list of strings to look for.
// When a list is given, a check succeeds if any of its elements matches.
// An empty list never matches.
type Needle interface {
	string | []string
}

// folder applies Unicode case folding. A folding Caser is stateless, so it
// can be shared by concurrent callers.
var folder = cases.Fold()

// Contains reports whether haystack contains needle (or any of the needles).
// The comparison is case-sensitive.
func Contains[N Needle](needle N, haystack string) bool {
	return matchAny(needles(needle), func(n string) bool {
		return strings.Contains(haystack, n)
	})
}

// ContainsIgnoreCase is like Contains but compares the Unicode case folded
// forms of needle and haystack.
func ContainsIgnoreCase[N Needle](needle N, haystack string) bool {
	hs := folder.String(haystack)

	return matchAny(needles(needle), func(n string) bool {
		return strings.Contains(hs, folder.String(n))
	})
}

// StartsWith reports whether haystack begins with needle (or any of the
// needles). The comparison is case-sensitive.
//
// An empty needle never matches, unlike strings.HasPrefix. EndsWith treats an
// empty needle the opposite way; both behaviours are kept for compatibility
// and may be aligned in a future major version.
func StartsWith[N Needle](needle N, haystack string) bool {
	return matchAny(needles(needle), func(n string) bool {
		return n != "" && strings.HasPrefix(haystack, n)
	})
}

// StartsWithIgnoreCase is the case folded variant of StartsWith.
// An empty needle never matches.
func StartsWithIgnoreCase[N Needle](needle N, haystack string) bool {
	hs := folder.String(haystack)

	return matchAny(needles(needle), func(n string) bool {
		return n != "" && strings.HasPrefix(hs, folder.String(n))
	})
}

// EndsWith reports whether haystack ends with needle (or any of the needles).
// The comparison is case-sensitive. An empty needle always matches.
func EndsWith[N Needle](needle N, haystack string) bool {
	return matchAny(needles(needle), func(n string) bool {
		return strings.HasSuffix(haystack, n)
	})
}

// EndsWithIgnoreCase is the case folded variant of EndsWith.
// An empty needle always matches.
func EndsWithIgnoreCase[N Needle](needle N, haystack string) bool {
	hs := folder.String(haystack)

	return matchAny(needles(needle), func(n string) bool {
		return strings.HasSuffix(hs, folder.String(n))
	})
}

func needles[N Needle](needle N) []string {
	switch v := any(needle).(type) {
	case string:
		return []string{v}
	case []string:
		return v
	default:
		return nil
	}
}

func matchAny(list []string, f func(string) bool) bool {
	for _, n := range list {
		if f(n) {
			return true
		}
	}
	return false
}
