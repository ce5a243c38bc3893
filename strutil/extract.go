package strutil

import "strings"

// whitespace is the set of bytes trimmed by Before, After and Limit: space,
// tab, line feed, carriage return, NUL and vertical tab. Unicode spaces such
// as U+00A0 are kept.
const whitespace = " \t\n\r\x00\x0B"

// Before returns the part of haystack that precedes the first occurrence of
// search, with trailing whitespace removed.
//
// If search is empty or does not occur in haystack, haystack is returned
// unchanged.
func Before(search, haystack string) string {
	if search == "" {
		return haystack
	}

	before, _, found := strings.Cut(haystack, search)
	if !found {
		return haystack
	}

	return strings.TrimRight(before, whitespace)
}

// After returns the part of haystack that follows the first occurrence of
// search, with leading whitespace removed.
//
// If search is empty, haystack is returned unchanged. If search does not occur
// in haystack, the result is the empty string.
func After(search, haystack string) string {
	if search == "" {
		return haystack
	}

	_, after, found := strings.Cut(haystack, search)
	if !found {
		return ""
	}

	return strings.TrimLeft(after, whitespace)
}
