package strutil

import (
	"strings"

	"golang.org/x/text/width"
)

const (
	// DefaultWordLimit is the number of words kept by LimitWords.
	DefaultWordLimit = 10

	// DefaultWidthLimit is the display width kept by Limit.
	DefaultWidthLimit = 100

	// DefaultSuffix is appended to truncated strings.
	DefaultSuffix = "..."
)

// config holds the truncation settings shared by Limit and LimitWords.
type config struct {
	limit  int
	suffix string
}

// Option configures Limit and LimitWords.
type Option func(*config)

// WithLimit sets the maximum number of words (LimitWords) or display columns
// (Limit) to keep. Negative values are treated as zero.
func WithLimit(limit int) Option {
	return func(c *config) {
		c.limit = limit
	}
}

// WithSuffix sets the string appended to a truncated result.
// Default is DefaultSuffix.
func WithSuffix(suffix string) Option {
	return func(c *config) {
		c.suffix = suffix
	}
}

func newConfig(limit int, opts []Option) *config {
	c := &config{
		limit:  limit,
		suffix: DefaultSuffix,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.limit = max(c.limit, 0)

	return c
}

// LimitWords keeps the first words of text, where words are separated by a
// single space. If text has no more words than the limit it is returned as is,
// otherwise the kept words are joined by single spaces and the suffix is
// appended.
//
// Defaults: limit DefaultWordLimit, suffix DefaultSuffix.
//
// Example:
//
//	LimitWords("The quick brown fox", WithLimit(3)) // "The quick brown..."
func LimitWords(text string, opts ...Option) string {
	c := newConfig(DefaultWordLimit, opts)

	words := strings.Split(text, " ")
	if len(words) <= c.limit {
		return text
	}

	return strings.Join(words[:c.limit], " ") + c.suffix
}

// Limit truncates text to a display width. Wide and fullwidth East Asian
// characters occupy two columns, every other character one (see Width).
// If text fits within the limit it is returned as is, otherwise the longest
// prefix that fits is kept, trailing whitespace is trimmed and the suffix is
// appended. The suffix does not count towards the limit.
//
// Defaults: limit DefaultWidthLimit, suffix DefaultSuffix.
//
// Example:
//
//	Limit("The quick brown fox", WithLimit(3)) // "The..."
//	Limit("日本語", WithLimit(5))                // "日本..."
func Limit(text string, opts ...Option) string {
	c := newConfig(DefaultWidthLimit, opts)

	if Width(text) <= c.limit {
		return text
	}

	cols, end := 0, len(text)
	for i, r := range text {
		w := runeWidth(r)
		if cols+w > c.limit {
			end = i
			break
		}
		cols += w
	}

	return strings.TrimRight(text[:end], whitespace) + c.suffix
}

// Width returns the display width of text in columns, using the Unicode East
// Asian Width property: Wide (W) and Fullwidth (F) runes count as two, all
// other runes count as one.
func Width(text string) int {
	n := 0
	for _, r := range text {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
