// Package text provides greedy text reflow helpers.
//
// Fill and Wrap pack a string into lines of at most a configurable width,
// breaking preferentially at whitespace runs and hard-breaking runs of
// non-whitespace that exceed the width. Width is counted in runes by default;
// terminal-facing callers can opt into display columns with WithDisplayWidth.
package text

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/agapow/relais-dev/option"
)

// DefaultWidth is the line width used when none is configured.
const DefaultWidth = 60

// Config holds the reflow settings. Callers normally configure it through the
// With* options rather than directly.
type Config struct {
	// Width is the maximum measured width of a produced line.
	Width int

	// DisplayWidth selects terminal display columns as the counting unit
	// instead of runes.
	DisplayWidth bool
}

// WithWidth sets the maximum line width. Non-positive values fall back to
// DefaultWidth.
func WithWidth(width int) option.Option[Config] {
	return func(c *Config) {
		c.Width = width
	}
}

// WithDisplayWidth counts width in terminal display columns (wide CJK runes
// count as two) instead of runes.
func WithDisplayWidth() option.Option[Config] {
	return func(c *Config) {
		c.DisplayWidth = true
	}
}

// Fill reflows text into lines of at most the configured width and returns
// them joined with newlines, with a trailing newline after the final line.
// Empty input yields an empty string.
func Fill(text string, opts ...option.Option[Config]) string {
	lines := Wrap(text, opts...)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Wrap reflows text into lines of at most the configured width and returns
// them as a slice. Empty input yields nil.
//
// Breaks happen preferentially at whitespace runs; the run used as a break
// point is consumed, so no line starts or ends with break whitespace. A run
// of non-whitespace longer than the width is hard-broken at exactly the
// width.
func Wrap(text string, opts ...option.Option[Config]) []string {
	if text == "" {
		return nil
	}

	cfg := option.Apply(&Config{Width: DefaultWidth}, opts...)
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}

	measure := func(rune) int { return 1 }
	if cfg.DisplayWidth {
		measure = runewidth.RuneWidth
	}

	runes := []rune(text)
	var lines []string

	i := 0
	for i < len(runes) {
		// grow the window to the widest prefix that still fits
		j := i
		for w := 0; j < len(runes); j++ {
			w += measure(runes[j])
			if w > width {
				break
			}
		}
		if j == i {
			// a single rune wider than the whole line; take it anyway
			j = i + 1
		}

		if j == len(runes) {
			lines = append(lines, trimmed(runes[i:j]))
			break
		}

		if unicode.IsSpace(runes[j]) {
			// the window ends exactly at a whitespace run
			lines = append(lines, trimmed(runes[i:j]))
			i = skipSpace(runes, j)
			continue
		}

		// the window ends mid-word: back up to the last break point in it
		k := lastSpace(runes, i, j)
		if k < 0 {
			// no whitespace available, hard break at exactly the width
			lines = append(lines, string(runes[i:j]))
			i = j
			continue
		}
		lines = append(lines, trimmed(runes[i:k]))
		i = skipSpace(runes, k)
	}

	return lines
}

// trimmed renders a rune window with break whitespace stripped from both ends.
func trimmed(window []rune) string {
	return strings.TrimSpace(string(window))
}

// lastSpace returns the index of the last whitespace rune in runes[lo+1:hi),
// or -1 if the window holds none.
func lastSpace(runes []rune, lo, hi int) int {
	for k := hi - 1; k > lo; k-- {
		if unicode.IsSpace(runes[k]) {
			return k
		}
	}
	return -1
}

// skipSpace returns the index of the first non-whitespace rune at or after i.
func skipSpace(runes []rune, i int) int {
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
