// Package sanitizer normalizes user-entered text before it is validated.
//
// Transforms are plain func(string) string values, composed with Compose:
//
//	title := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	offer.Title = title(form.Get("offer_title_1"))
package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var spaces = regexp.MustCompile(`\s+`)

// Apply runs transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns the reusable pipeline of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

// SingleLine joins lines with a space and collapses runs of whitespace.
func SingleLine(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// NormalizeNewlines converts CRLF and lone CR to LF.
func NormalizeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// RemoveControlChars drops control characters except newline, carriage
// return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// TrimLines trims trailing whitespace of every line and blank lines at both ends.
func TrimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// HexColor lowercases a color and adds the leading "#" when missing.
// Empty input stays empty.
func HexColor(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || strings.HasPrefix(s, "#") {
		return s
	}
	return "#" + s
}

// Text is the pipeline for single-line fields.
var Text = Compose(RemoveControlChars, SingleLine)

// Multiline is the pipeline for textarea fields.
var Multiline = Compose(RemoveControlChars, NormalizeNewlines, TrimLines)
