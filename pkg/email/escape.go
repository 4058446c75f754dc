package email

import (
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

const lineBreak = "<br />"

// escaper applies output encoding to user supplied values.
// In raw mode values are written as is, which reproduces legacy output.
type escaper struct {
	raw bool
}

// text encodes a value placed in element content.
func (e escaper) text(s string) string {
	if e.raw {
		return s
	}
	return templ.EscapeString(s)
}

// attr encodes a value placed inside a double-quoted attribute.
func (e escaper) attr(s string) string {
	return e.text(s)
}

// multiline encodes s and converts every newline into a line break tag.
func (e escaper) multiline(s string) string {
	return strings.ReplaceAll(e.text(s), "\n", lineBreak)
}

// link sanitizes an href value. Unsafe schemes such as javascript: are
// replaced by templ's failed-sanitization URL. Merge-field placeholders pass.
func (e escaper) link(s string) string {
	if e.raw {
		return s
	}
	return e.attr(string(templ.URL(strings.TrimSpace(s))))
}

// image sanitizes an img src value. Inline image data URLs are allowed in
// addition to the schemes accepted for links.
func (e escaper) image(s string) string {
	if e.raw {
		return s
	}
	s = strings.TrimSpace(s)
	if isImageDataURL(s) {
		return e.attr(s)
	}
	return e.link(s)
}

func isImageDataURL(s string) bool {
	return len(s) > len("data:image/") && strings.EqualFold(s[:len("data:image/")], "data:image/")
}

// msoFontPattern matches characters that could break out of a CSS
// declaration or the surrounding style attribute.
var msoFontPattern = regexp.MustCompile(`[;{}<>"'\\&\x00-\x1f\x7f]`)

// msoFontName returns the first family of a CSS font stack with quotes
// stripped, as used by the Outlook-only style block.
func msoFontName(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	first = strings.Trim(strings.TrimSpace(first), `"'`)
	first = strings.TrimSpace(msoFontPattern.ReplaceAllString(first, ""))
	if first == "" {
		return "sans-serif"
	}
	return first
}
