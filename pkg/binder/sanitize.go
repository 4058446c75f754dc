package binder

import (
	"path/filepath"
	"strings"
)

// sanitizeStringValue drops NUL bytes and C0 control characters from
// decoded input. Tabs and line breaks are kept; email bodies rely on them.
func sanitizeStringValue(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if isDroppedControl(s[i]) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isDroppedControl(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDroppedControl(c byte) bool {
	return (c < 0x20 && c != '\t' && c != '\n' && c != '\r') || c == 0x7f
}

// validateBoundary checks a multipart boundary against RFC 2046:
// 1 to 70 characters from the bchars set, not ending with a space.
func validateBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 || strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, r := range boundary {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", r):
		default:
			return false
		}
	}
	return true
}

// sanitizeFilename removes path components and NUL bytes from an uploaded
// filename.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
