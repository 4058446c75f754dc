package email

import (
	"strconv"
	"strings"
)

const (
	// DarkText is used on light backgrounds.
	DarkText = "#333333"
	// LightText is used on dark backgrounds.
	LightText = "#ffffff"

	brightnessThreshold = 125
)

// ContrastTextColor picks a readable text color for the given background
// using the W3C AERT brightness formula. Backgrounds brighter than 125 get
// DarkText, the rest get LightText. An empty background yields DarkText.
//
// The leading '#' is optional and 3-digit shorthand is expanded. Channels
// that cannot be parsed count as zero, so malformed input never panics.
func ContrastTextColor(background string) string {
	if background == "" {
		return DarkText
	}

	hex := strings.TrimPrefix(strings.TrimSpace(background), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	r := channel(hex, 0)
	g := channel(hex, 2)
	b := channel(hex, 4)

	brightness := float64(r*299+g*587+b*114) / 1000
	if brightness > brightnessThreshold {
		return DarkText
	}
	return LightText
}

func channel(hex string, offset int) int {
	if offset >= len(hex) {
		return 0
	}
	end := min(offset+2, len(hex))
	v, err := strconv.ParseUint(hex[offset:end], 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}
