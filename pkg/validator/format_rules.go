package validator

import "regexp"

var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidHexColor accepts #rgb and #rrggbb colors, with or without the leading '#'.
func ValidHexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hexColorRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a hex color like #4f46e5",
		},
	}
}
