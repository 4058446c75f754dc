package builder

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/mailforge/pkg/email"
	"github.com/dmitrymomot/mailforge/pkg/validator"
)

// Design selects the look of a single render. Empty fields fall back to
// BUILDER_COLOR_SCHEME and BUILDER_BUTTON_STYLE.
type Design struct {
	ColorScheme string `json:"color_scheme,omitempty"`
	ButtonStyle string `json:"button_style,omitempty"`
}

func (d Design) normalize() Design {
	d.ColorScheme = strings.ToLower(strings.TrimSpace(d.ColorScheme))
	d.ButtonStyle = strings.ToLower(strings.TrimSpace(d.ButtonStyle))
	return d
}

func (d Design) validate() error {
	err := validator.Apply(
		validator.Optional(d.ColorScheme,
			validator.InListString("color_scheme", d.ColorScheme, email.ColorSchemes)),
		validator.Optional(d.ButtonStyle,
			validator.InListString("button_style", d.ButtonStyle, email.ButtonStyles)),
	)
	if err != nil {
		return errors.Join(email.ErrInvalidData, err)
	}
	return nil
}

// theme resolves d, filling empty fields from fallback.
func (d Design) theme(fallback Design) email.Theme {
	if d.ColorScheme == "" {
		d.ColorScheme = fallback.ColorScheme
	}
	if d.ButtonStyle == "" {
		d.ButtonStyle = fallback.ButtonStyle
	}
	return email.ResolveTheme(d.ColorScheme, d.ButtonStyle)
}

// renderRequest is the /api/render body: email data plus the optional
// design fields at the top level.
type renderRequest struct {
	email.Data
	Design
}
