package email

import "strings"

// Defaults applied when the corresponding Data field is empty.
const (
	DefaultButtonColor           = "#4f46e5"
	DefaultBodyBackgroundColor   = "#ffffff"
	DefaultFontFamily            = "Arial, 'Helvetica Neue', Helvetica, sans-serif"
	DefaultFooterBackgroundColor = "#1f2937"
	DefaultFooterCTATextColor    = "#ffffff"
)

// Theme holds the design settings shared by every block of the document.
// It is passed into Render explicitly; there is no package-level mutable state.
type Theme struct {
	PageBackground  string `json:"page_background"`
	CardBackground  string `json:"card_background"`
	CardBorder      string `json:"card_border"`
	HeadingColor    string `json:"heading_color"`
	SubheadingColor string `json:"subheading_color"`
	TextColor       string `json:"text_color"`
	MutedColor      string `json:"muted_color"`
	ButtonTextColor string `json:"button_text_color"`
	ButtonRadius    int    `json:"button_radius"`
}

// Color scheme names accepted by ResolveTheme.
const (
	SchemeClassic = "classic"
	SchemeSlate   = "slate"
	SchemeSand    = "sand"
)

// Button style names accepted by ResolveTheme.
const (
	ButtonRounded = "rounded"
	ButtonSquare  = "square"
	ButtonPill    = "pill"
)

var (
	// ColorSchemes lists the accepted color scheme names.
	ColorSchemes = []string{SchemeClassic, SchemeSlate, SchemeSand}
	// ButtonStyles lists the accepted button style names.
	ButtonStyles = []string{ButtonRounded, ButtonSquare, ButtonPill}
)

var schemes = map[string]Theme{
	SchemeClassic: {
		PageBackground:  "#f1f3f5",
		CardBackground:  "#ffffff",
		CardBorder:      "#e2e8f0",
		HeadingColor:    "#1a202c",
		SubheadingColor: "#4a5568",
		TextColor:       "#333333",
		MutedColor:      "#718096",
		ButtonTextColor: "#ffffff",
	},
	SchemeSlate: {
		PageBackground:  "#e2e8f0",
		CardBackground:  "#f8fafc",
		CardBorder:      "#cbd5e1",
		HeadingColor:    "#0f172a",
		SubheadingColor: "#334155",
		TextColor:       "#1e293b",
		MutedColor:      "#64748b",
		ButtonTextColor: "#ffffff",
	},
	SchemeSand: {
		PageBackground:  "#f5f0e6",
		CardBackground:  "#fffdf8",
		CardBorder:      "#e7dcc8",
		HeadingColor:    "#3b2f1e",
		SubheadingColor: "#6b5a40",
		TextColor:       "#3b2f1e",
		MutedColor:      "#8c7b62",
		ButtonTextColor: "#ffffff",
	},
}

var buttonRadii = map[string]int{
	ButtonRounded: 5,
	ButtonSquare:  0,
	ButtonPill:    25,
}

// DefaultTheme returns the classic scheme with rounded buttons.
func DefaultTheme() Theme {
	return ResolveTheme(SchemeClassic, ButtonRounded)
}

// ResolveTheme builds a Theme from a color scheme and a button style.
// Unknown or empty names fall back to classic and rounded.
func ResolveTheme(scheme, buttonStyle string) Theme {
	t, ok := schemes[strings.ToLower(strings.TrimSpace(scheme))]
	if !ok {
		t = schemes[SchemeClassic]
	}
	radius, ok := buttonRadii[strings.ToLower(strings.TrimSpace(buttonStyle))]
	if !ok {
		radius = buttonRadii[ButtonRounded]
	}
	t.ButtonRadius = radius
	return t
}

// withDefaults fills empty theme fields from the classic scheme so a
// partially populated Theme still renders.
func (t Theme) withDefaults() Theme {
	base := schemes[SchemeClassic]
	if t.PageBackground == "" {
		t.PageBackground = base.PageBackground
	}
	if t.CardBackground == "" {
		t.CardBackground = base.CardBackground
	}
	if t.CardBorder == "" {
		t.CardBorder = base.CardBorder
	}
	if t.HeadingColor == "" {
		t.HeadingColor = base.HeadingColor
	}
	if t.SubheadingColor == "" {
		t.SubheadingColor = base.SubheadingColor
	}
	if t.TextColor == "" {
		t.TextColor = base.TextColor
	}
	if t.MutedColor == "" {
		t.MutedColor = base.MutedColor
	}
	if t.ButtonTextColor == "" {
		t.ButtonTextColor = base.ButtonTextColor
	}
	if t.ButtonRadius < 0 {
		t.ButtonRadius = 0
	}
	return t
}
