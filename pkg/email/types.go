package email

import "strings"

// ImagePosition controls where an offer image is placed relative to its text.
type ImagePosition string

const (
	ImageLeft  ImagePosition = "left"
	ImageRight ImagePosition = "right"
	ImageTop   ImagePosition = "top"
)

// ImagePositions lists the accepted image positions.
var ImagePositions = []string{string(ImageLeft), string(ImageRight), string(ImageTop)}

const (
	// MaxOffers is the maximum number of offer blocks in one email.
	MaxOffers = 5
	// MaxFooterCTAs is the maximum number of footer buttons in one email.
	MaxFooterCTAs = 3
)

// Data is everything needed to render one email document.
// Color fields are hex strings; empty values fall back to defaults at render time.
type Data struct {
	Subject               string      `json:"subject,omitempty"`
	BodyContent           string      `json:"body_content"`
	BodyBackgroundColor   string      `json:"body_background_color,omitempty"`
	HeroImage             string      `json:"hero_image,omitempty"`
	CTAText               string      `json:"cta_text,omitempty"`
	CTALink               string      `json:"cta_link,omitempty"`
	CTAColor              string      `json:"cta_color,omitempty"`
	CTAQRCode             string      `json:"cta_qr_code,omitempty"`
	Disclaimer            string      `json:"disclaimer,omitempty"`
	FontFamily            string      `json:"font_family,omitempty"`
	Offers                []Offer     `json:"offers,omitempty"`
	FooterCTAs            []FooterCTA `json:"footer_ctas,omitempty"`
	FooterBackgroundColor string      `json:"footer_background_color,omitempty"`
	FooterCTATextColor    string      `json:"footer_cta_text_color,omitempty"`
}

// HasCTA reports whether the primary call-to-action button is rendered.
func (d Data) HasCTA() bool {
	return d.CTAText != "" && d.CTALink != ""
}

// Offer is a single promotional card.
type Offer struct {
	Vehicle       string        `json:"vehicle,omitempty"`
	Title         string        `json:"title,omitempty"`
	Details       string        `json:"details,omitempty"`
	ImagePosition ImagePosition `json:"image_position,omitempty"`
	CTAText       string        `json:"cta_text,omitempty"`
	CTALink       string        `json:"cta_link,omitempty"`
	CTAColor      string        `json:"cta_color,omitempty"`
	Disclaimer    string        `json:"disclaimer,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
}

// IsEmpty reports whether the offer has none of vehicle, title or details.
// Empty offers render to nothing.
func (o Offer) IsEmpty() bool {
	return o.Vehicle == "" && o.Title == "" && o.Details == ""
}

// HasCTA reports whether the offer button is rendered.
func (o Offer) HasCTA() bool {
	return o.CTAText != "" && o.CTALink != ""
}

// position normalizes the image position; unknown values behave as left.
func (o Offer) position() ImagePosition {
	switch ImagePosition(strings.ToLower(strings.TrimSpace(string(o.ImagePosition)))) {
	case ImageRight:
		return ImageRight
	case ImageTop:
		return ImageTop
	default:
		return ImageLeft
	}
}

// FooterCTA is one full-width button in the footer panel.
type FooterCTA struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// IsComplete reports whether both text and link are set.
func (f FooterCTA) IsComplete() bool {
	return strings.TrimSpace(f.Text) != "" && strings.TrimSpace(f.Link) != ""
}
