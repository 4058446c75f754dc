package email

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/mailforge/pkg/validator"
)

const (
	maxSubjectLength = 200
	maxBodyLength    = 20000
	maxTextLength    = 2000
	maxButtonLength  = 80
)

// Validate checks limits and color formats. It returns nil or
// validator.ValidationErrors joined with ErrInvalidData. Links are not
// validated here; they are sanitized at render time.
func (d Data) Validate() error {
	rules := []validator.Rule{
		validator.RequiredString("body_content", d.BodyContent),
		validator.MaxLenString("subject", d.Subject, maxSubjectLength),
		validator.MaxLenString("body_content", d.BodyContent, maxBodyLength),
		validator.MaxLenString("cta_text", d.CTAText, maxButtonLength),
		validator.MaxLenString("disclaimer", d.Disclaimer, maxTextLength),
		validator.MaxLenString("font_family", d.FontFamily, maxButtonLength*2),
		validator.MaxLenSlice("offers", d.Offers, MaxOffers),
		validator.MaxLenSlice("footer_ctas", d.FooterCTAs, MaxFooterCTAs),
		optionalColor("body_background_color", d.BodyBackgroundColor),
		optionalColor("cta_color", d.CTAColor),
		optionalColor("footer_background_color", d.FooterBackgroundColor),
		optionalColor("footer_cta_text_color", d.FooterCTATextColor),
	}

	for i, o := range d.Offers {
		field := func(name string) string { return fmt.Sprintf("offers[%d].%s", i, name) }
		position := strings.ToLower(strings.TrimSpace(string(o.ImagePosition)))
		rules = append(rules,
			validator.MaxLenString(field("vehicle"), o.Vehicle, maxButtonLength*2),
			validator.MaxLenString(field("title"), o.Title, maxButtonLength*2),
			validator.MaxLenString(field("details"), o.Details, maxTextLength),
			validator.MaxLenString(field("cta_text"), o.CTAText, maxButtonLength),
			validator.MaxLenString(field("disclaimer"), o.Disclaimer, maxTextLength),
			validator.Optional(position,
				validator.InListString(field("image_position"), position, ImagePositions)),
			optionalColor(field("cta_color"), o.CTAColor),
		)
	}

	for i, f := range d.FooterCTAs {
		field := func(name string) string { return fmt.Sprintf("footer_ctas[%d].%s", i, name) }
		rules = append(rules,
			validator.RequiredString(field("text"), f.Text),
			validator.RequiredString(field("link"), f.Link),
			validator.MaxLenString(field("text"), f.Text, maxButtonLength),
		)
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidData, err)
	}
	return nil
}

func optionalColor(field, value string) validator.Rule {
	return validator.Optional(value, validator.ValidHexColor(field, value))
}
