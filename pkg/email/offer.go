package email

import (
	"fmt"
	"strings"
)

// fullCardImageWidth is the image width of a top-positioned offer:
// container minus outer and card padding.
const fullCardImageWidth = containerWidth - 4*sectionPadding

// writeOffers wraps every non-empty offer card in one nested table.
// The row is omitted when no offer produces markup.
func (r *renderer) writeOffers(b *strings.Builder) {
	var cards strings.Builder
	for _, offer := range r.data.Offers {
		r.writeOffer(&cards, offer)
	}
	if cards.Len() == 0 {
		return
	}

	b.WriteString(`<tr><td><table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%">` + "\n")
	b.WriteString(cards.String())
	b.WriteString("</table></td></tr>\n")
}

// writeOffer renders one bordered card followed by a spacer row.
func (r *renderer) writeOffer(b *strings.Builder, offer Offer) {
	if offer.IsEmpty() {
		return
	}
	theme := r.opts.theme

	fmt.Fprintf(b, `<tr>
<td style="padding: %dpx; border: 1px solid %s; border-radius: 8px; background-color: %s;">
<table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%%">
`, sectionPadding, r.esc.attr(theme.CardBorder), r.esc.attr(theme.CardBackground))

	switch {
	case offer.ImageURL == "":
		b.WriteString("<tr>\n")
		r.writeOfferText(b, offer, "")
		b.WriteString("</tr>\n")
	case offer.position() == ImageTop:
		fmt.Fprintf(b, `<tr>
<td style="padding-bottom: 15px;">
<img src="%s" width="%d" alt="%s" style="display: block; width: 100%%; max-width: %dpx; height: auto; border: 0; border-radius: 8px;">
</td>
</tr>
<tr>
`, r.esc.image(offer.ImageURL), fullCardImageWidth, r.esc.attr(offer.Title), fullCardImageWidth)
		r.writeOfferText(b, offer, "")
		b.WriteString("</tr>\n")
	case offer.position() == ImageRight:
		b.WriteString("<tr>\n")
		r.writeOfferText(b, offer, "padding-right: 20px; ")
		r.writeOfferImageColumn(b, offer, "")
		b.WriteString("</tr>\n")
	default:
		b.WriteString("<tr>\n")
		r.writeOfferImageColumn(b, offer, "padding-right: 20px;")
		r.writeOfferText(b, offer, "")
		b.WriteString("</tr>\n")
	}

	b.WriteString(`</table>
</td>
</tr>
`)
	b.WriteString(spacerRow)
}

func (r *renderer) writeOfferImageColumn(b *strings.Builder, offer Offer, style string) {
	fmt.Fprintf(b, `<td width="%d" valign="top" style="%s">
<img src="%s" width="%d" alt="%s" style="display: block; width: 100%%; max-width: %dpx; height: auto; border: 0; border-radius: 8px;">
</td>
`, offerImageWidth, style, r.esc.image(offer.ImageURL), offerImageWidth, r.esc.attr(offer.Title), offerImageWidth)
}

// writeOfferText renders vehicle, title, details, button and disclaimer.
// Empty text fields are skipped.
func (r *renderer) writeOfferText(b *strings.Builder, offer Offer, style string) {
	theme := r.opts.theme

	fmt.Fprintf(b, `<td valign="top" style="%sfont-family: %s; color: %s;">`+"\n",
		style, r.font, r.esc.attr(theme.TextColor))
	if offer.Vehicle != "" {
		fmt.Fprintf(b, `<h3 style="margin: 0 0 5px 0; font-size: 16px; font-weight: bold; color: %s;">%s</h3>`+"\n",
			r.esc.attr(theme.SubheadingColor), r.esc.text(offer.Vehicle))
	}
	if offer.Title != "" {
		fmt.Fprintf(b, `<h2 style="margin: 0 0 10px 0; font-size: 20px; font-weight: bold; color: %s;">%s</h2>`+"\n",
			r.esc.attr(theme.HeadingColor), r.esc.text(offer.Title))
	}
	if offer.Details != "" {
		fmt.Fprintf(b, `<p style="margin: 0 0 15px 0; font-size: 14px; line-height: 1.6;">%s</p>`+"\n",
			r.esc.multiline(offer.Details))
	}
	if offer.HasCTA() {
		color := valueOr(offer.CTAColor, DefaultButtonColor)
		r.writeButton(b, offerButton.with(offer.CTAText, offer.CTALink, color, theme.ButtonTextColor))
		b.WriteString("\n")
	}
	if offer.Disclaimer != "" {
		fmt.Fprintf(b, `<p style="margin: 15px 0 0 0; font-size: 11px; color: %s; line-height: 1.5;">%s</p>`+"\n",
			r.esc.attr(theme.MutedColor), r.esc.multiline(offer.Disclaimer))
	}
	b.WriteString("</td>\n")
}
