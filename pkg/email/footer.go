package email

import (
	"fmt"
	"strings"
)

// writeFooter renders all footer buttons stacked in one bordered panel.
// A gap row separates consecutive buttons; there is none after the last.
func (r *renderer) writeFooter(b *strings.Builder) {
	if len(r.data.FooterCTAs) == 0 {
		return
	}
	theme := r.opts.theme

	fmt.Fprintf(b, `<tr>
<td style="padding: %dpx; border: 1px solid %s; border-radius: 8px; background-color: %s;">
<table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%%">
`, sectionPadding, r.esc.attr(theme.CardBorder), r.esc.attr(theme.CardBackground))

	for i, cta := range r.data.FooterCTAs {
		if i > 0 {
			fmt.Fprintf(b, `<tr><td style="font-size: %[1]dpx; line-height: %[1]dpx;">&nbsp;</td></tr>`+"\n", footerButtonGap)
		}
		b.WriteString("<tr>\n<td align=\"center\">\n")
		r.writeButton(b, footerButton.with(cta.Text, cta.Link, r.footerBackground, r.footerText))
		b.WriteString("\n</td>\n</tr>\n")
	}

	b.WriteString(`</table>
</td>
</tr>
`)
	b.WriteString(spacerRow)
}
