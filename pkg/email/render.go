package email

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	containerWidth  = 600
	sectionPadding  = 20
	offerImageWidth = 240
	footerButtonGap = 12

	spacerRow = `<tr><td style="font-size: 20px; line-height: 20px;">&nbsp;</td></tr>` + "\n"
)

// renderer carries the resolved settings of one Render call.
type renderer struct {
	data Data
	opts options
	esc  escaper

	font             string
	msoFont          string
	buttonColor      string
	bodyBackground   string
	footerBackground string
	footerText       string
}

func newRenderer(data Data, opts ...Option) *renderer {
	o := newOptions(opts...)
	r := &renderer{
		data: data,
		opts: o,
		esc:  escaper{raw: o.legacy},
	}

	stack := valueOr(data.FontFamily, DefaultFontFamily)
	r.font = r.esc.attr(stack)
	r.msoFont = msoFontName(stack)
	r.buttonColor = valueOr(data.CTAColor, DefaultButtonColor)
	r.bodyBackground = valueOr(data.BodyBackgroundColor, DefaultBodyBackgroundColor)
	r.footerBackground = valueOr(data.FooterBackgroundColor, DefaultFooterBackgroundColor)
	r.footerText = valueOr(data.FooterCTATextColor, DefaultFooterCTATextColor)

	return r
}

// Render builds the complete HTML email document for data.
// It is pure and total: the same input always yields the same bytes, input is
// never modified, and empty optional fields only omit their section.
func Render(data Data, opts ...Option) string {
	r := newRenderer(data, opts...)

	var b strings.Builder
	b.Grow(8 << 10)
	r.writeDocument(&b)
	return b.String()
}

// Template returns the rendered document as a templ component.
func Template(data Data, opts ...Option) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Render(data, opts...))
		return err
	})
}

func (r *renderer) writeDocument(b *strings.Builder) {
	theme := r.opts.theme

	b.WriteString(`<!DOCTYPE html>
<html lang="en" xmlns="http://www.w3.org/1999/xhtml" xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width">
<meta http-equiv="X-UA-Compatible" content="IE=edge">
<meta name="x-apple-disable-message-reformatting">
`)
	fmt.Fprintf(b, "<title>%s</title>\n", r.esc.text(r.data.Subject))
	fmt.Fprintf(b, `<!--[if mso]>
<style>
* {
font-family: %s, sans-serif !important;
}
</style>
<![endif]-->
`, r.msoFont)
	fmt.Fprintf(b, `<style>
html, body {
margin: 0 auto !important;
padding: 0 !important;
height: 100%% !important;
width: 100%% !important;
background: %[1]s;
}
* { -ms-text-size-adjust: 100%%; -webkit-text-size-adjust: 100%%; }
table, td { mso-table-lspace: 0pt !important; mso-table-rspace: 0pt !important; }
img { -ms-interpolation-mode:bicubic; }
a { text-decoration: none; }
@media screen and (max-width: %[2]dpx) {
.email-container {
width: 100%% !important;
margin: auto !important;
}
}
</style>
</head>
`, r.esc.text(theme.PageBackground), containerWidth)

	fmt.Fprintf(b, `<body width="100%%" style="margin: 0; padding: 0 !important; mso-line-height-rule: exactly; background-color: %[1]s;">
<center style="width: 100%%; background-color: %[1]s;">
<div style="max-width: %[2]dpx; margin: 0 auto;" class="email-container">
<!--[if mso]>
<table align="center" role="presentation" cellspacing="0" cellpadding="0" border="0" width="%[2]d">
<tr>
<td>
<![endif]-->
<table align="center" role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%" style="margin: auto;">
<tr>
<td style="padding: %[3]dpx; font-family: %[4]s; font-size: 15px; line-height: 1.5; color: %[5]s;">
<table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%%">
`, r.esc.attr(theme.PageBackground), containerWidth, sectionPadding, r.font, r.esc.attr(theme.TextColor))

	r.writeHero(b)
	r.writeBody(b)
	r.writeCTA(b)
	r.writeOffers(b)
	r.writeFooter(b)
	r.writeDisclaimer(b)

	b.WriteString(`</table>
</td>
</tr>
</table>
<!--[if mso]>
</td>
</tr>
</table>
<![endif]-->
</div>
</center>
</body>
</html>
`)
}

func (r *renderer) writeHero(b *strings.Builder) {
	if r.data.HeroImage == "" {
		return
	}
	alt := valueOr(r.data.Subject, "Hero Image")
	fmt.Fprintf(b, `<tr>
<td>
<img src="%s" alt="%s" width="%d" style="width: 100%%; max-width: %dpx; height: auto; margin: auto; display: block; border-radius: 8px;">
</td>
</tr>
`, r.esc.image(r.data.HeroImage), r.esc.attr(alt), containerWidth, containerWidth)
	b.WriteString(spacerRow)
}

func (r *renderer) writeBody(b *strings.Builder) {
	fmt.Fprintf(b, `<tr>
<td style="padding: 10px 20px; background-color: %s; border-radius: 8px;">
<p style="margin: 0; color: %s;">%s</p>
</td>
</tr>
`, r.esc.attr(r.bodyBackground), ContrastTextColor(r.bodyBackground), r.esc.multiline(r.data.BodyContent))
	b.WriteString(spacerRow)
}

func (r *renderer) writeCTA(b *strings.Builder) {
	if !r.data.HasCTA() {
		return
	}
	b.WriteString(`<tr>
<td align="center">
<table role="presentation" border="0" cellpadding="0" cellspacing="0">
<tr>
<td>
`)
	r.writeButton(b, primaryButton.with(r.data.CTAText, r.data.CTALink, r.buttonColor, r.opts.theme.ButtonTextColor))
	b.WriteString(`
</td>
</tr>
</table>
</td>
</tr>
`)
	if r.data.CTAQRCode != "" {
		fmt.Fprintf(b, `<tr>
<td align="center" style="padding-top: 15px;">
<img src="%s" alt="%s" width="120" height="120" style="display: block; width: 120px; height: 120px; border: 0;">
</td>
</tr>
`, r.esc.image(r.data.CTAQRCode), r.esc.attr(r.data.CTAText))
	}
	b.WriteString(spacerRow)
}

func (r *renderer) writeDisclaimer(b *strings.Builder) {
	if r.data.Disclaimer == "" {
		return
	}
	fmt.Fprintf(b, `<tr>
<td style="text-align: center; padding: 20px; font-family: %s; font-size: 12px; line-height: 1.5; color: %s;">
%s
</td>
</tr>
`, r.font, r.esc.attr(r.opts.theme.MutedColor), r.esc.multiline(r.data.Disclaimer))
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
