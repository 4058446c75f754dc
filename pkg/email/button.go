package email

import (
	"fmt"
	"math"
	"strings"
)

// button describes one call-to-action. Every button is written twice: a VML
// roundrect inside an Outlook-only conditional comment, and a styled anchor
// hidden from Outlook with mso-hide. Each client shows exactly one of them.
type button struct {
	Text       string
	Link       string
	Background string
	Color      string
	Width      int
	Height     int
	FontSize   int
	FullWidth  bool
}

// Button geometry for the three call sites.
var (
	primaryButton = button{Width: 200, Height: 50, FontSize: 16}
	offerButton   = button{Width: 150, Height: 40, FontSize: 14}
	footerButton  = button{Width: footerButtonWidth, Height: 48, FontSize: 16, FullWidth: true}
)

// footerButtonWidth is the content width of the footer panel:
// container minus outer and panel padding.
const footerButtonWidth = containerWidth - 4*sectionPadding

func (btn button) with(text, link, background, color string) button {
	btn.Text = text
	btn.Link = link
	btn.Background = background
	btn.Color = color
	return btn
}

// arcsize converts a corner radius in pixels into the VML arcsize percentage.
func arcsize(radius, height int) int {
	if height <= 0 || radius <= 0 {
		return 0
	}
	return int(math.Round(float64(radius) * 100 / float64(height)))
}

// writeButton renders the dual VML/anchor markup for btn.
func (r *renderer) writeButton(b *strings.Builder, btn button) {
	link := r.esc.link(r.opts.utm.Apply(btn.Link))
	text := r.esc.text(btn.Text)
	bg := r.esc.attr(btn.Background)
	color := r.esc.attr(btn.Color)
	radius := r.opts.theme.ButtonRadius

	anchorWidth := fmt.Sprintf("%dpx", btn.Width)
	if btn.FullWidth {
		anchorWidth = "100%"
	}

	b.WriteString("<div><!--[if mso]>\n")
	fmt.Fprintf(b,
		`<v:roundrect xmlns:v="urn:schemas-microsoft-com:vml" xmlns:w="urn:schemas-microsoft-com:office:word" href="%s" style="height:%dpx;v-text-anchor:middle;width:%dpx;" arcsize="%d%%" strokecolor="%s" fillcolor="%s">`+"\n",
		link, btn.Height, btn.Width, arcsize(radius, btn.Height), bg, bg)
	b.WriteString("<w:anchorlock/>\n")
	fmt.Fprintf(b,
		`<center style="color:%s;font-family:%s;font-size:%dpx;font-weight:bold;">%s</center>`+"\n",
		color, r.msoFont, btn.FontSize, text)
	b.WriteString("</v:roundrect>\n<![endif]-->")
	fmt.Fprintf(b,
		`<a href="%s" style="background-color:%s;border:none;border-radius:%dpx;color:%s;display:inline-block;font-family:%s;font-size:%dpx;font-weight:bold;line-height:%dpx;text-align:center;text-decoration:none;width:%s;-webkit-text-size-adjust:none;mso-hide:all;">%s</a></div>`,
		link, bg, radius, color, r.font, btn.FontSize, btn.Height, anchorWidth, text)
}
