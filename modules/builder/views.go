package builder

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mailforge/handler"
	"github.com/dmitrymomot/mailforge/pkg/email"
	"github.com/dmitrymomot/mailforge/pkg/preview"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

var fontFamilies = []string{
	email.DefaultFontFamily,
	"Georgia, 'Times New Roman', serif",
	"Verdana, Geneva, sans-serif",
	"'Trebuchet MS', Helvetica, sans-serif",
}

const pageStyle = `body{margin:0;font-family:system-ui,sans-serif;background:#f3f4f6;color:#111827}
main{display:grid;grid-template-columns:minmax(320px,1fr) minmax(320px,1fr);gap:24px;padding:24px}
form fieldset{border:1px solid #d1d5db;border-radius:8px;margin:0 0 16px;padding:12px;background:#fff}
label{display:block;margin:8px 0 4px;font-size:14px}
input[type=text],input[type=url],textarea,select{width:100%;box-sizing:border-box;padding:6px}
img.thumb{display:block;max-width:120px;max-height:80px;margin-top:4px}
.copy-status{margin-left:8px;color:#047857}
#toast-container{position:fixed;top:16px;right:16px;z-index:10}
.toast{padding:12px 16px;border-radius:6px;margin-bottom:8px;background:#fee2e2;color:#991b1b}
.toast-warning{background:#fef3c7;color:#92400e}
.placeholder{color:#6b7280}
iframe{width:100%;height:800px;border:1px solid #d1d5db;background:#fff}
#code{width:100%;height:240px;font-family:monospace;font-size:12px}`

// component renders fn into a templ component.
func component(fn func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fn(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func (s *Service) layout(b *strings.Builder, title string, body func(b *strings.Builder)) {
	fmt.Fprintf(b, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script type="module" src="%s"></script>
<style>%s</style>
</head>
<body>
<div id="toast-container"></div>
`, esc(title), datastarScript, pageStyle)
	body(b)
	b.WriteString("</body>\n</html>\n")
}

// builderPage is the form with an output panel; doc fills the panel after a
// plain form post.
func (s *Service) builderPage(doc *preview.Document) templ.Component {
	return component(func(b *strings.Builder) {
		s.layout(b, s.cfg.Title, func(b *strings.Builder) {
			b.WriteString("<main>\n")
			s.writeForm(b)
			s.writeResult(b, doc)
			b.WriteString("</main>\n")
		})
	})
}

func (s *Service) writeForm(b *strings.Builder) {
	action := s.path("/generate")
	fmt.Fprintf(b, `<form id="builder" method="post" action="%s" enctype="multipart/form-data" data-on:submit__prevent="@post('%s', {contentType: 'form'})">
<h1>%s</h1>
<fieldset><legend>Message</legend>
`, esc(action), esc(action), esc(s.cfg.Title))
	textInput(b, "subject", "Subject", "text")
	b.WriteString(`<label for="email-body">Body</label>` + "\n")
	writeMergeFieldButtons(b, "email-body")
	b.WriteString(`<textarea id="email-body" name="email-body" rows="10" required></textarea>` + "\n")
	colorInput(b, "body_bg_color", "Body background", email.DefaultBodyBackgroundColor)
	b.WriteString(`<label for="font_family">Font</label>` + "\n" + `<select id="font_family" name="font_family">` + "\n")
	for _, f := range fontFamilies {
		fmt.Fprintf(b, `<option value="%s">%s</option>`+"\n", esc(f), esc(f))
	}
	b.WriteString("</select>\n")
	selectInput(b, "color_scheme", "Color scheme", email.ColorSchemes, s.cfg.ColorScheme)
	selectInput(b, "button_style", "Button style", email.ButtonStyles, s.cfg.ButtonStyle)
	fileInput(b, "photo", "Hero image")
	b.WriteString("</fieldset>\n")

	b.WriteString("<fieldset><legend>Call to action</legend>\n")
	textInput(b, "cta", "Button text", "text")
	textInput(b, "cta_link", "Button link", "url")
	colorInput(b, "cta_color", "Button color", email.DefaultButtonColor)
	b.WriteString(`<label><input type="checkbox" name="cta_qr" value="true"> Add a QR code for the link</label>` + "\n")
	b.WriteString("</fieldset>\n")

	b.WriteString(`<div id="offers" data-signals="{offers: 1}">` + "\n")
	for i := 1; i <= email.MaxOffers; i++ {
		n := strconv.Itoa(i)
		fmt.Fprintf(b, `<fieldset id="offer-%[1]d" data-show="$offers >= %[1]d"><legend>Offer %[1]d</legend>`+"\n", i)
		textInput(b, "offer_vehicle_"+n, "Vehicle", "text")
		textInput(b, "offer_title_"+n, "Title", "text")
		textArea(b, "offer_details_"+n, "Details", 3)
		fmt.Fprintf(b, `<label for="offer_image_position_%[1]s">Image position</label>
<select id="offer_image_position_%[1]s" name="offer_image_position_%[1]s">
`, n)
		for _, pos := range email.ImagePositions {
			fmt.Fprintf(b, `<option value="%s">%s</option>`+"\n", pos, pos)
		}
		b.WriteString("</select>\n")
		fileInput(b, "offer_image_"+n, "Image")
		textInput(b, "offer_cta_text_"+n, "Button text", "text")
		textInput(b, "offer_cta_link_"+n, "Button link", "url")
		colorInput(b, "offer_cta_color_"+n, "Button color", email.DefaultButtonColor)
		textArea(b, "offer_disclaimer_"+n, "Disclaimer", 2)
		fmt.Fprintf(b, `<button type="button" data-show="$offers == %d" data-on:click="%s">Remove offer</button>`+"\n",
			i, esc(removeOfferScript))
		b.WriteString("</fieldset>\n")
	}
	fmt.Fprintf(b, `<button type="button" data-show="$offers < %[1]d" data-on:click="$offers = Math.min($offers + 1, %[1]d)">Add offer</button>`+"\n",
		email.MaxOffers)
	b.WriteString("</div>\n")

	b.WriteString("<fieldset><legend>Footer</legend>\n")
	for i := 1; i <= email.MaxFooterCTAs; i++ {
		n := strconv.Itoa(i)
		textInput(b, "footer_cta_text_"+n, "Button "+n+" text", "text")
		textInput(b, "footer_cta_link_"+n, "Button "+n+" link", "url")
	}
	colorInput(b, "footer_bg_color", "Button background", email.DefaultFooterBackgroundColor)
	colorInput(b, "footer_text_color", "Button text color", email.DefaultFooterCTATextColor)
	textArea(b, "disclaimer", "Disclaimer", 3)
	b.WriteString("</fieldset>\n")

	b.WriteString(`<button type="submit">Generate email</button>` + "\n</form>\n")
}

func textInput(b *strings.Builder, name, label, typ string) {
	fmt.Fprintf(b, `<label for="%[1]s">%[2]s</label>
<input id="%[1]s" name="%[1]s" type="%[3]s">
`, name, esc(label), typ)
}

func textArea(b *strings.Builder, name, label string, rows int) {
	fmt.Fprintf(b, `<label for="%[1]s">%[2]s</label>
<textarea id="%[1]s" name="%[1]s" rows="%[3]d"></textarea>
`, name, esc(label), rows)
}

func colorInput(b *strings.Builder, name, label, value string) {
	fmt.Fprintf(b, `<label for="%[1]s">%[2]s</label>
<input id="%[1]s" name="%[1]s" type="color" value="%[3]s">
`, name, esc(label), esc(value))
}

func selectInput(b *strings.Builder, name, label string, options []string, selected string) {
	fmt.Fprintf(b, `<label for="%[1]s">%[2]s</label>
<select id="%[1]s" name="%[1]s">
`, name, esc(label))
	for _, o := range options {
		attr := ""
		if o == selected {
			attr = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`+"\n", esc(o), attr, esc(o))
	}
	b.WriteString("</select>\n")
}

// removeOfferScript clears the last visible offer so it is not submitted,
// then hides it.
const removeOfferScript = "const f = document.getElementById('offer-' + $offers); " +
	"f.querySelectorAll('input[type=text],input[type=url],input[type=file],textarea').forEach(i => i.value = ''); " +
	"f.querySelectorAll('img.thumb').forEach(p => { p.removeAttribute('src'); p.hidden = true }); " +
	"$offers = Math.max($offers - 1, 0)"

// previewScript shows the chosen file as a thumbnail next to the input.
const previewScript = "const p = document.getElementById(el.id + '-preview'); const f = el.files[0]; " +
	"if (f) { p.src = URL.createObjectURL(f); p.hidden = false } else { p.removeAttribute('src'); p.hidden = true }"

func fileInput(b *strings.Builder, name, label string) {
	fmt.Fprintf(b, `<label for="%[1]s">%[2]s</label>
<input id="%[1]s" name="%[1]s" type="file" accept="image/jpeg,image/png,image/gif,image/webp" data-on:change="%[3]s">
<img id="%[1]s-preview" class="thumb" alt="" hidden>
`, name, esc(label), esc(previewScript))
}

// writeMergeFieldButtons inserts a placeholder at the caret of the target
// textarea.
func writeMergeFieldButtons(b *strings.Builder, target string) {
	b.WriteString(`<div class="merge-fields">`)
	for _, f := range email.MergeFields() {
		script := fmt.Sprintf("const el = document.getElementById('%s'); el.setRangeText('%s', el.selectionStart, el.selectionEnd, 'end'); el.focus()", target, f.Value)
		fmt.Fprintf(b, `<button type="button" data-on:click="%s">%s</button>`, esc(script), esc(f.Label))
	}
	b.WriteString("</div>\n")
}

// copyScript copies the generated code and reports the outcome in
// $copyStatus.
const copyScript = "navigator.clipboard.writeText(document.getElementById('code').value)" +
	".then(() => { $copyStatus = '" + copiedMessage + "'; setTimeout(() => $copyStatus = '', 2000) })" +
	".catch(() => { $copyStatus = '" + copyFailedMessage + "' })"

const (
	copiedMessage     = "Copied!"
	copyFailedMessage = "Copy failed. Select the code and copy it manually."
)

func (s *Service) result(doc *preview.Document) templ.Component {
	return component(func(b *strings.Builder) { s.writeResult(b, doc) })
}

// writeResult renders #output: preview, code view and download controls.
func (s *Service) writeResult(b *strings.Builder, doc *preview.Document) {
	if doc == nil {
		b.WriteString(`<section id="output"><p class="placeholder">Fill in the form and press Generate to see the preview.</p></section>` + "\n")
		return
	}
	src := s.path("/renders/" + doc.ID)
	fmt.Fprintf(b, `<section id="output" data-render-id="%[1]s" data-signals="{copyStatus: ''}">
<p>%[2]s &middot; %[3]d bytes &middot; %[4]d offers</p>
<p><a href="%[5]s/download" download="%[2]s">Download HTML</a>
<button type="button" data-on:click="%[7]s">Copy HTML</button>
<span class="copy-status" role="status" data-text="$copyStatus"></span></p>
<iframe title="Email preview" src="%[5]s" sandbox=""></iframe>
<textarea id="code" readonly>%[6]s</textarea>
</section>
`, esc(doc.ID), esc(doc.Filename), len(doc.HTML), doc.Offers, esc(src), esc(doc.HTML), esc(copyScript))
}

func (s *Service) errorPage(p handler.ErrorPageParams) templ.Component {
	return component(func(b *strings.Builder) {
		s.layout(b, s.cfg.Title, func(b *strings.Builder) {
			fmt.Fprintf(b, `<main>
<section id="output">
<h1>%d</h1>
<p class="error">%s</p>
`, p.StatusCode, esc(p.Error))
			if p.RequestID != "" {
				fmt.Fprintf(b, "<p><small>Request ID: %s</small></p>\n", esc(p.RequestID))
			}
			fmt.Fprintf(b, `<p><a href="%s">Back to the builder</a></p>
</section>
</main>
`, esc(s.path("/")))
		})
	})
}

func errorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div class="toast toast-%s" role="alert">%s</div>`, esc(p.Type), esc(p.Message))
	})
}
