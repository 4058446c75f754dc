// Package email renders marketing emails into self-contained HTML documents
// that survive legacy mail clients.
//
// The output uses table layout with inline CSS only. Every call-to-action is
// written twice: as a VML rounded rectangle inside an Outlook-only conditional
// comment, and as a styled anchor hidden from Outlook. Each client therefore
// shows exactly one button.
//
// # Usage
//
//	html := email.Render(email.Data{
//	    Subject:     "Spring sale",
//	    BodyContent: "Hi {{first_name}},\nour spring sale starts today.",
//	    CTAText:     "Shop now",
//	    CTALink:     "https://example.com/sale",
//	    Offers: []email.Offer{{
//	        Title:         "0% APR for 60 months",
//	        Details:       "On selected models.",
//	        ImagePosition: email.ImageTop,
//	        ImageURL:      "data:image/png;base64,...",
//	    }},
//	}, email.WithTheme(email.ResolveTheme(email.SchemeSlate, email.ButtonPill)))
//
// Render is pure and never fails. Empty optional fields omit their section:
// the hero row needs HeroImage, the primary button needs CTAText and CTALink,
// an offer card needs one of Vehicle, Title or Details, and the footer panel
// needs at least one FooterCTA.
//
// # Escaping
//
// User supplied text is HTML-escaped before newlines become <br /> tags.
// Links go through templ's URL sanitizer so javascript: and similar schemes
// never reach the document. Merge-field placeholders such as {{first_name}}
// are left intact. WithLegacyOutput turns escaping off for trusted input.
//
// # Contrast
//
// ContrastTextColor implements the W3C AERT brightness heuristic and is used
// for the body text color. It never panics on malformed colors.
//
// # Validation and export
//
// Data.Validate checks limits and color formats before rendering and returns
// validator.ValidationErrors joined with ErrInvalidData. FileExporter writes a
// rendered document and a JSON metadata sidecar to a directory.
package email
