package email

import (
	"net/url"
	"strings"
)

// UTM holds campaign tracking parameters appended to button links.
type UTM struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Content  string `json:"utm_content,omitempty"`
}

// IsZero reports whether no parameter is set.
func (u UTM) IsZero() bool {
	return u == UTM{}
}

// Apply returns link with the non-empty UTM parameters added.
// Empty links, merge-field placeholders, mailto: and tel: links, non-http
// URLs and links that already carry utm_source are returned unchanged.
// Parameters already present on the link are kept in their original order
// and tags are appended as utm_source, utm_medium, utm_campaign, utm_content.
func (u UTM) Apply(link string) string {
	if u.IsZero() || link == "" ||
		strings.Contains(link, "{{") ||
		strings.HasPrefix(link, "mailto:") ||
		strings.HasPrefix(link, "tel:") ||
		strings.Contains(link, "utm_source=") {
		return link
	}

	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return link
	}

	existing := parsed.Query()
	for _, p := range [...]struct{ key, value string }{
		{"utm_source", u.Source},
		{"utm_medium", u.Medium},
		{"utm_campaign", u.Campaign},
		{"utm_content", u.Content},
	} {
		if p.value == "" || existing.Has(p.key) {
			continue
		}
		pair := url.QueryEscape(p.key) + "=" + url.QueryEscape(p.value)
		if parsed.RawQuery != "" {
			parsed.RawQuery += "&"
		}
		parsed.RawQuery += pair
	}

	return parsed.String()
}
