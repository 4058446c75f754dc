package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailforge/pkg/email"
)

func TestUTM_Apply(t *testing.T) {
	t.Parallel()

	utm := email.UTM{Source: "newsletter", Medium: "email", Campaign: "spring"}

	tests := []struct {
		name string
		utm  email.UTM
		link string
		want string
	}{
		{
			name: "appends parameters",
			utm:  utm,
			link: "https://example.com/sale",
			want: "https://example.com/sale?utm_source=newsletter&utm_medium=email&utm_campaign=spring",
		},
		{
			name: "keeps existing query and parameters",
			utm:  utm,
			link: "https://example.com/sale?id=7&utm_medium=sms",
			want: "https://example.com/sale?id=7&utm_medium=sms&utm_source=newsletter&utm_campaign=spring",
		},
		{
			name: "existing query order is untouched",
			utm:  email.UTM{Source: "nl"},
			link: "https://example.com/?b=2&a=1#top",
			want: "https://example.com/?b=2&a=1&utm_source=nl#top",
		},
		{
			name: "values are escaped",
			utm:  email.UTM{Source: "news letter", Campaign: "a&b"},
			link: "https://example.com/",
			want: "https://example.com/?utm_source=news+letter&utm_campaign=a%26b",
		},
		{name: "zero value is a no-op", link: "https://example.com", want: "https://example.com"},
		{name: "empty link", utm: utm, link: "", want: ""},
		{name: "merge field", utm: utm, link: "{{unsubscribe_url}}", want: "{{unsubscribe_url}}"},
		{name: "mailto", utm: utm, link: "mailto:sales@example.com", want: "mailto:sales@example.com"},
		{name: "tel", utm: utm, link: "tel:+15550100", want: "tel:+15550100"},
		{name: "already tagged", utm: utm, link: "https://x.test/?utm_source=ads", want: "https://x.test/?utm_source=ads"},
		{name: "relative", utm: utm, link: "/offers", want: "/offers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.utm.Apply(tt.link))
		})
	}
}
