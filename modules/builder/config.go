package builder

import (
	"strings"

	"github.com/dmitrymomot/mailforge/pkg/email"
)

// Config is loaded from the environment with pkg/config.
type Config struct {
	// BasePath is the mount point used in links and form actions.
	BasePath string `env:"BUILDER_BASE_PATH"`
	Title    string `env:"BUILDER_TITLE" envDefault:"Email Builder"`

	// MaxBodyBytes bounds form submissions including uploads.
	MaxBodyBytes int64 `env:"BUILDER_MAX_BODY_BYTES" envDefault:"26214400"`
	// MaxJSONBytes bounds /api/render bodies; inline images make them large.
	MaxJSONBytes int64 `env:"BUILDER_MAX_JSON_BYTES" envDefault:"10485760"`

	// ColorScheme and ButtonStyle are the defaults for renders that do not
	// pick their own.
	ColorScheme  string `env:"BUILDER_COLOR_SCHEME" envDefault:"classic"`
	ButtonStyle  string `env:"BUILDER_BUTTON_STYLE" envDefault:"rounded"`
	LegacyOutput bool   `env:"BUILDER_LEGACY_OUTPUT"`

	UTMSource   string `env:"BUILDER_UTM_SOURCE"`
	UTMMedium   string `env:"BUILDER_UTM_MEDIUM"`
	UTMCampaign string `env:"BUILDER_UTM_CAMPAIGN"`
}

func (c Config) withDefaults() Config {
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	if c.Title == "" {
		c.Title = "Email Builder"
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 25 << 20
	}
	if c.MaxJSONBytes <= 0 {
		c.MaxJSONBytes = 10 << 20
	}
	c.ColorScheme = strings.ToLower(strings.TrimSpace(c.ColorScheme))
	c.ButtonStyle = strings.ToLower(strings.TrimSpace(c.ButtonStyle))
	if c.ColorScheme == "" {
		c.ColorScheme = email.SchemeClassic
	}
	if c.ButtonStyle == "" {
		c.ButtonStyle = email.ButtonRounded
	}
	return c
}

func (c Config) design() Design {
	return Design{ColorScheme: c.ColorScheme, ButtonStyle: c.ButtonStyle}
}

func (c Config) renderOptions(d Design) []email.Option {
	opts := []email.Option{email.WithTheme(d.theme(c.design()))}
	utm := email.UTM{Source: c.UTMSource, Medium: c.UTMMedium, Campaign: c.UTMCampaign}
	if !utm.IsZero() {
		opts = append(opts, email.WithUTM(utm))
	}
	if c.LegacyOutput {
		opts = append(opts, email.WithLegacyOutput())
	}
	return opts
}
