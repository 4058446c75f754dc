package email

// Option configures a single Render call.
type Option func(*options)

type options struct {
	theme  Theme
	legacy bool
	utm    UTM
}

func newOptions(opts ...Option) options {
	o := options{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&o)
	}
	o.theme = o.theme.withDefaults()
	return o
}

// WithTheme sets the design settings used for page, cards and buttons.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithLegacyOutput disables output encoding of user supplied values.
// Only use it with trusted input.
func WithLegacyOutput() Option {
	return func(o *options) {
		o.legacy = true
	}
}

// WithUTM appends tracking parameters to every button link.
func WithUTM(utm UTM) Option {
	return func(o *options) {
		o.utm = utm
	}
}
