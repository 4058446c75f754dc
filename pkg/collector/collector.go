package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/mailforge/pkg/binder"
	"github.com/dmitrymomot/mailforge/pkg/email"
	"github.com/dmitrymomot/mailforge/pkg/file"
	"github.com/dmitrymomot/mailforge/pkg/qrcode"
	"github.com/dmitrymomot/mailforge/pkg/sanitizer"
	"github.com/dmitrymomot/mailforge/pkg/validator"
)

// Config is loaded from the environment with pkg/config.
type Config struct {
	MaxImageBytes int64 `env:"COLLECTOR_MAX_IMAGE_BYTES" envDefault:"5242880"`
	QRCodeSize    int   `env:"COLLECTOR_QR_CODE_SIZE" envDefault:"240"`
	// QRCode adds a QR code of the CTA link to every email, not only to
	// requests that ask for it.
	QRCode bool `env:"COLLECTOR_QR_CODE"`
}

// Request holds the fixed fields of the builder form. Offers and footer
// buttons use numbered names and are read from the parsed form directly.
type Request struct {
	Subject               string                `form:"subject"`
	Body                  string                `form:"email-body"`
	BodyBackgroundColor   string                `form:"body_bg_color"`
	CTAText               string                `form:"cta"`
	CTALink               string                `form:"cta_link"`
	CTAColor              string                `form:"cta_color"`
	CTAQRCode             bool                  `form:"cta_qr"`
	Disclaimer            string                `form:"disclaimer"`
	FontFamily            string                `form:"font_family"`
	FooterBackgroundColor string                `form:"footer_bg_color"`
	FooterTextColor       string                `form:"footer_text_color"`
	Photo                 *multipart.FileHeader `file:"photo"`
}

// Collector builds email.Data from builder form submissions.
type Collector struct {
	cfg     Config
	encoder ImageEncoder
	bind    func(*http.Request, any) error
}

type Option func(*Collector)

// WithEncoder replaces the default DataURLEncoder.
func WithEncoder(enc ImageEncoder) Option {
	return func(c *Collector) {
		if enc != nil {
			c.encoder = enc
		}
	}
}

func WithMaxImageBytes(n int64) Option {
	return func(c *Collector) { c.cfg.MaxImageBytes = n }
}

// WithQRCode always adds a QR code of size pixels for the CTA link.
func WithQRCode(size int) Option {
	return func(c *Collector) {
		c.cfg.QRCode = true
		c.cfg.QRCodeSize = size
	}
}

func New(cfg Config, opts ...Option) *Collector {
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = 5 << 20
	}
	if cfg.QRCodeSize <= 0 {
		cfg.QRCodeSize = 240
	}
	c := &Collector{cfg: cfg, encoder: DataURLEncoder{}, bind: binder.Form()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect parses a urlencoded or multipart submission into validated Data.
// Validation failures come back as validator.ValidationErrors joined with
// email.ErrInvalidData.
func (c *Collector) Collect(ctx context.Context, r *http.Request) (email.Data, error) {
	var req Request
	if err := c.bind(r, &req); err != nil {
		return email.Data{}, err
	}

	var files map[string][]*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File
	}
	return c.Build(ctx, req, r.Form, files)
}

// Build assembles Data from an already bound request.
func (c *Collector) Build(ctx context.Context, req Request, form url.Values, files map[string][]*multipart.FileHeader) (email.Data, error) {
	data := email.Data{
		Subject:               sanitizer.Text(req.Subject),
		BodyContent:           sanitizer.Multiline(req.Body),
		BodyBackgroundColor:   sanitizer.HexColor(req.BodyBackgroundColor),
		CTAText:               sanitizer.Text(req.CTAText),
		CTALink:               sanitizer.Text(req.CTALink),
		CTAColor:              sanitizer.HexColor(req.CTAColor),
		Disclaimer:            sanitizer.Multiline(req.Disclaimer),
		FontFamily:            sanitizer.Text(req.FontFamily),
		FooterBackgroundColor: sanitizer.HexColor(req.FooterBackgroundColor),
		FooterCTATextColor:    sanitizer.HexColor(req.FooterTextColor),
	}

	var uploadErrs validator.ValidationErrors

	hero, verr, err := c.image(ctx, "photo", req.Photo)
	if err != nil {
		return email.Data{}, err
	}
	data.HeroImage = hero
	uploadErrs = append(uploadErrs, verr...)

	for i := 1; i <= email.MaxOffers; i++ {
		offer := readOffer(form, i)
		if offer.IsEmpty() {
			continue
		}
		field := fmt.Sprintf("offers[%d].image", len(data.Offers))
		src, verr, err := c.image(ctx, field, firstFile(files, fmt.Sprintf("offer_image_%d", i)))
		if err != nil {
			return email.Data{}, err
		}
		offer.ImageURL = src
		uploadErrs = append(uploadErrs, verr...)
		data.Offers = append(data.Offers, offer)
	}

	for i := 1; i <= email.MaxFooterCTAs; i++ {
		cta := email.FooterCTA{
			Text: sanitizer.Text(form.Get(fmt.Sprintf("footer_cta_text_%d", i))),
			Link: sanitizer.Text(form.Get(fmt.Sprintf("footer_cta_link_%d", i))),
		}
		if cta.IsComplete() {
			data.FooterCTAs = append(data.FooterCTAs, cta)
		}
	}

	if (c.cfg.QRCode || req.CTAQRCode) && data.HasCTA() {
		qr, err := qrcode.DataURL(data.CTALink, c.cfg.QRCodeSize)
		if err != nil {
			uploadErrs = append(uploadErrs, validator.ValidationError{
				Field:   "cta_link",
				Message: "cannot be encoded as a QR code",
			})
		}
		data.CTAQRCode = qr
	}

	err = data.Validate()
	if err == nil && len(uploadErrs) == 0 {
		return data, nil
	}
	all := append(validator.ExtractValidationErrors(err), uploadErrs...)
	return email.Data{}, errors.Join(email.ErrInvalidData, all)
}

// Bind adapts Collect to handler.Bind for targets of type *email.Data.
func (c *Collector) Bind(r *http.Request, v any) error {
	target, ok := v.(*email.Data)
	if !ok {
		return ErrUnsupportedTarget
	}
	data, err := c.Collect(r.Context(), r)
	if err != nil {
		return err
	}
	*target = data
	return nil
}

func readOffer(form url.Values, i int) email.Offer {
	get := func(name string) string { return form.Get(fmt.Sprintf("offer_%s_%d", name, i)) }
	return email.Offer{
		Vehicle:       sanitizer.Text(get("vehicle")),
		Title:         sanitizer.Text(get("title")),
		Details:       sanitizer.Multiline(get("details")),
		ImagePosition: email.ImagePosition(sanitizer.Apply(get("image_position"), sanitizer.Trim, sanitizer.ToLower)),
		CTAText:       sanitizer.Text(get("cta_text")),
		CTALink:       sanitizer.Text(get("cta_link")),
		CTAColor:      sanitizer.HexColor(get("cta_color")),
		Disclaimer:    sanitizer.Multiline(get("disclaimer")),
	}
}

func firstFile(files map[string][]*multipart.FileHeader, name string) *multipart.FileHeader {
	if fhs := files[name]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// image reads and encodes one upload. Problems with the file content are
// returned as validation errors; I/O and encoder failures as errors.
func (c *Collector) image(ctx context.Context, field string, fh *multipart.FileHeader) (string, validator.ValidationErrors, error) {
	if fh == nil {
		return "", nil, nil
	}
	if fh.Size > c.cfg.MaxImageBytes {
		return "", tooLarge(field, c.cfg.MaxImageBytes), nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("%w %s: %w", ErrReadUpload, field, err)
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(io.LimitReader(f, c.cfg.MaxImageBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("%w %s: %w", ErrReadUpload, field, err)
	}
	if len(raw) == 0 {
		return "", nil, nil
	}

	contentType, err := file.ValidateImage(raw, c.cfg.MaxImageBytes)
	switch {
	case errors.Is(err, file.ErrFileTooLarge):
		return "", tooLarge(field, c.cfg.MaxImageBytes), nil
	case err != nil:
		return "", validator.ValidationErrors{{Field: field, Message: "must be a JPEG, PNG, GIF or WebP image"}}, nil
	}
	_, ext, _ := file.DetectImage(raw)

	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	src, err := c.encoder.Encode(ctx, Image{Field: field, ContentType: contentType, Ext: ext, Data: raw})
	if err != nil {
		return "", nil, err
	}
	return src, nil, nil
}

func tooLarge(field string, limit int64) validator.ValidationErrors {
	return validator.ValidationErrors{{
		Field:   field,
		Message: fmt.Sprintf("must be at most %d KB", limit>>10),
	}}
}
