package collector_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/binder"
	"github.com/dmitrymomot/mailforge/pkg/collector"
	"github.com/dmitrymomot/mailforge/pkg/email"
	"github.com/dmitrymomot/mailforge/pkg/file"
	"github.com/dmitrymomot/mailforge/pkg/validator"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

type upload struct {
	field    string
	filename string
	data     []byte
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, values url.Values, uploads ...upload) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, vs := range values {
		for _, v := range vs {
			require.NoError(t, w.WriteField(name, v))
		}
	}
	for _, u := range uploads {
		part, err := w.CreateFormFile(u.field, u.filename)
		require.NoError(t, err)
		_, err = part.Write(u.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/generate", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validationErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrInvalidData)
	verrs := validator.ExtractValidationErrors(err)
	require.NotEmpty(t, verrs)
	return verrs
}

func TestCollector_Collect_Fields(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"subject":           {"  Spring\nsale  "},
		"email-body":        {"Hello {{first_name}}\r\n\r\nSee you soon   "},
		"body_bg_color":     {"F0F0F0"},
		"cta":               {"Book a test drive"},
		"cta_link":          {" https://dealer.example.com/book "},
		"cta_color":         {"#FF0000"},
		"footer_bg_color":   {"#1f2937"},
		"footer_text_color": {"ffffff"},

		"offer_vehicle_1":        {"2024 Civic"},
		"offer_title_1":          {"0% APR"},
		"offer_details_1":        {"For 60 months"},
		"offer_image_position_1": {" Right "},
		"offer_cta_text_1":       {"View"},
		"offer_cta_link_1":       {"https://dealer.example.com/civic"},
		"offer_cta_color_1":      {"00aa00"},

		"offer_cta_text_2": {"Orphan button"},

		"offer_title_3": {"Lease deal"},

		"footer_cta_text_1": {"Call us"},
		"footer_cta_link_1": {"tel:5551234"},
		"footer_cta_text_2": {"No link"},
		"footer_cta_text_3": {"Visit"},
		"footer_cta_link_3": {"https://dealer.example.com"},
	}

	data, err := collector.New(collector.Config{}).Collect(context.Background(), formRequest(values))
	require.NoError(t, err)

	assert.Equal(t, "Spring sale", data.Subject)
	assert.Equal(t, "Hello {{first_name}}\n\nSee you soon", data.BodyContent)
	assert.Equal(t, "#f0f0f0", data.BodyBackgroundColor)
	assert.Equal(t, "https://dealer.example.com/book", data.CTALink)
	assert.Equal(t, "#ff0000", data.CTAColor)
	assert.Equal(t, "#ffffff", data.FooterCTATextColor)
	assert.Empty(t, data.HeroImage)
	assert.Empty(t, data.CTAQRCode)

	require.Len(t, data.Offers, 2)
	assert.Equal(t, "2024 Civic", data.Offers[0].Vehicle)
	assert.Equal(t, email.ImageRight, data.Offers[0].ImagePosition)
	assert.Equal(t, "#00aa00", data.Offers[0].CTAColor)
	assert.Equal(t, "Lease deal", data.Offers[1].Title)

	assert.Equal(t, []email.FooterCTA{
		{Text: "Call us", Link: "tel:5551234"},
		{Text: "Visit", Link: "https://dealer.example.com"},
	}, data.FooterCTAs)
}

func TestCollector_Collect_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
		field  string
	}{
		{
			name:   "missing body",
			values: url.Values{"subject": {"Hi"}},
			field:  "body_content",
		},
		{
			name:   "bad color",
			values: url.Values{"email-body": {"Hi"}, "cta_color": {"red"}},
			field:  "cta_color",
		},
		{
			name:   "unknown image position",
			values: url.Values{"email-body": {"Hi"}, "offer_title_1": {"Deal"}, "offer_image_position_1": {"bottom"}},
			field:  "offers[0].image_position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := collector.New(collector.Config{}).Collect(context.Background(), formRequest(tt.values))
			verrs := validationErrors(t, err)
			assert.True(t, verrs.Has(tt.field), "fields: %v", verrs.Fields())
			assert.Equal(t, email.Data{}, data)
		})
	}
}

func TestCollector_Collect_Images(t *testing.T) {
	t.Parallel()

	t.Run("hero image is inlined by default", func(t *testing.T) {
		t.Parallel()

		req := multipartRequest(t, url.Values{"email-body": {"Hi"}}, upload{"photo", "car.png", pngBytes})
		data, err := collector.New(collector.Config{}).Collect(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(data.HeroImage, "data:image/png;base64,"), data.HeroImage)
	})

	t.Run("non image upload", func(t *testing.T) {
		t.Parallel()

		req := multipartRequest(t, url.Values{"email-body": {"Hi"}}, upload{"photo", "notes.txt", []byte("plain text")})
		_, err := collector.New(collector.Config{}).Collect(context.Background(), req)
		verrs := validationErrors(t, err)
		assert.True(t, verrs.Has("photo"))
	})

	t.Run("oversized upload", func(t *testing.T) {
		t.Parallel()

		req := multipartRequest(t, url.Values{"email-body": {"Hi"}}, upload{"photo", "car.png", pngBytes})
		_, err := collector.New(collector.Config{}, collector.WithMaxImageBytes(8)).Collect(context.Background(), req)
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"must be at most 0 KB"}, verrs.Get("photo"))
	})

	t.Run("upload errors are merged with field errors", func(t *testing.T) {
		t.Parallel()

		req := multipartRequest(t, url.Values{"offer_title_1": {"Deal"}},
			upload{"offer_image_1", "x.txt", []byte("nope")})
		_, err := collector.New(collector.Config{}).Collect(context.Background(), req)
		verrs := validationErrors(t, err)
		assert.True(t, verrs.Has("body_content"))
		assert.True(t, verrs.Has("offers[0].image"))
	})

	t.Run("image of an empty offer is ignored", func(t *testing.T) {
		t.Parallel()

		req := multipartRequest(t, url.Values{"email-body": {"Hi"}},
			upload{"offer_image_2", "x.txt", []byte("nope")})
		data, err := collector.New(collector.Config{}).Collect(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, data.Offers)
	})
}

func TestCollector_StorageEncoder(t *testing.T) {
	t.Parallel()

	storage, err := file.NewLocalStorage(t.TempDir(), "https://cdn.example.com/images")
	require.NoError(t, err)

	c := collector.New(collector.Config{}, collector.WithEncoder(collector.NewStorageEncoder(storage)))
	req := multipartRequest(t,
		url.Values{"email-body": {"Hi"}, "offer_title_1": {"Deal"}},
		upload{"offer_image_1", "deal.png", pngBytes},
	)

	data, err := c.Collect(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, data.Offers, 1)
	assert.True(t, strings.HasPrefix(data.Offers[0].ImageURL, "https://cdn.example.com/images/"), data.Offers[0].ImageURL)
	assert.True(t, strings.HasSuffix(data.Offers[0].ImageURL, ".png"), data.Offers[0].ImageURL)
}

type failingStorage struct{}

func (failingStorage) Save(context.Context, string, string, []byte) (string, error) {
	return "", file.ErrServiceUnavailable
}

func (failingStorage) Delete(context.Context, string) error { return nil }

func TestCollector_EncoderFailure(t *testing.T) {
	t.Parallel()

	c := collector.New(collector.Config{}, collector.WithEncoder(collector.NewStorageEncoder(failingStorage{})))
	req := multipartRequest(t, url.Values{"email-body": {"Hi"}}, upload{"photo", "car.png", pngBytes})

	_, err := c.Collect(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, collector.ErrEncodeImage)
	assert.ErrorIs(t, err, file.ErrServiceUnavailable)
	assert.False(t, errors.Is(err, email.ErrInvalidData))
}

func TestCollector_QRCode(t *testing.T) {
	t.Parallel()

	base := url.Values{"email-body": {"Hi"}, "cta": {"Book"}, "cta_link": {"https://dealer.example.com"}}
	with := func(extra url.Values) url.Values {
		out := url.Values{}
		for k, v := range base {
			out[k] = v
		}
		for k, v := range extra {
			out[k] = v
		}
		return out
	}

	tests := []struct {
		name   string
		opts   []collector.Option
		values url.Values
		want   bool
	}{
		{name: "not requested", values: base, want: false},
		{name: "requested by form", values: with(url.Values{"cta_qr": {"true"}}), want: true},
		{name: "enabled for all", opts: []collector.Option{collector.WithQRCode(128)}, values: base, want: true},
		{
			name:   "no link",
			opts:   []collector.Option{collector.WithQRCode(128)},
			values: with(url.Values{"cta_link": {""}}),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := collector.New(collector.Config{}, tt.opts...).Collect(context.Background(), formRequest(tt.values))
			require.NoError(t, err)
			if tt.want {
				assert.True(t, strings.HasPrefix(data.CTAQRCode, "data:image/png;base64,"))
			} else {
				assert.Empty(t, data.CTAQRCode)
			}
		})
	}
}

func TestCollector_Bind(t *testing.T) {
	t.Parallel()

	c := collector.New(collector.Config{})

	t.Run("fills email data", func(t *testing.T) {
		t.Parallel()

		var data email.Data
		require.NoError(t, c.Bind(formRequest(url.Values{"email-body": {"Hi"}}), &data))
		assert.Equal(t, "Hi", data.BodyContent)
	})

	t.Run("rejects other targets", func(t *testing.T) {
		t.Parallel()

		var target struct{ Name string }
		assert.ErrorIs(t, c.Bind(formRequest(url.Values{}), &target), collector.ErrUnsupportedTarget)
	})

	t.Run("rejects json bodies", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		var data email.Data
		assert.ErrorIs(t, c.Bind(req, &data), binder.ErrUnsupportedMediaType)
	})
}
