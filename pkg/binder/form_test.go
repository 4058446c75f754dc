package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/binder"
)

type formRequest struct {
	Subject  string                `form:"subject"`
	Offers   int                   `form:"offers"`
	QRCode   bool                  `form:"qr_code"`
	Color    *string               `form:"cta_color"`
	Skipped  string                `form:"-"`
	Photo    *multipart.FileHeader `file:"photo"`
	internal string
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	body := url.Values{
		"subject":   {"Spring\x00 sale"},
		"offers":    {"2"},
		"qr_code":   {"on"},
		"cta_color": {"#4f46e5"},
		"Skipped":   {"nope"},
	}
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var got formRequest
	require.NoError(t, binder.Form()(req, &got))

	assert.Equal(t, "Spring sale", got.Subject)
	assert.Equal(t, 2, got.Offers)
	assert.True(t, got.QRCode)
	require.NotNil(t, got.Color)
	assert.Equal(t, "#4f46e5", *got.Color)
	assert.Empty(t, got.Skipped)
	assert.Nil(t, got.Photo)
	assert.Equal(t, "2", req.Form.Get("offers"))
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("subject", "Sale"))
	require.NoError(t, mw.WriteField("offer_title_1", "First"))
	fw, err := mw.CreateFormFile("photo", "../../etc/hero.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/generate", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var got formRequest
	require.NoError(t, binder.Form()(req, &got))

	assert.Equal(t, "Sale", got.Subject)
	require.NotNil(t, got.Photo)
	assert.Equal(t, "hero.png", got.Photo.Filename)
	assert.Equal(t, "First", req.MultipartForm.Value["offer_title_1"][0])
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		target      any
		wantErr     error
	}{
		{name: "missing content type", body: "a=b", target: &formRequest{}, wantErr: binder.ErrMissingContentType},
		{name: "json body", contentType: "application/json", body: "{}", target: &formRequest{}, wantErr: binder.ErrUnsupportedMediaType},
		{name: "bad boundary", contentType: "multipart/form-data; boundary=bad\"quote", body: "", target: &formRequest{}, wantErr: binder.ErrInvalidForm},
		{name: "bad int", contentType: "application/x-www-form-urlencoded", body: "offers=many", target: &formRequest{}, wantErr: binder.ErrInvalidForm},
		{name: "not a pointer", contentType: "application/x-www-form-urlencoded", body: "subject=x", target: formRequest{}, wantErr: binder.ErrInvalidForm},
		{name: "no tags", contentType: "application/x-www-form-urlencoded", body: "subject=x", target: &struct{ Subject string }{}, wantErr: binder.ErrBinderNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			assert.ErrorIs(t, binder.Form()(req, tt.target), tt.wantErr)
		})
	}
}
