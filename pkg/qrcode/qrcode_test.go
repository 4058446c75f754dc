package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/qrcode"
)

func TestPNG(t *testing.T) {
	t.Parallel()

	data, err := qrcode.PNG("https://dealer.example.com/offers", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	_, err = qrcode.PNG("   ", 128)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestDataURL(t *testing.T) {
	t.Parallel()

	url, err := qrcode.DataURL("https://dealer.example.com", 0)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
}
