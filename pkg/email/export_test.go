package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/email"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "spring-sale-0-apr.html", email.Filename("Spring Sale: 0% APR!"))
	assert.Equal(t, "tom-and-jerry.html", email.Filename("Tom & Jerry"))
	assert.Equal(t, "email.html", email.Filename(""))
	assert.Equal(t, "email.html", email.Filename("!!!"))
	assert.LessOrEqual(t, len(email.Filename(strings.Repeat("word ", 50))), 85)
}

func TestFileExporter_Export(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	exporter := email.NewFileExporter(dir)

	data := fullData()
	html := email.Render(data)

	path, err := exporter.Export(context.Background(), data, html)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_spring-sale.html"))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, html, string(written))

	raw, err := os.ReadFile(strings.TrimSuffix(path, ".html") + ".json")
	require.NoError(t, err)

	var meta map[string]any
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "Spring sale", meta["subject"])
	assert.Equal(t, "spring-sale.html", meta["filename"])
	assert.EqualValues(t, len(html), meta["size"])
	assert.EqualValues(t, 2, meta["offers"])
	assert.Equal(t, true, meta["has_hero"])
}

func TestFileExporter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := email.NewFileExporter(t.TempDir()).Export(ctx, email.Data{BodyContent: "Hi"}, "<html></html>")
	assert.ErrorIs(t, err, context.Canceled)
}
