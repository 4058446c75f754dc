package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/handler"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.HTML(http.StatusOK, "<!DOCTYPE html>").Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "15", w.Header().Get("Content-Length"))
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "<!DOCTYPE html>", w.Body.String())
}

func TestAttachment(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Attachment("spring-sale.html", "<html></html>").Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename=spring-sale.html`, w.Header().Get("Content-Disposition"))
}
