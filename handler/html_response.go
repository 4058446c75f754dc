package handler

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
)

type htmlResponse struct {
	status   int
	body     string
	filename string
}

func (h htmlResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(h.body)))
	if h.filename != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": h.filename}))
	}
	w.WriteHeader(h.status)
	if _, err := io.WriteString(w, h.body); err != nil {
		return fmt.Errorf("write html body: %w", err)
	}
	return nil
}

// HTML writes a prebuilt HTML document as is.
func HTML(status int, body string) Response {
	return htmlResponse{status: status, body: body}
}

// Attachment writes an HTML document the browser saves as filename.
func Attachment(filename, body string) Response {
	return htmlResponse{status: http.StatusOK, body: body, filename: filename}
}
