package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Exporter stores a rendered document somewhere outside the process.
type Exporter interface {
	Export(ctx context.Context, data Data, html string) (string, error)
}

// FileExporter writes rendered emails as HTML files with a JSON metadata
// sidecar into a directory. The directory is created on first use.
type FileExporter struct {
	dir string
	now func() time.Time
}

// NewFileExporter creates an exporter writing into dir.
func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir, now: time.Now}
}

// exportMetadata is saved next to the HTML file.
type exportMetadata struct {
	CreatedAt  string `json:"created_at"`
	Subject    string `json:"subject"`
	Filename   string `json:"filename"`
	Size       int    `json:"size"`
	Offers     int    `json:"offers"`
	FooterCTAs int    `json:"footer_ctas"`
	HasHero    bool   `json:"has_hero"`
	HasCTA     bool   `json:"has_cta"`
}

// Export writes html to <dir>/<timestamp>_<slug>.html and returns that path.
func (e *FileExporter) Export(ctx context.Context, data Data, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create directory: %v", ErrExportFailed, err)
	}

	now := e.now()
	filename := Filename(data.Subject)
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), strings.TrimSuffix(filename, ".html"))

	htmlPath := filepath.Join(e.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("%w: failed to write HTML file: %v", ErrExportFailed, err)
	}

	meta, err := json.MarshalIndent(exportMetadata{
		CreatedAt:  now.Format(time.RFC3339),
		Subject:    data.Subject,
		Filename:   filename,
		Size:       len(html),
		Offers:     len(data.Offers),
		FooterCTAs: len(data.FooterCTAs),
		HasHero:    data.HeroImage != "",
		HasCTA:     data.HasCTA(),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal metadata: %v", ErrExportFailed, err)
	}

	if err := os.WriteFile(filepath.Join(e.dir, base+".json"), meta, 0o644); err != nil {
		return "", fmt.Errorf("%w: failed to write JSON file: %v", ErrExportFailed, err)
	}

	return htmlPath, nil
}
