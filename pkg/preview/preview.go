package preview

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("preview: document not found")
	ErrInvalidID   = errors.New("preview: invalid document id")
	ErrStoreFailed = errors.New("preview: store operation failed")
)

// Document is a rendered email kept for preview and download.
type Document struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Filename  string    `json:"filename"`
	HTML      string    `json:"html"`
	Offers    int       `json:"offers"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps rendered documents for a limited time.
type Store interface {
	// Save assigns an ID when doc.ID is empty and returns the stored document.
	Save(ctx context.Context, doc Document) (Document, error)
	Get(ctx context.Context, id string) (Document, error)
}

// Config is loaded from the environment with pkg/config.
type Config struct {
	TTL       time.Duration `env:"PREVIEW_TTL" envDefault:"1h"`
	Capacity  int           `env:"PREVIEW_CAPACITY" envDefault:"256"`
	KeyPrefix string        `env:"PREVIEW_KEY_PREFIX" envDefault:"mailforge:preview:"`
}

func prepare(doc Document, now time.Time) Document {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now.UTC()
	}
	return doc
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
