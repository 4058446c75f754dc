package collector

import (
	"context"
	"encoding/base64"
	"errors"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailforge/pkg/file"
)

// Image is a validated upload.
type Image struct {
	Field       string
	ContentType string
	Ext         string
	Data        []byte
}

// ImageEncoder turns an upload into the src value used in the email.
type ImageEncoder interface {
	Encode(ctx context.Context, img Image) (string, error)
}

// DataURLEncoder inlines images as base64 data URLs. The document is
// self-contained, but some clients block data URLs.
type DataURLEncoder struct{}

func (DataURLEncoder) Encode(_ context.Context, img Image) (string, error) {
	return "data:" + img.ContentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data), nil
}

// StorageEncoder uploads images and references them by public URL.
type StorageEncoder struct {
	storage file.Storage
	now     func() time.Time
}

func NewStorageEncoder(storage file.Storage) *StorageEncoder {
	return &StorageEncoder{storage: storage, now: time.Now}
}

// Encode stores the image under <yyyy>/<mm>/<uuid><ext>.
func (e *StorageEncoder) Encode(ctx context.Context, img Image) (string, error) {
	key := path.Join(e.now().UTC().Format("2006/01"), uuid.NewString()+img.Ext)
	url, err := e.storage.Save(ctx, key, img.ContentType, img.Data)
	if err != nil {
		return "", errors.Join(ErrEncodeImage, err)
	}
	return url, nil
}
