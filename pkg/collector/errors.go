package collector

import "errors"

var (
	// ErrReadUpload means an uploaded file could not be read.
	ErrReadUpload = errors.New("collector: failed to read upload")
	// ErrEncodeImage means the image encoder failed to store an upload.
	ErrEncodeImage = errors.New("collector: failed to encode image")
	// ErrUnsupportedTarget is returned by Bind for targets other than *email.Data.
	ErrUnsupportedTarget = errors.New("collector: bind target must be *email.Data")
)
