package file

import "errors"

var (
	ErrInvalidKey    = errors.New("invalid storage key")
	ErrEmptyFile     = errors.New("file is empty")
	ErrFileTooLarge  = errors.New("file size exceeds maximum allowed size")
	ErrNotImage      = errors.New("file is not a supported image")
	ErrFileNotFound  = errors.New("file not found")
	ErrSaveFailed    = errors.New("failed to save file")
	ErrDeleteFailed  = errors.New("failed to delete file")
	ErrInvalidConfig = errors.New("invalid storage configuration")

	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
)
