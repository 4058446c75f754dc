package email

import "errors"

var (
	ErrInvalidData  = errors.New("email.errors.invalid_data")
	ErrExportFailed = errors.New("email.errors.export_failed")
)
