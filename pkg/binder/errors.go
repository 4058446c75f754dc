package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrInvalidForm          = errors.New("failed to parse form data")

	// ErrBinderNotApplicable tells handler.Wrap to skip a binder whose tags
	// are absent from the target struct.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
