package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
)

// DefaultMaxMemory is the part of a multipart body kept in memory (10MB);
// the rest spills to temporary files.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies.
//
// Supported struct tags:
//   - `form:"name"` binds form field "name" into string, int or bool fields
//   - `file:"name"` binds uploaded file "name" into *multipart.FileHeader
//   - `-` skips the field
//
// After binding, r.Form and r.MultipartForm stay populated so callers can
// read dynamic field names such as offer_title_1..5.
//
//	type generateRequest struct {
//		Subject string                `form:"subject"`
//		Photo   *multipart.FileHeader `file:"photo"`
//	}
//
//	handler.Wrap(generate, handler.WithBinders[handler.Context, generateRequest](binder.Form()))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasTags(v, "form", "file") {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}
		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type", ErrInvalidForm)
		}

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.Form

		case "multipart/form-data":
			if !validateBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
			files = r.MultipartForm.File

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindFormAndFiles(v, values, files)
	}
}

func bindFormAndFiles(v any, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rv, err := structValue(v, ErrInvalidForm)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		if name := tagName(fieldType, "form"); name != "" {
			if fieldValues := values[name]; len(fieldValues) > 0 {
				if err := setFieldValue(field, fieldType.Type, sanitizeStringValue(fieldValues[0])); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, fieldType.Name, err)
				}
			}
			continue
		}

		if name := tagName(fieldType, "file"); name != "" {
			if headers := files[name]; len(headers) > 0 {
				if fieldType.Type != reflect.TypeOf((*multipart.FileHeader)(nil)) {
					return fmt.Errorf("%w: field %s: file fields must be *multipart.FileHeader", ErrInvalidForm, fieldType.Name)
				}
				headers[0].Filename = sanitizeFilename(headers[0].Filename)
				field.Set(reflect.ValueOf(headers[0]))
			}
		}
	}

	return nil
}
