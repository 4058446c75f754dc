package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/mailforge/pkg/validator"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v in the data field. Errors are routed to JSONError.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError writes err in the error field with a status derived from it.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	r.body.Error = errorToDetail(err, &r.status)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error, status *int) *ErrorDetail {
	var rules validator.ValidationErrors
	if errors.As(err, &rules) {
		return validationDetail(ValidationErrorFrom(rules), status)
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		return validationDetail(valErr, status)
	}

	info := classifyError(err)
	*status = info.StatusCode
	code := "internal_error"
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Key
	} else if info.Key != "" {
		code = info.Key
	}
	return &ErrorDetail{Code: code, Message: info.Message}
}

func validationDetail(valErr ValidationError, status *int) *ErrorDetail {
	*status = http.StatusUnprocessableEntity
	detail := &ErrorDetail{Code: "validation_error", Message: valErr.Error()}
	if len(valErr) > 0 {
		detail.Details = make(map[string][]string, len(valErr))
		maps.Copy(detail.Details, valErr)
	}
	return detail
}
