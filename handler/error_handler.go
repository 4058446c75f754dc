package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/mailforge/pkg/binder"
	"github.com/dmitrymomot/mailforge/pkg/logger"
	"github.com/dmitrymomot/mailforge/pkg/requestid"
	"github.com/dmitrymomot/mailforge/pkg/validator"
)

// DefaultErrorMessage is shown for server errors when no fallback is configured.
const DefaultErrorMessage = "An error occurred processing your request"

type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning" or "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for plain HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a notification patched in for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode

	// FallbackMessage replaces the message of 5xx errors.
	// Defaults to DefaultErrorMessage.
	FallbackMessage string
}

// ErrorInfo is an error reduced to what the client is shown.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Type       string
	LogLevel   slog.Level
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if cfg.FallbackMessage == "" {
		cfg.FallbackMessage = DefaultErrorMessage
	}
	return cfg
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    DefaultErrorMessage,
	}

	var (
		httpErr  HTTPError
		valErr   ValidationError
		rules    validator.ValidationErrors
		maxBytes *http.MaxBytesError
	)
	switch {
	case errors.As(err, &rules):
		info.StatusCode = http.StatusBadRequest
		info.Key = "validation_error"
		info.Message = ValidationErrorFrom(rules).Error()
	case errors.As(err, &valErr):
		info.StatusCode = http.StatusBadRequest
		info.Key = "validation_error"
		info.Message = valErr.Error()
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
		info.Message = httpErr.Key
	case errors.As(err, &maxBytes):
		info.StatusCode = ErrRequestEntityTooLarge.Code
		info.Key = ErrRequestEntityTooLarge.Key
		info.Message = ErrRequestEntityTooLarge.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Key = ErrUnsupportedMediaType.Key
		info.Message = err.Error()
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrInvalidForm):
		info.StatusCode = ErrBadRequest.Code
		info.Key = ErrBadRequest.Key
		info.Message = err.Error()
	}

	switch {
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type = "error"
		info.LogLevel = slog.LevelError
	case info.StatusCode >= http.StatusBadRequest:
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	default:
		info.Type = "info"
		info.LogLevel = slog.LevelError
	}
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast configured",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		return
	}

	toast := cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	})
	// SSE streams always answer 200; the toast carries the failure.
	resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_toast"),
		)
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return
	}

	page := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	if err := page.Render(ctx.Request().Context(), w); err != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler returns an ErrorHandler that logs the failure and answers
// with a toast for DataStar requests or an error page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx.Request().Context())
		info := classifyError(err)
		if info.StatusCode >= http.StatusInternalServerError {
			info.Message = cfg.FallbackMessage
		}
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderToast(ctx, cfg, info, requestID, log)
			return
		}
		renderPage(ctx, cfg, info, requestID, log)
	}
}
