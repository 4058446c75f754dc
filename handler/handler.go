package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/mailforge/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
// C must implement Context; R can be any request type, or struct{} when the
// handler reads nothing from the body.
//
// Example with the standard context:
//
//	render := handler.HandlerFunc[handler.Context, RenderRequest](
//		func(ctx handler.Context, req RenderRequest) handler.Response {
//			return handler.HTML(http.StatusOK, email.Render(req.Data))
//		},
//	)
//
// Example with a custom context:
//
//	render := handler.HandlerFunc[BuilderContext, RenderRequest](
//		func(ctx BuilderContext, req RenderRequest) handler.Response {
//			return handler.HTML(http.StatusOK, email.Render(req.Data, ctx.Theme()))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes itself to the client. Implementations set headers and
// status before writing the body. A non-nil error from Render goes to the
// ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from the request.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports binding and rendering failures to the client.
// NewErrorHandler builds one that answers with a toast for DataStar requests
// and an error page otherwise.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add behavior around it. The first
// decorator passed to WithDecorators is the outermost.
//
// Example timing decorator:
//
//	func Timed[C handler.Context, R any](log *slog.Logger) handler.Decorator[C, R] {
//		return func(next handler.HandlerFunc[C, R]) handler.HandlerFunc[C, R] {
//			return func(ctx C, req R) handler.Response {
//				start := time.Now()
//				resp := next(ctx, req)
//				log.InfoContext(ctx, "handled", logger.Duration(time.Since(start)))
//				return resp
//			}
//		}
//	}
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinders appends binders. They run in order and binders returning
// binder.ErrBinderNotApplicable are skipped, so each binder only handles
// the content types or tags it knows.
//
// Example:
//
//	r.Post("/generate", handler.Wrap(generate,
//		handler.WithBinders[handler.Context, collector.Request](
//			binder.Form(), // form: and file: tags
//			binder.JSON(), // application/json bodies
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the default plain text error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory builds the handler context. It is required when C is
// not the Context returned by NewContext.
//
// Example:
//
//	handler.Wrap(render,
//		handler.WithContextFactory[BuilderContext, RenderRequest](NewBuilderContext),
//	)
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators around the handler, the first being the
// outermost.
//
// Example:
//
//	handler.Wrap(render,
//		handler.WithDecorators(
//			Timed[handler.Context, RenderRequest](log),
//			RequireAPIKey[handler.Context, RenderRequest](keys),
//		),
//	)
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes a plain text error with the status of an
// HTTPError, or 500 for anything else.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc into an http.HandlerFunc. The request
// is bound into a zero R, the handler runs and its Response is rendered.
// Binding errors, a nil Response and render errors go to the ErrorHandler.
//
// Usage without a body:
//
//	r.Get("/api/merge-fields", handler.Wrap[handler.Context, struct{}](mergeFields))
//
// Usage with a JSON body:
//
//	r.Post("/api/render", handler.Wrap(render,
//		handler.WithBinders[handler.Context, RenderRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, RenderRequest](errorHandler),
//	))
//
// Usage with a custom context:
//
//	r.Post("/api/render", handler.Wrap(render,
//		handler.WithContextFactory[BuilderContext, RenderRequest](NewBuilderContext),
//		handler.WithDecorators(Timed[BuilderContext, RenderRequest](log)),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := NewContext(w, r).(C); ok {
				return c
			}
			panic("handler: custom context type requires WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
