package builder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailforge/handler"
	"github.com/dmitrymomot/mailforge/pkg/binder"
	"github.com/dmitrymomot/mailforge/pkg/collector"
	"github.com/dmitrymomot/mailforge/pkg/email"
	"github.com/dmitrymomot/mailforge/pkg/email/templates"
	"github.com/dmitrymomot/mailforge/pkg/logger"
	"github.com/dmitrymomot/mailforge/pkg/preview"
	"github.com/dmitrymomot/mailforge/pkg/requestid"
)

// Service serves the builder UI and its JSON API.
type Service struct {
	cfg        Config
	collector  *collector.Collector
	store      preview.Store
	log        *slog.Logger
	metrics    *Metrics
	pageErrors handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func New(cfg Config, c *collector.Collector, store preview.Store, opts ...Option) *Service {
	cfg = cfg.withDefaults()
	s := &Service{
		cfg:       cfg,
		collector: c,
		store:     store,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	s.log = s.log.With(logger.Component("builder"))
	s.pageErrors = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage:       s.errorPage,
		ErrorToast:      errorToast,
		FallbackMessage: GenerationFailedMessage,
	})
	return s
}

// Handle returns the builder router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.page(s.index))
	r.Post("/generate", s.page(s.generate))
	r.Get("/renders/{id}", s.page(s.document))
	r.Get("/renders/{id}/download", s.page(s.download))

	r.Route("/api", func(api chi.Router) {
		api.Post("/render", handler.Wrap(s.apiRender,
			handler.WithBinders[handler.Context, renderRequest](binder.JSON(binder.WithMaxJSONSize(s.cfg.MaxJSONBytes))),
			handler.WithErrorHandler[handler.Context, renderRequest](s.apiError),
		))
		api.Get("/contrast", handler.Wrap[handler.Context, struct{}](s.contrast))
		api.Get("/merge-fields", handler.Wrap[handler.Context, struct{}](s.mergeFields))
		api.Post("/merge-fields/insert", handler.Wrap(s.insertMergeField,
			handler.WithBinders[handler.Context, insertRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, insertRequest](s.apiError),
		))
	})

	return r
}

func (s *Service) page(h handler.HandlerFunc[handler.Context, struct{}]) http.HandlerFunc {
	return handler.Wrap(h, handler.WithErrorHandler[handler.Context, struct{}](s.pageErrors))
}

func (s *Service) apiError(ctx handler.Context, err error) {
	r := ctx.Request()
	s.log.WarnContext(r.Context(), "api request failed",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.String("path", r.URL.Path),
	)
	if rerr := handler.JSONError(err).Render(ctx.ResponseWriter(), r); rerr != nil {
		s.log.ErrorContext(r.Context(), "failed to write api error", logger.Error(rerr))
	}
}

// render turns data into a stored document styled by design.
func (s *Service) render(ctx context.Context, data email.Data, design Design, source string) (preview.Document, error) {
	start := time.Now()

	html, err := templates.Render(ctx, email.Template(data, s.cfg.renderOptions(design)...))
	if err != nil {
		s.metrics.failed(source)
		return preview.Document{}, errors.Join(ErrRenderFailed, err)
	}

	doc, err := s.store.Save(ctx, preview.Document{
		Subject:  data.Subject,
		Filename: email.Filename(data.Subject),
		HTML:     html,
		Offers:   len(data.Offers),
	})
	if err != nil {
		s.metrics.failed(source)
		return preview.Document{}, err
	}

	took := time.Since(start)
	s.metrics.rendered(source, took, len(html))
	s.log.InfoContext(ctx, "email rendered",
		logger.RequestID(requestid.FromContext(ctx)),
		logger.RenderID(doc.ID),
		logger.Source(source),
		logger.Bytes(len(html)),
		logger.Duration(took),
		slog.Int("offers", doc.Offers),
	)
	return doc, nil
}

func (s *Service) path(p string) string {
	return s.cfg.BasePath + p
}
