package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/mailforge/handler"
	"github.com/dmitrymomot/mailforge/modules/builder"
	"github.com/dmitrymomot/mailforge/pkg/clientip"
	"github.com/dmitrymomot/mailforge/pkg/collector"
	"github.com/dmitrymomot/mailforge/pkg/config"
	"github.com/dmitrymomot/mailforge/pkg/environment"
	"github.com/dmitrymomot/mailforge/pkg/file"
	"github.com/dmitrymomot/mailforge/pkg/httpserver"
	"github.com/dmitrymomot/mailforge/pkg/logger"
	"github.com/dmitrymomot/mailforge/pkg/preview"
	"github.com/dmitrymomot/mailforge/pkg/ratelimiter"
	"github.com/dmitrymomot/mailforge/pkg/redis"
	"github.com/dmitrymomot/mailforge/pkg/requestid"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mailforge"`
	LogLevel    string `env:"LOG_LEVEL"`

	// ImageStorage is one of inline, local or s3.
	ImageStorage string `env:"IMAGE_STORAGE" envDefault:"inline"`
	UploadDir    string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadURL    string `env:"UPLOAD_URL" envDefault:"/uploads"`

	// PreviewStore is memory or redis.
	PreviewStore string `env:"PREVIEW_STORE" envDefault:"memory"`
}

var (
	errUnknownImageStorage = errors.New("unknown IMAGE_STORAGE, want inline, local or s3")
	errUnknownPreviewStore = errors.New("unknown PREVIEW_STORE, want memory or redis")
)

func newLogger(cfg appConfig, stderr io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.ServiceName),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

func serve(ctx context.Context, stderr io.Writer) error {
	app, err := config.Load[appConfig]()
	if err != nil {
		return err
	}
	log, err := newLogger(app, stderr)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	var readiness []httpserver.Check

	encoder, err := imageEncoder(ctx, app, r)
	if err != nil {
		return err
	}

	store, check, err := previewStore(ctx, app)
	if err != nil {
		return err
	}
	if check != nil {
		readiness = append(readiness, check)
	}

	collectorCfg, err := config.Load[collector.Config]()
	if err != nil {
		return err
	}
	builderCfg, err := config.Load[builder.Config]()
	if err != nil {
		return err
	}
	limitCfg, err := config.Load[ratelimiter.Config]()
	if err != nil {
		return err
	}
	serverCfg, err := config.Load[httpserver.Config]()
	if err != nil {
		return err
	}

	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), limitCfg)
	if err != nil {
		return err
	}

	svc := builder.New(builderCfg,
		collector.New(collectorCfg, collector.WithEncoder(encoder)),
		store,
		builder.WithLogger(log),
		builder.WithMetrics(builder.NewMetrics(reg)),
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, readiness...))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.With(postOnly(ratelimiter.Middleware(bucket, clientip.GetIP, http.HandlerFunc(tooManyRequests)))).
		Mount("/", svc.Handle())

	log.InfoContext(ctx, "starting mailforge",
		slog.String("image_storage", app.ImageStorage),
		slog.String("preview_store", app.PreviewStore),
	)
	return httpserver.New(serverCfg, log).Run(ctx, r)
}

// imageEncoder builds the encoder for IMAGE_STORAGE. Local storage also
// mounts its file server on r.
func imageEncoder(ctx context.Context, app appConfig, r chi.Router) (collector.ImageEncoder, error) {
	switch strings.ToLower(app.ImageStorage) {
	case "", "inline":
		return collector.DataURLEncoder{}, nil
	case "local":
		storage, err := file.NewLocalStorage(app.UploadDir, app.UploadURL)
		if err != nil {
			return nil, err
		}
		u, err := url.Parse(app.UploadURL)
		if err != nil {
			return nil, fmt.Errorf("parse UPLOAD_URL: %w", err)
		}
		prefix := strings.TrimRight(u.Path, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, storage.Handler()))
		return collector.NewStorageEncoder(storage), nil
	case "s3":
		cfg, err := config.Load[file.S3Config]()
		if err != nil {
			return nil, err
		}
		storage, err := file.NewS3Storage(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return collector.NewStorageEncoder(storage), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownImageStorage, app.ImageStorage)
	}
}

func previewStore(ctx context.Context, app appConfig) (preview.Store, httpserver.Check, error) {
	cfg, err := config.Load[preview.Config]()
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(app.PreviewStore) {
	case "", "memory":
		return preview.NewMemoryStore(cfg), nil, nil
	case "redis":
		redisCfg, err := config.Load[redis.Config]()
		if err != nil {
			return nil, nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, err
		}
		return preview.NewRedisStore(client, cfg), redis.Healthcheck(client), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnknownPreviewStore, app.PreviewStore)
	}
}

// postOnly applies mw to POST requests and passes the rest through.
func postOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
		return
	}
	http.Error(w, "Too many requests. Please wait a moment and try again.", http.StatusTooManyRequests)
}
