package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/environment"
	"github.com/dmitrymomot/mailforge/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_JSONDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("service", "mailforge")))
	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("email rendered", logger.RenderID("abc"), logger.Bytes(42), logger.Error(nil))
	rec := decode(t, &buf)
	assert.Equal(t, "email rendered", rec["msg"])
	assert.Equal(t, "mailforge", rec["service"])
	assert.Equal(t, "abc", rec["render_id"])
	assert.InDelta(t, 42, rec["bytes"], 0)
	assert.NotContains(t, rec, "error")
}

func TestNew_ContextExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			return slog.String("request_id", v), ok
		}),
	)

	log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "req-9"), "hello")
	assert.Equal(t, "req-9", decode(t, &buf)["request_id"])

	buf.Reset()
	log.With(logger.Component("builder")).InfoContext(context.Background(), "no id")
	rec := decode(t, &buf)
	assert.NotContains(t, rec, "request_id")
	assert.Equal(t, "builder", rec["component"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithEnvironment(environment.Development, "mailforge"), logger.WithOutput(&buf))
	log.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "env=development")

	buf.Reset()
	log = logger.New(logger.WithEnvironment(environment.Production, "mailforge"), logger.WithOutput(&buf))
	log.Debug("hidden")
	assert.Zero(t, buf.Len())
	log.Info("shown")
	assert.Equal(t, "production", decode(t, &buf)["env"])
}

func TestWithFormat_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	assert.NotPanics(t, func() { logger.New(logger.WithFormat(logger.FormatText)) })
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	l, err := logger.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.Attr{}, logger.RenderID(""))
	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))
	assert.Equal(t, "errors", logger.Errors(nil, errors.New("x")).Key)
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	assert.Equal(t, slog.String("source", "api"), logger.Source("api"))
}
