// Package config loads typed configuration from environment variables and
// optional .env files.
//
//	type Config struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("MAILFORGE_"))
//
// Variables set in the process environment win over values from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrParsingConfig  = errors.New("failed to parse environment variables into config")
	ErrReadingEnvFile = errors.New("failed to read env file")
)

type Option func(*options)

type options struct {
	prefix  string
	files   []string
	environ map[string]string
}

// WithPrefix prepends prefix to every env tag.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads the given .env files. Missing files are skipped.
// Defaults to ".env".
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = paths }
}

// WithEnviron replaces the process environment, mostly for tests.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) { o.environ = vars }
}

// Load parses a T from the environment.
func Load[T any](opts ...Option) (T, error) {
	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	vars := o.environ
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}

	for _, path := range o.files {
		fileVars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			var zero T
			return zero, fmt.Errorf("%w %s: %w", ErrReadingEnvFile, path, err)
		}
		merged := make(map[string]string, len(vars)+len(fileVars))
		for k, v := range fileVars {
			merged[k] = v
		}
		for k, v := range vars {
			merged[k] = v
		}
		vars = merged
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load for startup code; it panics on error.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
