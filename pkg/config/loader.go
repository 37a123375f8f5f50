package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a Load call.
type Option func(*loader)

type loader struct {
	files  []string
	prefix string
	envMap map[string]string
}

// WithEnvFiles loads the given .env files before parsing. Missing files are
// ignored. Without this option the default .env file is tried.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
	}
}

// WithPrefix only reads variables starting with prefix; tags are written
// without it.
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// WithEnvironment parses from m instead of the process environment.
// Mostly useful in tests.
func WithEnvironment(m map[string]string) Option {
	return func(l *loader) {
		l.envMap = m
	}
}

// Load fills v from environment variables according to its `env` tags.
//
// Example:
//
//	type AgentConfig struct {
//		SiteID       string `env:"RUM_SITE_ID"`
//		CollectorURL string `env:"RUM_COLLECTOR_URL,required"`
//	}
//
//	var cfg AgentConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	if l.envMap == nil {
		// .env files are optional
		_ = godotenv.Load(l.files...)
	}

	parseOpts := env.Options{Prefix: l.prefix}
	if l.envMap != nil {
		parseOpts.Environment = l.envMap
	}

	if err := env.ParseWithOptions(v, parseOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
