package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rumagent/pkg/logger"
)

const (
	enabledSuffix = "_enabled"
	enabledValue  = "1"
)

// Config describes how the storage variant is chosen and written.
type Config struct {
	// Key names the slot holding the blob and prefixes the probe sentinel.
	Key string

	// ReturningVisitorWindow is the cookie lifetime applied on every write.
	ReturningVisitorWindow time.Duration
}

// SelectOption configures Select.
type SelectOption func(*selector)

type selector struct {
	logger *slog.Logger
	clock  func() time.Time
}

// WithLogger sets the logger used by the selected storage.
func WithLogger(l *slog.Logger) SelectOption {
	return func(s *selector) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the clock the cookie variant computes expiry dates from.
func WithClock(clock func() time.Time) SelectOption {
	return func(s *selector) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Select picks the storage variant once. The native engine is used when a
// previous probe left the "<key>_enabled" sentinel or when writing the sentinel
// and reading it back succeeds. Otherwise the cookie variant over jar is used.
// A nil native engine skips the probe. A nil jar with a failed probe yields a
// storage with no engine, which reads "" and drops writes.
func Select(ctx context.Context, cfg Config, native Engine, jar CookieJar, opts ...SelectOption) *Storage {
	s := &selector{logger: logger.Discard(), clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if native != nil {
		err := probe(ctx, native, cfg.Key+enabledSuffix)
		if err == nil {
			return New(native, cfg.Key, KindNative, s.logger)
		}
		s.logger.InfoContext(ctx, "native storage unavailable, using cookies",
			logger.Component("storage"), logger.Error(err))
	}

	var engine Engine
	if jar != nil {
		engine = NewCookieStore(jar, cfg.Key, cfg.ReturningVisitorWindow, s.clock)
	}
	return New(engine, cfg.Key, KindCookie, s.logger)
}

// probe checks that the engine both accepts writes and returns them.
// Some engines accept writes silently and drop them, so a read-back is required.
func probe(ctx context.Context, engine Engine, sentinel string) error {
	if v, err := engine.GetItem(ctx, sentinel); err == nil && v == enabledValue {
		return nil
	}

	if err := engine.SetItem(ctx, sentinel, enabledValue); err != nil {
		return errors.Join(ErrProbeFailed, err)
	}

	v, err := engine.GetItem(ctx, sentinel)
	if err != nil {
		return errors.Join(ErrProbeFailed, err)
	}
	if v != enabledValue {
		return ErrProbeFailed
	}
	return nil
}
