package siteid

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/rumagent/pkg/logger"
	"github.com/dmitrymomot/rumagent/pkg/storage"
)

// KeyLegacyResolved is set to "1" in storage once a fallback strategy
// produced the site id.
const KeyLegacyResolved = "r1"

// Strategy looks up a site id from a secondary source.
type Strategy interface {
	Lookup(ctx context.Context) (string, bool)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(ctx context.Context) (string, bool)

func (f StrategyFunc) Lookup(ctx context.Context) (string, bool) { return f(ctx) }

// Resolver returns the tracked site's identifier.
type Resolver struct {
	mu       sync.Mutex
	id       string
	store    storage.Backend
	fallback []Strategy
	logger   *slog.Logger
}

// New creates a resolver for the configured id. Fallback strategies are only
// consulted while the id is empty.
func New(configured string, store storage.Backend, log *slog.Logger, fallback ...Strategy) *Resolver {
	if log == nil {
		log = logger.Discard()
	}
	return &Resolver{
		id:       configured,
		store:    store,
		fallback: fallback,
		logger:   log.With(logger.Component("siteid")),
	}
}

// SiteID returns the configured id, or the first id a fallback strategy
// yields. A fallback result is cached and flagged in storage. Returns "" when
// no source has an id.
func (r *Resolver) SiteID(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.id != "" {
		return r.id
	}

	for _, s := range r.fallback {
		id, ok := s.Lookup(ctx)
		if !ok || id == "" {
			continue
		}

		r.id = id
		if r.store != nil {
			r.store.Set(ctx, KeyLegacyResolved, "1")
		}
		r.logger.InfoContext(ctx, "site id resolved from legacy snippet", logger.SiteID(id))
		return id
	}

	return ""
}
