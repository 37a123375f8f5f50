package storage

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rumagent/pkg/kvcodec"
	"github.com/dmitrymomot/rumagent/pkg/logger"
)

// Backend is the key-value contract the session manager and the site id
// resolver persist their state through. It never returns errors: a missing
// value reads as "" and failed writes are logged.
type Backend interface {
	Get(ctx context.Context, key string) string
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

// Engine is a raw string store holding whole slots, such as the browser's
// localStorage or a cookie jar. A missing key reads as "" with a nil error.
type Engine interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Kind names a storage variant.
type Kind string

const (
	KindNative Kind = "native"
	KindCookie Kind = "cookie"
)

// Storage keeps a flat key-value blob in a single slot of an Engine.
// Every operation reads and rewrites the whole blob.
type Storage struct {
	engine Engine
	slot   string
	kind   Kind
	logger *slog.Logger
}

var _ Backend = (*Storage)(nil)

// New creates a Storage writing its blob into engine under slot.
func New(engine Engine, slot string, kind Kind, log *slog.Logger) *Storage {
	if log == nil {
		log = logger.Discard()
	}
	return &Storage{
		engine: engine,
		slot:   slot,
		kind:   kind,
		logger: log.With(logger.Component("storage"), logger.StorageKind(string(kind))),
	}
}

// Kind reports which variant backs the storage.
func (s *Storage) Kind() Kind {
	if s == nil {
		return ""
	}
	return s.kind
}

// Get returns the value stored under key, or "" when it is absent.
func (s *Storage) Get(ctx context.Context, key string) string {
	if s == nil || s.engine == nil || key == "" {
		return ""
	}
	return s.load(ctx)[key]
}

// Set stores value under key. Failures are logged and swallowed.
func (s *Storage) Set(ctx context.Context, key, value string) {
	if s == nil || s.engine == nil || key == "" {
		return
	}

	blob := s.load(ctx)
	blob[key] = value

	if err := s.engine.SetItem(ctx, s.slot, kvcodec.Encode(blob)); err != nil {
		s.logger.ErrorContext(ctx, "unable to store value", logger.StorageKey(key), logger.Error(err))
	}
}

// Remove deletes key from the blob. It is a no-op when the key is not stored.
func (s *Storage) Remove(ctx context.Context, key string) {
	if s == nil || s.engine == nil || key == "" {
		return
	}

	blob := s.load(ctx)
	if _, ok := blob[key]; !ok {
		return
	}
	delete(blob, key)

	if err := s.engine.SetItem(ctx, s.slot, kvcodec.Encode(blob)); err != nil {
		s.logger.ErrorContext(ctx, "unable to remove value", logger.StorageKey(key), logger.Error(err))
	}
}

// load reads and decodes the blob. Read errors count as an empty blob.
func (s *Storage) load(ctx context.Context) map[string]string {
	raw, err := s.engine.GetItem(ctx, s.slot)
	if err != nil {
		s.logger.DebugContext(ctx, "unable to read blob", logger.Error(err))
		return map[string]string{}
	}
	return kvcodec.Decode(raw)
}
