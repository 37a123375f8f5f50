package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dmitrymomot/rumagent/pkg/logger"
	"github.com/dmitrymomot/rumagent/pkg/storage"
)

// Manager tracks the visitor's session in a storage backend.
type Manager struct {
	store  storage.Backend
	config Config
	now    func() time.Time
	random func(n int64) int64
	logger *slog.Logger
}

// New creates a session manager persisting through store.
func New(store storage.Backend, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		config: DefaultConfig(),
		now:    time.Now,
		random: rand.Int64N,
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With(logger.Component("session"))

	return m
}

// Info returns the current session, starting a new one when none is stored or
// the stored one has expired.
func (m *Manager) Info(ctx context.Context) Info {
	id := m.store.Get(ctx, KeyID)
	start := parseUnix(m.store.Get(ctx, KeyStartTime))
	now := m.now().Unix()

	if id == "" || start == 0 {
		return m.Start(ctx, false)
	}

	if elapsed := now - start; elapsed > seconds(m.config.Lifetime) {
		// Returning status depends on the old start time, so it is computed before Start overwrites it
		return m.Start(ctx, elapsed < seconds(m.config.ReturningVisitorWindow))
	}

	return Info{
		ID:               id,
		StartTime:        start,
		InteractionStep:  m.InteractionStep(ctx),
		ReturningVisitor: m.store.Get(ctx, KeyReturningVisitor) == "1",
		Version:          m.config.Version,
	}
}

// Start begins a new session and returns it with interaction step 1.
func (m *Manager) Start(ctx context.Context, returning bool) Info {
	id := m.GenerateID()
	m.store.Set(ctx, KeyID, id)

	start := m.MarkActive(ctx)

	m.store.Set(ctx, KeyInteractionStep, "1")
	m.store.Set(ctx, KeyReturningVisitor, flag(returning))

	m.logger.DebugContext(ctx, "session started",
		logger.SessionID(id),
		slog.Bool("returning_visitor", returning),
	)

	return Info{
		ID:               id,
		StartTime:        start,
		InteractionStep:  1,
		ReturningVisitor: returning,
		Version:          m.config.Version,
	}
}

// MarkActive overwrites the stored session start time with the current time
// and returns it.
func (m *Manager) MarkActive(ctx context.Context) int64 {
	start := m.now().Unix()
	m.store.Set(ctx, KeyStartTime, strconv.FormatInt(start, 10))
	return start
}

// InteractionStep returns the stored step, 1 when it is unset or invalid.
func (m *Manager) InteractionStep(ctx context.Context) int {
	step, err := strconv.Atoi(m.store.Get(ctx, KeyInteractionStep))
	if err != nil || step < 1 {
		return 1
	}
	return step
}

// BumpInteractionStep increments the stored step. Call it after the current
// step was recorded for a page view.
func (m *Manager) BumpInteractionStep(ctx context.Context) {
	m.store.Set(ctx, KeyInteractionStep, strconv.Itoa(m.InteractionStep(ctx)+1))
}

func parseUnix(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
