package rumagent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/rumagent/pkg/logger"
	"github.com/dmitrymomot/rumagent/pkg/pageview"
	"github.com/dmitrymomot/rumagent/pkg/session"
	"github.com/dmitrymomot/rumagent/pkg/siteid"
	"github.com/dmitrymomot/rumagent/pkg/storage"
	"github.com/dmitrymomot/rumagent/pkg/transport"
)

// Agent runs the monitoring core on behalf of one visitor.
type Agent struct {
	config Config

	native         storage.Engine
	jar            storage.CookieJar
	transportOpts  []transport.Option
	sessionOpts    []session.Option
	siteIDFallback []siteid.Strategy
	awaitOpts      []pageview.AwaitOption
	supported      SupportCheck
	modules        []Module
	clock          func() time.Time
	logger         *slog.Logger

	mu       sync.Mutex
	started  bool
	store    *storage.Storage
	sessions *session.Manager
	resolver *siteid.Resolver
	sender   *transport.Sender
	tracker  *pageview.Tracker
}

// New creates an agent. Nothing is read or written until Start.
func New(cfg Config, opts ...Option) (*Agent, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	a := &Agent{
		config:    cfg,
		supported: func(context.Context) bool { return true },
		clock:     time.Now,
		logger:    logger.Discard(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.logger = a.logger.With(logger.Component("agent"))

	return a, nil
}

// Start initializes the agent: it selects the storage, computes the session,
// builds the transport and runs the registered modules. It returns false
// without touching any state when the support check fails. Repeated calls
// return true without running anything again.
func (a *Agent) Start(ctx context.Context) bool {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return true
	}

	if !a.supported(ctx) {
		a.mu.Unlock()
		a.logger.InfoContext(ctx, "environment not supported, agent disabled")
		return false
	}

	a.store = storage.Select(ctx, a.config.storageConfig(), a.native, a.jar,
		storage.WithLogger(a.logger),
		storage.WithClock(a.clock),
	)

	sessionOpts := append([]session.Option{
		session.WithConfig(a.config.Session),
		session.WithClock(a.clock),
		session.WithLogger(a.logger),
	}, a.sessionOpts...)
	a.sessions = session.New(a.store, sessionOpts...)

	a.resolver = siteid.New(a.config.SiteID, a.store, a.logger, a.siteIDFallback...)

	transportOpts := append([]transport.Option{
		transport.WithForceFallback(a.config.ForceFallback),
		transport.WithLogger(a.logger),
	}, a.transportOpts...)
	a.sender = transport.New(a.config.CollectorURL, a.resolver.SiteID, transportOpts...)

	a.tracker = pageview.NewTracker(a.sessions, a.sender,
		pageview.WithAwaitOptions(a.awaitOpts...),
		pageview.WithLogger(a.logger),
	)
	a.started = true
	modules := a.modules
	a.mu.Unlock()

	info := a.sessions.Info(ctx)
	a.logger.DebugContext(ctx, "agent started",
		logger.StorageKind(string(a.store.Kind())),
		logger.SessionID(info.ID),
		slog.Int("interaction_step", info.InteractionStep),
		slog.Bool("returning_visitor", info.ReturningVisitor),
	)

	for _, m := range modules {
		m(ctx, a)
	}

	return true
}

// Started reports whether Start succeeded.
func (a *Agent) Started() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started
}

// Config returns the agent configuration.
func (a *Agent) Config() Config {
	return a.config
}

// Logger returns the agent logger for use by modules.
func (a *Agent) Logger() *slog.Logger {
	return a.logger
}

// Store returns the selected storage, nil before Start.
func (a *Agent) Store() storage.Backend {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		return nil
	}
	return a.store
}

// StorageKind reports the selected storage variant, "" before Start.
func (a *Agent) StorageKind() storage.Kind {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Kind()
}

// SessionInfo returns the current session, starting or renewing it as needed.
func (a *Agent) SessionInfo(ctx context.Context) (session.Info, error) {
	sessions := a.sessionManager()
	if sessions == nil {
		return session.Info{}, ErrNotStarted
	}
	return sessions.Info(ctx), nil
}

// BumpInteractionStep increments the stored interaction step.
func (a *Agent) BumpInteractionStep(ctx context.Context) error {
	sessions := a.sessionManager()
	if sessions == nil {
		return ErrNotStarted
	}
	sessions.BumpInteractionStep(ctx)
	return nil
}

// SiteID returns the resolved site id, "" before Start or when unknown.
func (a *Agent) SiteID(ctx context.Context) string {
	a.mu.Lock()
	resolver := a.resolver
	a.mu.Unlock()

	if resolver == nil {
		return ""
	}
	return resolver.SiteID(ctx)
}

// Send delivers payload to the collector. Delivery failures are logged, not
// returned.
func (a *Agent) Send(ctx context.Context, method transport.Method, payload transport.Payload) error {
	a.mu.Lock()
	sender := a.sender
	a.mu.Unlock()

	if sender == nil {
		return ErrNotStarted
	}
	sender.Send(ctx, method, payload)
	return nil
}

// TrackPageView sends record as a page view stamped with the session.
func (a *Agent) TrackPageView(ctx context.Context, record transport.Payload) (session.Info, error) {
	tracker := a.pageTracker()
	if tracker == nil {
		return session.Info{}, ErrNotStarted
	}
	return tracker.Track(ctx, record), nil
}

// TrackPageViewWhenReady waits for ready, then collects and tracks the record.
func (a *Agent) TrackPageViewWhenReady(ctx context.Context, ready pageview.ReadyFunc, collect func(ctx context.Context) transport.Payload) (session.Info, error) {
	tracker := a.pageTracker()
	if tracker == nil {
		return session.Info{}, ErrNotStarted
	}
	return tracker.TrackWhenReady(ctx, ready, collect)
}

func (a *Agent) sessionManager() *session.Manager {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessions
}

func (a *Agent) pageTracker() *pageview.Tracker {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tracker
}
