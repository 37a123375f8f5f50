package pageview

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rumagent/pkg/logger"
	"github.com/dmitrymomot/rumagent/pkg/session"
	"github.com/dmitrymomot/rumagent/pkg/transport"
)

// SourceNavigationTiming marks beacons built from navigation timing data.
const SourceNavigationTiming = "nt"

// Sessions is the part of the session manager the tracker needs.
type Sessions interface {
	Info(ctx context.Context) session.Info
	BumpInteractionStep(ctx context.Context)
}

// Beacon sends GET beacons.
type Beacon interface {
	Get(ctx context.Context, p transport.Payload)
}

// Tracker sends page views stamped with the current session.
type Tracker struct {
	sessions Sessions
	beacon   Beacon
	await    []AwaitOption
	logger   *slog.Logger
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithAwaitOptions sets the polling options used by TrackWhenReady.
func WithAwaitOptions(opts ...AwaitOption) TrackerOption {
	return func(t *Tracker) {
		t.await = append(t.await, opts...)
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTracker creates a page view tracker.
func NewTracker(sessions Sessions, beacon Beacon, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		sessions: sessions,
		beacon:   beacon,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(logger.Component("pageview"))
	return t
}

// Track sends record as a page view. The session fields override record
// fields; the recorded interaction step is the one before this view, the
// stored step is bumped afterwards. It returns the session the view was
// recorded with.
func (t *Tracker) Track(ctx context.Context, record transport.Payload) session.Info {
	info := t.sessions.Info(ctx)

	payload := record.Merge(transport.Payload{"s": SourceNavigationTiming})
	payload = transport.FromStrings(info.Fields()).Merge(payload)

	t.sessions.BumpInteractionStep(ctx)
	t.beacon.Get(ctx, payload)

	t.logger.DebugContext(ctx, "page view sent",
		logger.SessionID(info.ID),
		slog.Int("interaction_step", info.InteractionStep),
	)

	return info
}

// TrackWhenReady waits until ready reports true, then collects the record and
// tracks it. It gives up with ErrNotReady once the poll budget is spent.
func (t *Tracker) TrackWhenReady(ctx context.Context, ready ReadyFunc, collect func(ctx context.Context) transport.Payload) (session.Info, error) {
	attempts, err := Await(ctx, ready, t.await...)
	if err != nil {
		t.logger.InfoContext(ctx, "page view dropped", logger.Attempts(attempts), logger.Error(err))
		return session.Info{}, err
	}
	return t.Track(ctx, collect(ctx)), nil
}
