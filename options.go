package rumagent

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rumagent/pkg/pageview"
	"github.com/dmitrymomot/rumagent/pkg/session"
	"github.com/dmitrymomot/rumagent/pkg/siteid"
	"github.com/dmitrymomot/rumagent/pkg/storage"
	"github.com/dmitrymomot/rumagent/pkg/transport"
)

// Option configures an Agent.
type Option func(*Agent)

// SupportCheck reports whether the visitor's environment can run the agent.
type SupportCheck func(ctx context.Context) bool

// Module runs once after a successful Start.
type Module func(ctx context.Context, a *Agent)

// WithNativeStore sets the native storage engine probed on Start.
// Without it the cookie variant is always used.
func WithNativeStore(e storage.Engine) Option {
	return func(a *Agent) {
		a.native = e
	}
}

// WithCookieJar sets the cookie jar backing the cookie storage variant.
func WithCookieJar(jar storage.CookieJar) Option {
	return func(a *Agent) {
		a.jar = jar
	}
}

// WithHTTPClient sets the client used for scripted beacons.
// Passing nil sends every beacon through the pixel loader.
func WithHTTPClient(c transport.HTTPClient) Option {
	return func(a *Agent) {
		a.transportOpts = append(a.transportOpts, transport.WithHTTPClient(c))
	}
}

// WithPixelLoader sets the image request fallback.
func WithPixelLoader(p transport.PixelLoader) Option {
	return func(a *Agent) {
		a.transportOpts = append(a.transportOpts, transport.WithPixelLoader(p))
	}
}

// WithUserAgent sets the visitor's user agent string.
func WithUserAgent(ua string) Option {
	return func(a *Agent) {
		a.transportOpts = append(a.transportOpts, transport.WithUserAgent(ua))
	}
}

// WithLegacyMarker adds a site id lookup consulted when no site id is configured.
func WithLegacyMarker(s siteid.Strategy) Option {
	return func(a *Agent) {
		if s != nil {
			a.siteIDFallback = append(a.siteIDFallback, s)
		}
	}
}

// WithSupportCheck sets the check run by Start.
func WithSupportCheck(check SupportCheck) Option {
	return func(a *Agent) {
		if check != nil {
			a.supported = check
		}
	}
}

// WithModules registers modules run in order after Start.
func WithModules(modules ...Module) Option {
	return func(a *Agent) {
		a.modules = append(a.modules, modules...)
	}
}

// WithSessionOptions passes extra options to the session manager.
func WithSessionOptions(opts ...session.Option) Option {
	return func(a *Agent) {
		a.sessionOpts = append(a.sessionOpts, opts...)
	}
}

// WithAwaitOptions sets the polling used by TrackPageViewWhenReady.
func WithAwaitOptions(opts ...pageview.AwaitOption) Option {
	return func(a *Agent) {
		a.awaitOpts = append(a.awaitOpts, opts...)
	}
}

// WithClock sets the time source
func WithClock(clock func() time.Time) Option {
	return func(a *Agent) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) {
		if l != nil {
			a.logger = l
		}
	}
}
