package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithLifetime sets how long a session stays active
func WithLifetime(d time.Duration) Option {
	return func(m *Manager) {
		m.config.Lifetime = d
	}
}

// WithReturningVisitorWindow sets the returning visitor window
func WithReturningVisitorWindow(d time.Duration) Option {
	return func(m *Manager) {
		m.config.ReturningVisitorWindow = d
	}
}

// WithVersion sets the agent version stamped on session records
func WithVersion(v string) Option {
	return func(m *Manager) {
		m.config.Version = v
	}
}

// WithClock sets the time source
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		if clock != nil {
			m.now = clock
		}
	}
}

// WithRandom sets the source of uniform random numbers in [0, n).
func WithRandom(fn func(n int64) int64) Option {
	return func(m *Manager) {
		if fn != nil {
			m.random = fn
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}
