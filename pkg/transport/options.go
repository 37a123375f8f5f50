package transport

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rumagent/pkg/useragent"
)

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient sets the client used for scripted requests.
// A nil client, typed or not, forces every beacon through the pixel loader.
func WithHTTPClient(c HTTPClient) Option {
	return func(s *Sender) {
		if hc, ok := c.(*http.Client); ok && hc == nil {
			c = nil
		}
		s.client = c
	}
}

// WithPixelLoader sets the image request fallback.
func WithPixelLoader(p PixelLoader) Option {
	return func(s *Sender) {
		if p != nil {
			s.pixel = p
		}
	}
}

// WithForceFallback sends every beacon as an image request.
func WithForceFallback(force bool) Option {
	return func(s *Sender) {
		s.forceFallback = force
	}
}

// WithUserAgent enables the legacy browser check for ua.
func WithUserAgent(ua string) Option {
	return func(s *Sender) {
		parsed, err := useragent.Parse(ua)
		if err != nil {
			return
		}
		s.legacyBrowser = parsed.IsLegacyIE()
		s.browser = parsed.DisplayName()
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}
