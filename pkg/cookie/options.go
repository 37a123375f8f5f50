package cookie

import (
	"net/http"
	"time"
)

// Option sets an attribute of a cookie about to be written.
type Option func(*http.Cookie)

// WithPath scopes the cookie to path.
func WithPath(path string) Option {
	return func(c *http.Cookie) { c.Path = path }
}

func WithDomain(domain string) Option {
	return func(c *http.Cookie) { c.Domain = domain }
}

// WithExpires sets an absolute expiry date.
func WithExpires(t time.Time) Option {
	return func(c *http.Cookie) { c.Expires = t }
}

// WithMaxAge sets a relative lifetime in seconds. Negative values delete the
// cookie and take precedence over WithExpires.
func WithMaxAge(seconds int) Option {
	return func(c *http.Cookie) { c.MaxAge = seconds }
}

func WithSecure(secure bool) Option {
	return func(c *http.Cookie) { c.Secure = secure }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(c *http.Cookie) { c.SameSite = sameSite }
}

// Line renders the Set-Cookie line for name and value with opts applied in order.
func Line(name, value string, opts ...Option) string {
	c := &http.Cookie{Name: name, Value: value}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c.String()
}
