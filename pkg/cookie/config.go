package cookie

import (
	"net/http"
	"time"
)

// Config holds the default attributes of cookies written by the agent.
type Config struct {
	Path     string        `env:"RUM_COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"RUM_COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"RUM_COOKIE_SECURE" envDefault:"false"`
	SameSite http.SameSite `env:"RUM_COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

// Options converts the config into cookie options. Zero values are skipped.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 4)

	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.Secure {
		opts = append(opts, WithSecure(c.Secure))
	}
	if c.SameSite != 0 {
		opts = append(opts, WithSameSite(c.SameSite))
	}

	return opts
}

// NewFromConfig creates a Document with defaults taken from cfg.
func NewFromConfig(cfg Config, clock func() time.Time, opts ...Option) *Document {
	return NewDocument(clock, append(cfg.Options(), opts...)...)
}
