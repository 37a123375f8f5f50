package rumagent

import (
	"github.com/dmitrymomot/rumagent/pkg/session"
	"github.com/dmitrymomot/rumagent/pkg/storage"
)

// DefaultCollectorURL is the beacon endpoint used when none is configured.
const DefaultCollectorURL = "//rum-collector-2.pingdom.net/img/beacon.gif"

// Config holds agent configuration. Load it with pkg/config or build it with
// DefaultConfig.
type Config struct {
	// StorageKey names the cookie or native slot holding the visitor blob.
	StorageKey string `env:"RUM_STORAGE_KEY" envDefault:"pa"`

	// SiteID identifies the tracked site. Empty enables the legacy snippet lookup.
	SiteID string `env:"RUM_SITE_ID"`

	// CollectorURL receives the beacons. Protocol-relative URLs use https.
	CollectorURL string `env:"RUM_COLLECTOR_URL" envDefault:"//rum-collector-2.pingdom.net/img/beacon.gif"`

	// ForceFallback sends every beacon as an image request.
	ForceFallback bool `env:"RUM_FORCE_FALLBACK" envDefault:"false"`

	Session session.Config
}

// DefaultConfig returns the configuration of the stock agent.
func DefaultConfig() Config {
	return Config{
		StorageKey:   "pa",
		CollectorURL: DefaultCollectorURL,
		Session:      session.DefaultConfig(),
	}
}

func (c Config) storageConfig() storage.Config {
	return storage.Config{
		Key:                    c.StorageKey,
		ReturningVisitorWindow: c.Session.ReturningVisitorWindow,
	}
}

func (c Config) validate() error {
	if c.StorageKey == "" {
		return ErrEmptyStorageKey
	}
	if c.CollectorURL == "" {
		return ErrEmptyCollectorURL
	}
	if c.Session.Lifetime <= 0 || c.Session.ReturningVisitorWindow <= 0 {
		return ErrInvalidSessionWindow
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Session.IDLength == 0 {
		c.Session.IDLength = session.DefaultIDLength
	}
	return c
}

