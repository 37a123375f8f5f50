package session

import "time"

// Config holds session configuration
type Config struct {
	// IDLength is the number of base-36 characters of a session ID (1..12).
	IDLength int `env:"RUM_SESSION_ID_LENGTH" envDefault:"8"`

	// Lifetime is how long a session stays active after it started.
	Lifetime time.Duration `env:"RUM_SESSION_LIFETIME" envDefault:"30m"`

	// ReturningVisitorWindow is how recently a previous session must have
	// started for the visitor to count as returning.
	ReturningVisitorWindow time.Duration `env:"RUM_RETURNING_VISITOR_WINDOW" envDefault:"720h"`

	// Version is the agent version stamped on every session record.
	Version string `env:"RUM_AGENT_VERSION" envDefault:"1.4.0"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		IDLength:               DefaultIDLength,
		Lifetime:               30 * time.Minute,
		ReturningVisitorWindow: 30 * 24 * time.Hour,
		Version:                "1.4.0",
	}
}
