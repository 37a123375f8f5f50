package session

import "strconv"

const (
	// DefaultIDLength gives 8 character IDs such as "k2j4h5g6".
	DefaultIDLength = 8

	// maxIDLength keeps 36^n within int64.
	maxIDLength = 12
)

// idRange returns the lowest n-digit base-36 number and the span of values
// drawn above it: [36^(n-1), 36^n - 1).
func idRange(n int) (low, span int64) {
	if n < 1 || n > maxIDLength {
		n = DefaultIDLength
	}

	low = 1
	for range n - 1 {
		low *= 36
	}
	return low, low*36 - low - 1
}

// GenerateID returns a random lowercase base-36 session ID of the configured
// length. Collisions are not checked.
func (m *Manager) GenerateID() string {
	low, span := idRange(m.config.IDLength)
	return strconv.FormatInt(low+m.random(span), 36)
}
