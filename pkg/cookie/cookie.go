package cookie

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// Document keeps cookies the way a browser exposes them to scripts through
// document.cookie: writes are Set-Cookie lines, reads are a "name=value; ..." list
// of the cookies that have not expired yet.
type Document struct {
	mu       sync.Mutex
	entries  map[string]entry
	order    []string
	now      func() time.Time
	defaults []Option
}

type entry struct {
	cookie    *http.Cookie
	expiresAt time.Time // zero for session cookies
}

// NewDocument creates an empty cookie document.
// A nil clock falls back to time.Now. Defaults apply to cookies written with Set.
func NewDocument(clock func() time.Time, opts ...Option) *Document {
	if clock == nil {
		clock = time.Now
	}

	return &Document{
		entries:  make(map[string]entry),
		now:      clock,
		defaults: append([]Option{WithPath("/"), WithSameSite(http.SameSiteLaxMode)}, opts...),
	}
}

// Cookie returns all live cookies as a "name=value; name2=value2" string.
func (d *Document) Cookie() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	parts := make([]string, 0, len(d.order))
	for _, name := range d.order {
		e := d.entries[name]
		if e.expired(now) {
			continue
		}
		parts = append(parts, e.cookie.Name+"="+e.cookie.Value)
	}
	return strings.Join(parts, "; ")
}

// SetCookie applies a single Set-Cookie line. Unparsable lines are ignored,
// lines that carry a past expiry remove the cookie.
func (d *Document) SetCookie(line string) {
	c, err := http.ParseSetCookie(line)
	if err != nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.store(c)
}

// Set writes a cookie built from name, value and the document defaults
// overridden by opts. It returns the Set-Cookie line that was applied.
func (d *Document) Set(name, value string, opts ...Option) string {
	line := Line(name, value, slices.Concat(d.defaults, opts)...)
	d.SetCookie(line)
	return line
}

// Get returns the value of a live cookie.
func (d *Document) Get(name string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[name]
	if !ok || e.expired(d.now()) {
		return "", ErrCookieNotFound
	}
	return e.cookie.Value, nil
}

// Delete removes a cookie by writing it with an expiry in the past.
func (d *Document) Delete(name string) {
	d.Set(name, "", WithMaxAge(-1))
}

// Len reports how many live cookies the document holds.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	n := 0
	for _, e := range d.entries {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

func (d *Document) store(c *http.Cookie) {
	now := d.now()

	var expiresAt time.Time
	switch {
	case c.MaxAge < 0:
		d.remove(c.Name)
		return
	case c.MaxAge > 0:
		// Max-Age wins over Expires, same as in browsers
		expiresAt = now.Add(time.Duration(c.MaxAge) * time.Second)
	case !c.Expires.IsZero():
		if !c.Expires.After(now) {
			d.remove(c.Name)
			return
		}
		expiresAt = c.Expires
	}

	if _, exists := d.entries[c.Name]; !exists {
		d.order = append(d.order, c.Name)
	}
	d.entries[c.Name] = entry{cookie: c, expiresAt: expiresAt}
}

func (d *Document) remove(name string) {
	if _, exists := d.entries[name]; !exists {
		return
	}
	delete(d.entries, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}
