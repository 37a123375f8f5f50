package storage

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrymomot/rumagent/pkg/cookie"
	"github.com/dmitrymomot/rumagent/pkg/kvcodec"
)

// CookieJar is the document.cookie contract: Cookie returns the
// "name=value; ..." list, Set writes one cookie with the jar's default
// attributes overridden by opts. *cookie.Document implements it.
type CookieJar interface {
	Cookie() string
	Set(name, value string, opts ...cookie.Option) string
}

// CookieStore is the fallback Engine. All items live in one cookie named
// after the storage key whose value is the encoded item map. Path, domain and
// the other attributes come from the jar's defaults.
// Every write pushes the cookie expiry to now + window.
type CookieStore struct {
	jar    CookieJar
	name   string
	window time.Duration
	now    func() time.Time
}

var _ Engine = (*CookieStore)(nil)

// NewCookieStore creates a cookie engine. A nil clock falls back to time.Now.
func NewCookieStore(jar CookieJar, name string, window time.Duration, clock func() time.Time) *CookieStore {
	if clock == nil {
		clock = time.Now
	}
	return &CookieStore{jar: jar, name: name, window: window, now: clock}
}

func (c *CookieStore) GetItem(_ context.Context, key string) (string, error) {
	return c.read()[key], nil
}

func (c *CookieStore) SetItem(_ context.Context, key, value string) error {
	items := c.read()
	items[key] = value
	c.write(items)
	return nil
}

func (c *CookieStore) RemoveItem(_ context.Context, key string) error {
	items := c.read()
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	c.write(items)
	return nil
}

func (c *CookieStore) read() map[string]string {
	prefix := c.name + "="
	for part := range strings.SplitSeq(c.jar.Cookie(), ";") {
		part = strings.TrimSpace(part)
		if value, ok := strings.CutPrefix(part, prefix); ok {
			return kvcodec.Decode(value)
		}
	}
	return map[string]string{}
}

func (c *CookieStore) write(items map[string]string) {
	c.jar.Set(c.name, kvcodec.Encode(items), cookie.WithExpires(c.now().Add(c.window)))
}
