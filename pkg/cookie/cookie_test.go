package cookie_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rumagent/pkg/cookie"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestDocument_SetAndGet(t *testing.T) {
	t.Parallel()

	doc := cookie.NewDocument(newClock().Now)

	line := doc.Set("pa", "sid%3Dabc")
	assert.Contains(t, line, "pa=sid%3Dabc")
	assert.Contains(t, line, "Path=/")

	v, err := doc.Get("pa")
	require.NoError(t, err)
	assert.Equal(t, "sid%3Dabc", v)

	_, err = doc.Get("missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestDocument_Cookie(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		doc := cookie.NewDocument(nil)
		assert.Equal(t, "", doc.Cookie())
	})

	t.Run("keeps insertion order and overwrites in place", func(t *testing.T) {
		t.Parallel()
		doc := cookie.NewDocument(newClock().Now)
		doc.SetCookie("a=1; Path=/")
		doc.SetCookie("b=2; Path=/")
		doc.SetCookie("a=3; Path=/")
		assert.Equal(t, "a=3; b=2", doc.Cookie())
		assert.Equal(t, 2, doc.Len())
	})

	t.Run("ignores unparsable lines", func(t *testing.T) {
		t.Parallel()
		doc := cookie.NewDocument(nil)
		doc.SetCookie("")
		doc.SetCookie("=novalue")
		assert.Equal(t, 0, doc.Len())
	})
}

func TestDocument_Expiry(t *testing.T) {
	t.Parallel()

	t.Run("expires date", func(t *testing.T) {
		t.Parallel()
		clock := newClock()
		doc := cookie.NewDocument(clock.Now)

		doc.Set("pa", "x", cookie.WithExpires(clock.Now().Add(time.Hour)))
		assert.Equal(t, "pa=x", doc.Cookie())

		clock.Advance(59 * time.Minute)
		assert.Equal(t, "pa=x", doc.Cookie())

		clock.Advance(2 * time.Minute)
		assert.Equal(t, "", doc.Cookie())
		_, err := doc.Get("pa")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("rewrite extends the expiry", func(t *testing.T) {
		t.Parallel()
		clock := newClock()
		doc := cookie.NewDocument(clock.Now)

		doc.Set("pa", "x", cookie.WithExpires(clock.Now().Add(time.Hour)))
		clock.Advance(50 * time.Minute)
		doc.Set("pa", "y", cookie.WithExpires(clock.Now().Add(time.Hour)))
		clock.Advance(50 * time.Minute)

		v, err := doc.Get("pa")
		require.NoError(t, err)
		assert.Equal(t, "y", v)
	})

	t.Run("max age", func(t *testing.T) {
		t.Parallel()
		clock := newClock()
		doc := cookie.NewDocument(clock.Now)

		doc.SetCookie("pa=x; Max-Age=60")
		assert.Equal(t, 1, doc.Len())
		clock.Advance(61 * time.Second)
		assert.Equal(t, 0, doc.Len())
	})

	t.Run("past expiry deletes", func(t *testing.T) {
		t.Parallel()
		clock := newClock()
		doc := cookie.NewDocument(clock.Now)

		doc.Set("pa", "x")
		doc.Set("pa", "x", cookie.WithExpires(clock.Now().Add(-time.Second)))
		assert.Equal(t, 0, doc.Len())
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		doc := cookie.NewDocument(newClock().Now)

		doc.Set("a", "1")
		doc.Set("b", "2")
		doc.Delete("a")
		assert.Equal(t, "b=2", doc.Cookie())
	})
}

func TestLine(t *testing.T) {
	t.Parallel()

	expires := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	line := cookie.Line("pa", "v",
		cookie.WithPath("/"),
		cookie.WithDomain("example.com"),
		cookie.WithExpires(expires),
		cookie.WithSecure(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	)

	assert.True(t, strings.HasPrefix(line, "pa=v"))
	assert.Contains(t, line, "Domain=example.com")
	assert.Contains(t, line, "Expires=Mon, 01 Apr 2024 00:00:00 GMT")
	assert.Contains(t, line, "Secure")
	assert.Contains(t, line, "SameSite=Lax")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.DefaultConfig()
	cfg.Domain = "example.com"
	cfg.Secure = true

	doc := cookie.NewFromConfig(cfg, nil)
	line := doc.Set("pa", "v")

	assert.Contains(t, line, "Domain=example.com")
	assert.Contains(t, line, "Secure")
	assert.Len(t, cfg.Options(), 4)
}
