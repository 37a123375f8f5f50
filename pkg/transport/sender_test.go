package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rumagent/pkg/kvcodec"
	"github.com/dmitrymomot/rumagent/pkg/logger"
	"github.com/dmitrymomot/rumagent/pkg/transport"
)

const legacyIE = "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)"

type captured struct {
	method      string
	rawQuery    string
	body        string
	contentType string
}

type collector struct {
	mu       sync.Mutex
	requests []captured
}

func (c *collector) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	c.mu.Lock()
	c.requests = append(c.requests, captured{
		method:      r.Method,
		rawQuery:    r.URL.RawQuery,
		body:        string(body),
		contentType: r.Header.Get("Content-Type"),
	})
	c.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (c *collector) all() []captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]captured(nil), c.requests...)
}

func setupCollector(t *testing.T) (*collector, *httptest.Server) {
	t.Helper()
	c := &collector{}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	t.Cleanup(srv.Close)
	return c, srv
}

type pixelRecorder struct {
	urls []string
}

func (p *pixelRecorder) Load(_ context.Context, url string) error {
	p.urls = append(p.urls, url)
	return nil
}

func siteID(id string) transport.SiteIDFunc {
	return func(context.Context) string { return id }
}

func TestSender_Get(t *testing.T) {
	t.Parallel()
	c, srv := setupCollector(t)

	sender := transport.New(srv.URL+"/img/beacon.gif", siteID("site-1"), transport.WithHTTPClient(srv.Client()))
	sender.Get(context.Background(), transport.Payload{"title": "Home & away", "sIS": 2})

	reqs := c.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].method)
	assert.Equal(t, "id=site-1&sIS=2&title=Home%20%26%20away", reqs[0].rawQuery)
	assert.Equal(t, reqs[0].rawQuery, reqs[0].body)
	assert.Equal(t, "text/plain;charset=UTF-8", reqs[0].contentType)
}

func TestSender_GetDoesNotAccumulateQueries(t *testing.T) {
	t.Parallel()
	c, srv := setupCollector(t)

	sender := transport.New(srv.URL, siteID("s"), transport.WithHTTPClient(srv.Client()))
	sender.Get(context.Background(), transport.Payload{"n": 1})
	sender.Get(context.Background(), transport.Payload{"n": 2})

	reqs := c.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, "id=s&n=2", reqs[1].rawQuery)
}

func TestSender_Post(t *testing.T) {
	t.Parallel()
	c, srv := setupCollector(t)

	sender := transport.New(srv.URL, siteID("site-1"), transport.WithHTTPClient(srv.Client()))
	sender.Post(context.Background(), transport.Payload{
		"s":      "event",
		"marks":  []string{"a", "b"},
		"nested": map[string]any{"x": 1},
	})

	reqs := c.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].method)
	assert.Empty(t, reqs[0].rawQuery)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(reqs[0].body), &body))
	assert.Equal(t, "site-1", body["id"])
	assert.Equal(t, "event", body["s"])
	assert.Equal(t, []any{"a", "b"}, body["marks"])
	assert.Equal(t, map[string]any{"x": float64(1)}, body["nested"])
}

func TestSender_PayloadWinsOverSiteID(t *testing.T) {
	t.Parallel()
	c, srv := setupCollector(t)

	sender := transport.New(srv.URL, siteID("configured"), transport.WithHTTPClient(srv.Client()))
	sender.Get(context.Background(), transport.Payload{"id": "override"})

	reqs := c.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "id=override", reqs[0].rawQuery)
}

func TestSender_Fallback(t *testing.T) {
	t.Parallel()

	payload := transport.Payload{"s": "nt", "path": "https://example.com/a?b=c", "sIS": 1}
	expected := "https://rum.example.com/img/beacon.gif?" + kvcodec.Encode(map[string]string{
		"id":   "site-1",
		"s":    "nt",
		"path": "https://example.com/a?b=c",
		"sIS":  "1",
	})

	tests := []struct {
		name   string
		method transport.Method
		opts   []transport.Option
	}{
		{name: "forced", method: transport.MethodGet, opts: []transport.Option{transport.WithForceFallback(true)}},
		{name: "no http client", method: transport.MethodGet, opts: []transport.Option{transport.WithHTTPClient(nil)}},
		{name: "typed nil http client", method: transport.MethodGet, opts: []transport.Option{transport.WithHTTPClient((*http.Client)(nil))}},
		{name: "legacy internet explorer", method: transport.MethodGet, opts: []transport.Option{transport.WithUserAgent(legacyIE)}},
		{name: "post forced", method: transport.MethodPost, opts: []transport.Option{transport.WithForceFallback(true)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pixel := &pixelRecorder{}
			opts := append([]transport.Option{transport.WithPixelLoader(pixel)}, tc.opts...)

			sender := transport.New("//rum.example.com/img/beacon.gif", siteID("site-1"), opts...)
			sender.Send(context.Background(), tc.method, payload)

			require.Len(t, pixel.urls, 1)
			assert.Equal(t, expected, pixel.urls[0])
		})
	}
}

func TestSender_LegacyBrowserIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	transport.New("//rum.example.com/img/beacon.gif", siteID("site-1"),
		transport.WithPixelLoader(&pixelRecorder{}),
		transport.WithUserAgent(legacyIE),
		transport.WithLogger(log),
	)

	assert.Contains(t, buf.String(), `"browser":"IE/9.0"`)
	assert.Contains(t, buf.String(), "legacy browser")
}

func TestSender_ModernBrowserIsNotLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	transport.New("https://rum.example.com/img/beacon.gif", siteID("site-1"),
		transport.WithUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		transport.WithLogger(logger.New(logger.WithOutput(buf))),
	)

	assert.Empty(t, buf.String())
}

func TestSender_FallbackDropsNestedFields(t *testing.T) {
	t.Parallel()
	pixel := &pixelRecorder{}

	sender := transport.New("https://rum.example.com/b.gif", siteID("s"),
		transport.WithForceFallback(true), transport.WithPixelLoader(pixel))
	sender.Post(context.Background(), transport.Payload{"keep": true, "drop": []int{1}})

	require.Len(t, pixel.urls, 1)
	assert.Equal(t, "https://rum.example.com/b.gif?id=s&keep=true", pixel.urls[0])
}

func TestSender_ModernBrowserUsesHTTPClient(t *testing.T) {
	t.Parallel()
	c, srv := setupCollector(t)
	pixel := &pixelRecorder{}

	sender := transport.New(srv.URL, siteID("s"),
		transport.WithHTTPClient(srv.Client()),
		transport.WithPixelLoader(pixel),
		transport.WithUserAgent("Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.2; Trident/6.0)"),
	)
	sender.Get(context.Background(), nil)

	assert.Empty(t, pixel.urls)
	assert.Len(t, c.all(), 1)
}

func TestSender_FailuresAreSwallowed(t *testing.T) {
	t.Parallel()

	failing := transport.PixelLoaderFunc(func(context.Context, string) error {
		return errors.New("network down")
	})
	sender := transport.New("https://rum.example.com", nil,
		transport.WithForceFallback(true), transport.WithPixelLoader(failing))

	assert.NotPanics(t, func() { sender.Get(context.Background(), transport.Payload{"a": 1}) })
	assert.NotPanics(t, func() { sender.Send(context.Background(), "PUT", nil) })
}

func TestHTTPPixel(t *testing.T) {
	t.Parallel()
	c, srv := setupCollector(t)

	err := transport.HTTPPixel{Client: srv.Client()}.Load(context.Background(), srv.URL+"/b.gif?id=s")
	require.NoError(t, err)

	reqs := c.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "id=s", reqs[0].rawQuery)
}

func TestPayload_Flat(t *testing.T) {
	t.Parallel()

	p := transport.Payload{
		"s":     "nt",
		"n":     int64(-3),
		"f":     1.5,
		"b":     false,
		"nil":   nil,
		"slice": []string{"x"},
	}
	assert.Equal(t, map[string]string{
		"s":   "nt",
		"n":   "-3",
		"f":   "1.5",
		"b":   "false",
		"nil": "",
	}, p.Flat())
}
