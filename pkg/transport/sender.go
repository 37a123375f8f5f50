package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rumagent/pkg/kvcodec"
	"github.com/dmitrymomot/rumagent/pkg/logger"
)

// Method is the beacon delivery method.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// textContentType is what browsers send for string bodies; it keeps
// cross-origin beacons free of preflight requests.
const textContentType = "text/plain;charset=UTF-8"

// HTTPClient is the part of *http.Client the sender uses.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SiteIDFunc resolves the site identifier merged into every payload.
type SiteIDFunc func(ctx context.Context) string

// Sender delivers beacons to the collector. Delivery is fire-and-forget:
// failures are logged and never returned.
type Sender struct {
	url           string
	siteID        SiteIDFunc
	client        HTTPClient
	pixel         PixelLoader
	forceFallback bool
	legacyBrowser bool
	browser       string
	logger        *slog.Logger
}

// New creates a sender posting to collectorURL. Protocol-relative URLs
// ("//host/path") are resolved to https.
func New(collectorURL string, siteID SiteIDFunc, opts ...Option) *Sender {
	if strings.HasPrefix(collectorURL, "//") {
		collectorURL = "https:" + collectorURL
	}

	s := &Sender{
		url:    collectorURL,
		siteID: siteID,
		client: http.DefaultClient,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pixel == nil {
		s.pixel = HTTPPixel{Client: s.client}
	}

	s.logger = s.logger.With(logger.Component("transport"))
	if s.legacyBrowser {
		s.logger.Info("legacy browser, beacons use image requests", logger.Browser(s.browser))
	}

	return s
}

// Get sends p as a GET beacon.
func (s *Sender) Get(ctx context.Context, p Payload) { s.Send(ctx, MethodGet, p) }

// Post sends p as a POST beacon.
func (s *Sender) Post(ctx context.Context, p Payload) { s.Send(ctx, MethodPost, p) }

// Send merges the site id into p and delivers it with method.
func (s *Sender) Send(ctx context.Context, method Method, p Payload) {
	payload := p.Merge(Payload{"id": s.resolveSiteID(ctx)})

	var err error
	switch {
	case s.useFallback():
		err = s.pixel.Load(ctx, s.queryURL(payload))
	case method == MethodGet:
		err = s.sendGet(ctx, payload)
	case method == MethodPost:
		err = s.sendPost(ctx, payload)
	default:
		err = ErrUnsupportedMethod
	}

	if err != nil {
		s.logger.DebugContext(ctx, "beacon delivery failed",
			logger.Method(string(method)),
			logger.URL(s.url),
			logger.Error(err),
		)
	}
}

// useFallback reports whether beacons must go through image requests.
func (s *Sender) useFallback() bool {
	return s.client == nil || s.forceFallback || s.legacyBrowser
}

func (s *Sender) sendGet(ctx context.Context, p Payload) error {
	query := kvcodec.Encode(p.Flat())
	return s.do(ctx, http.MethodGet, s.url+"?"+query, strings.NewReader(query))
}

func (s *Sender) sendPost(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return errors.Join(ErrEncodePayload, err)
	}
	return s.do(ctx, http.MethodPost, s.url, strings.NewReader(string(body)))
}

func (s *Sender) do(ctx context.Context, method, url string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.Join(ErrBuildRequest, err)
	}
	req.Header.Set("Content-Type", textContentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (s *Sender) queryURL(p Payload) string {
	return s.url + "?" + kvcodec.Encode(p.Flat())
}

func (s *Sender) resolveSiteID(ctx context.Context) string {
	if s.siteID == nil {
		return ""
	}
	return s.siteID(ctx)
}
