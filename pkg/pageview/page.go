package pageview

import (
	"net/url"

	"github.com/dmitrymomot/rumagent/pkg/transport"
)

// Page describes the document a page view is recorded for.
type Page struct {
	Title    string
	URL      string
	Referrer string
}

// Fields returns the page's beacon fields. The path is the URL without query
// and fragment.
func (p Page) Fields() transport.Payload {
	return transport.Payload{
		"title": p.Title,
		"path":  pagePath(p.URL),
		"ref":   p.Referrer,
	}
}

func pagePath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Scheme + "://" + u.Host + u.EscapedPath()
}
