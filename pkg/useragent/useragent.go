// Package useragent extracts browser name and version from User-Agent strings.
package useragent

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent contains the parsed browser information of a user agent string
type UserAgent struct {
	userAgent   string
	browserName string
	browserVer  string
}

// Parse parses a user agent string. An empty string yields an unknown browser
// and ErrEmptyUserAgent.
func Parse(ua string) (UserAgent, error) {
	if strings.TrimSpace(ua) == "" {
		return UserAgent{browserName: BrowserUnknown}, ErrEmptyUserAgent
	}

	b := ParseBrowser(strings.ToLower(ua))
	return UserAgent{userAgent: ua, browserName: b.Name, browserVer: b.Version}, nil
}

// String returns the raw user agent
func (ua UserAgent) String() string { return ua.userAgent }

// BrowserName returns the browser name
func (ua UserAgent) BrowserName() string { return ua.browserName }

// BrowserVer returns the browser version
func (ua UserAgent) BrowserVer() string { return ua.browserVer }

// MajorVersion returns the leading number of the browser version, 0 when unknown.
func (ua UserAgent) MajorVersion() int {
	major, _, _ := strings.Cut(ua.browserVer, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return 0
	}
	return n
}

// IsLegacyIE reports whether the browser is Internet Explorer at or below
// LegacyIEMaxVersion.
func (ua UserAgent) IsLegacyIE() bool {
	if ua.browserName != BrowserIE {
		return false
	}
	major := ua.MajorVersion()
	return major > 0 && major <= LegacyIEMaxVersion
}

// DisplayName returns "Name/Version" for logs, e.g. "Chrome/120.0".
func (ua UserAgent) DisplayName() string {
	name := ua.browserName
	if name == "" || name == BrowserUnknown {
		return "Unknown"
	}
	if name == BrowserIE {
		name = "IE"
	} else {
		name = cases.Title(language.English).String(name)
	}
	if ua.browserVer == "" {
		return name
	}
	return name + "/" + ua.browserVer
}
