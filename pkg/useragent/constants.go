package useragent

// Browser name identifiers
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserSamsung = "samsung"
	BrowserYandex  = "yandex"
	BrowserUnknown = "unknown"
)

// LegacyIEMaxVersion is the newest Internet Explorer major version that
// cannot be trusted with scripted cross-origin requests.
const LegacyIEMaxVersion = 9
