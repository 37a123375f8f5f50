package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// browserPattern defines how a browser is detected
type browserPattern struct {
	name      string
	keywords  []string
	excludes  []string
	regex     *regexp.Regexp
	orderHint int
}

// Browser detection patterns. Sorted by orderHint in init; more specific
// browsers come first because most of them also claim to be Chrome or Safari.
var browserPatterns = []browserPattern{
	{
		name:      BrowserEdge,
		keywords:  []string{"edg"},
		regex:     regexp.MustCompile(`(?i)(?:edge|edga|edgios|edg)/([\d.]+)`),
		orderHint: 10,
	},
	{
		name:      BrowserSamsung,
		keywords:  []string{"samsungbrowser"},
		regex:     regexp.MustCompile(`(?i)samsungbrowser/([\d.]+)`),
		orderHint: 20,
	},
	{
		name:      BrowserYandex,
		keywords:  []string{"yabrowser"},
		regex:     regexp.MustCompile(`(?i)yabrowser/([\d.]+)`),
		orderHint: 30,
	},
	{
		name:      BrowserOpera,
		keywords:  []string{"opr/"},
		regex:     regexp.MustCompile(`(?i)opr/([\d.]+)`),
		orderHint: 40,
	},
	{
		name:      BrowserOpera,
		keywords:  []string{"opera"},
		regex:     regexp.MustCompile(`(?i)(?:version|opera)[/ ]([\d.]+)`),
		orderHint: 45,
	},
	{
		name:      BrowserIE,
		keywords:  []string{"msie "},
		regex:     regexp.MustCompile(`(?i)msie ([\d.]+)`),
		orderHint: 50,
	},
	{
		name:      BrowserIE,
		keywords:  []string{"trident/"},
		regex:     regexp.MustCompile(`(?i)rv:([\d.]+)`),
		orderHint: 55,
	},
	{
		name:      BrowserChrome,
		keywords:  []string{"chrome"},
		regex:     regexp.MustCompile(`(?i)chrome/([\d.]+)`),
		orderHint: 60,
	},
	{
		name:      BrowserChrome,
		keywords:  []string{"crios"},
		regex:     regexp.MustCompile(`(?i)crios/([\d.]+)`),
		orderHint: 65,
	},
	{
		name:      BrowserFirefox,
		keywords:  []string{"firefox"},
		regex:     regexp.MustCompile(`(?i)firefox/([\d.]+)`),
		orderHint: 70,
	},
	{
		name:      BrowserSafari,
		keywords:  []string{"safari"},
		excludes:  []string{"chrome", "chromium", "android"},
		regex:     regexp.MustCompile(`(?i)version/([\d.]+)`),
		orderHint: 80,
	},
}

// ParseBrowser detects the browser from a lower-cased user agent string.
func ParseBrowser(lowerUA string) Browser {
	for _, p := range browserPatterns {
		if !p.matches(lowerUA) {
			continue
		}
		return Browser{Name: p.name, Version: extractVersion(lowerUA, p.regex)}
	}
	return Browser{Name: BrowserUnknown}
}

func (p browserPattern) matches(ua string) bool {
	for _, k := range p.keywords {
		if !strings.Contains(ua, k) {
			return false
		}
	}
	for _, e := range p.excludes {
		if strings.Contains(ua, e) {
			return false
		}
	}
	return true
}

func extractVersion(ua string, re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	m := re.FindStringSubmatch(ua)
	if len(m) < 2 {
		return ""
	}
	v := m[1]
	if len(v) > 20 {
		v = v[:20]
	}
	return v
}
