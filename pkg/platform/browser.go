package platform

import (
	"regexp"
	"sort"
	"strings"
)

// browserPattern defines a pattern for detecting a browser. Any keyword
// matches unless an exclude is present.
type browserPattern struct {
	Name      string
	Keywords  keywordSet
	Excludes  keywordSet
	Regex     *regexp.Regexp
	OrderHint int
}

func (p browserPattern) match(lowerUA string) bool {
	if !p.Keywords.contains(lowerUA) {
		return false
	}
	return p.Excludes == nil || !p.Excludes.contains(lowerUA)
}

// Browser detection patterns. Chromium derivatives come before Chrome
// because they all carry a Chrome token.
var browserPatterns = []browserPattern{
	{
		Name:      BrowserEdge,
		Keywords:  newKeywordSet("edg/", "edge/", "edga/", "edgios/"),
		Regex:     regexp.MustCompile(`(?:edge|edg|edga|edgios)/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserSamsung,
		Keywords:  newKeywordSet("samsungbrowser"),
		Regex:     regexp.MustCompile(`samsungbrowser/([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserUC,
		Keywords:  newKeywordSet("ucbrowser"),
		Regex:     regexp.MustCompile(`ucbrowser/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserYandex,
		Keywords:  newKeywordSet("yabrowser", "yandexbrowser"),
		Regex:     regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserDuckDuckGo,
		Keywords:  newKeywordSet("duckduckgo/", "ddg/"),
		Regex:     regexp.MustCompile(`(?:duckduckgo|ddg)/([\d.]+)`),
		OrderHint: 50,
	},
	{
		Name:      BrowserVivaldi,
		Keywords:  newKeywordSet("vivaldi"),
		Regex:     regexp.MustCompile(`vivaldi/([\d.]+)`),
		OrderHint: 60,
	},
	{
		Name:      BrowserBrave,
		Keywords:  newKeywordSet("brave"),
		Regex:     regexp.MustCompile(`brave/([\d.]+)`),
		OrderHint: 70,
	},
	{
		Name:      BrowserOpera,
		Keywords:  newKeywordSet("opr/", "opios/", "opera"),
		Regex:     regexp.MustCompile(`(?:opr|opios|opera)[/ ]([\d.]+)`),
		OrderHint: 80,
	},
	{
		Name:      BrowserFirefox,
		Keywords:  newKeywordSet("firefox/", "fxios/"),
		Regex:     regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
		OrderHint: 90,
	},
	{
		Name:      BrowserChrome,
		Keywords:  newKeywordSet("chrome/", "crios/"),
		Regex:     regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`),
		OrderHint: 100,
	},
	{
		Name:      BrowserSafari,
		Keywords:  newKeywordSet("safari"),
		Excludes:  newKeywordSet("chrome", "crios", "android"),
		Regex:     regexp.MustCompile(`version/([\d.]+)`),
		OrderHint: 110,
	},
	{
		Name:      BrowserIE,
		Keywords:  newKeywordSet("msie", "trident/"),
		Regex:     regexp.MustCompile(`(?:msie |rv:)([\d.]+)`),
		OrderHint: 120,
	},
}

func init() {
	sort.SliceStable(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].OrderHint < browserPatterns[j].OrderHint
	})
}

// parseBrowser returns the browser name and full version.
func parseBrowser(lowerUA string) (string, string) {
	for _, p := range browserPatterns {
		if p.match(lowerUA) {
			return p.Name, extractVersion(lowerUA, p.Regex)
		}
	}
	return BrowserUnknown, ""
}

// extractVersion returns the first capture group of regex, capped in length.
func extractVersion(ua string, regex *regexp.Regexp) string {
	matches := regex.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return ""
	}
	version := strings.TrimRight(matches[1], ".")
	// Limit version length to avoid excessively long versions
	if len(version) > 20 {
		version = version[:20]
	}
	return version
}

// shortVersion keeps the major and minor components: "115.0.5790.166"
// becomes "115.0".
func shortVersion(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}
