package platform

import (
	"strings"
)

// Info is the parsed platform of one User-Agent string.
type Info struct {
	OS             string `json:"os"`
	OSVersion      string `json:"os_version,omitempty"`
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browser_version,omitempty"`
}

// Parse extracts platform information from ua. Unrecognized parts are
// reported as OSUnknown / BrowserUnknown with empty versions.
func Parse(ua string) Info {
	lowerUA := strings.ToLower(strings.TrimSpace(ua))
	osName, osVersion := parseOS(lowerUA)
	browser, browserVersion := parseBrowser(lowerUA)
	return Info{
		OS:             osName,
		OSVersion:      osVersion,
		Browser:        browser,
		BrowserVersion: browserVersion,
	}
}

// String returns a short identifier such as "Chrome 115.0 on Android 13".
func (i Info) String() string {
	var b strings.Builder

	browserKnown := i.Browser != "" && i.Browser != BrowserUnknown
	osKnown := i.OS != "" && i.OS != OSUnknown

	if browserKnown {
		b.WriteString(i.Browser)
		if i.BrowserVersion != "" {
			b.WriteByte(' ')
			b.WriteString(shortVersion(i.BrowserVersion))
		}
	} else {
		b.WriteString("Unknown browser")
	}

	if osKnown {
		b.WriteString(" on ")
		b.WriteString(i.OS)
		if i.OSVersion != "" {
			b.WriteByte(' ')
			b.WriteString(i.OSVersion)
		}
	}

	return b.String()
}
