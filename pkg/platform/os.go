package platform

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OS detection keyword sets
var (
	windowsPhoneKeywords = newKeywordSet("windows phone")
	windowsKeywords      = newKeywordSet("windows")
	iOSKeywords          = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords        = newKeywordSet("macintosh", "mac os x")
	androidKeywords      = newKeywordSet("android")
	harmonyOSKeywords    = newKeywordSet("harmonyos", "openharmony")
	chromeOSKeywords     = newKeywordSet("cros ", "chromeos")
	linuxKeywords        = newKeywordSet("linux", "x11")
)

// Distribution names a desktop Linux UA may carry. Checked in order.
var linuxDistributions = []string{"ubuntu", "fedora", "debian", "mint", "manjaro", "opensuse", "gentoo"}

var (
	androidVersionRegex      = regexp.MustCompile(`android[ /]?([\d.]+)`)
	iOSVersionRegex          = regexp.MustCompile(`(?:iphone os|cpu os) ([\d_]+)`)
	macOSVersionRegex        = regexp.MustCompile(`mac os x ([\d_.]+)`)
	windowsVersionRegex      = regexp.MustCompile(`windows nt ([\d.]+)`)
	windowsPhoneVersionRegex = regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`)
	harmonyOSVersionRegex    = regexp.MustCompile(`harmonyos[ /]?([\d.]+)`)
	chromeOSVersionRegex     = regexp.MustCompile(`cros \S+ ([\d.]+)`)
)

// Windows NT kernel versions mapped to marketing names. Windows 11 still
// reports NT 10.0, so it cannot be told apart from the UA alone.
var windowsNTNames = map[string]string{
	"10.0": "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
	"5.2":  "XP",
	"5.1":  "XP",
}

// parseOS identifies the operating system and its version.
// Order reflects typical web traffic patterns: Windows first, then mobile OSes.
func parseOS(lowerUA string) (string, string) {
	if lowerUA == "" {
		return OSUnknown, ""
	}

	if windowsKeywords.contains(lowerUA) {
		if windowsPhoneKeywords.contains(lowerUA) {
			return OSWindowsPhone, extractVersion(lowerUA, windowsPhoneVersionRegex)
		}
		nt := extractVersion(lowerUA, windowsVersionRegex)
		if name, ok := windowsNTNames[nt]; ok {
			return OSWindows, name
		}
		return OSWindows, nt
	}

	// iPhone UAs also say "like Mac OS X", so iOS goes before macOS
	if iOSKeywords.contains(lowerUA) {
		return OSiOS, underscoreVersion(extractVersion(lowerUA, iOSVersionRegex))
	}

	if macOSKeywords.contains(lowerUA) {
		return OSMacOS, underscoreVersion(extractVersion(lowerUA, macOSVersionRegex))
	}

	// HarmonyOS keeps an Android compatibility token
	if harmonyOSKeywords.contains(lowerUA) {
		return OSHarmonyOS, extractVersion(lowerUA, harmonyOSVersionRegex)
	}

	if androidKeywords.contains(lowerUA) {
		return OSAndroid, extractVersion(lowerUA, androidVersionRegex)
	}

	if chromeOSKeywords.contains(lowerUA) {
		return OSChromeOS, extractVersion(lowerUA, chromeOSVersionRegex)
	}

	if linuxKeywords.contains(lowerUA) {
		return OSLinux, linuxDistribution(lowerUA)
	}

	return OSUnknown, ""
}

// linuxDistribution returns the title-cased distribution name, if any.
func linuxDistribution(lowerUA string) string {
	for _, distro := range linuxDistributions {
		if strings.Contains(lowerUA, distro) {
			// Casers are stateful, so each call gets its own
			return cases.Title(language.English).String(distro)
		}
	}
	return ""
}

// underscoreVersion converts Apple's "17_0_1" notation to "17.0.1".
func underscoreVersion(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}
