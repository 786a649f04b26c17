package platform

// Operating system names reported in Info.OS
const (
	// OSWindows identifies Microsoft Windows
	OSWindows = "Windows"

	// OSWindowsPhone identifies Microsoft Windows Phone
	OSWindowsPhone = "Windows Phone"

	// OSMacOS identifies Apple macOS
	OSMacOS = "macOS"

	// OSiOS identifies Apple iOS and iPadOS
	OSiOS = "iOS"

	// OSAndroid identifies Google Android
	OSAndroid = "Android"

	// OSHarmonyOS identifies Huawei HarmonyOS
	OSHarmonyOS = "HarmonyOS"

	// OSChromeOS identifies Google ChromeOS
	OSChromeOS = "ChromeOS"

	// OSLinux identifies desktop Linux distributions
	OSLinux = "Linux"

	// OSUnknown is used when the operating system cannot be determined
	OSUnknown = "Unknown"
)

// Browser names reported in Info.Browser
const (
	BrowserChrome     = "Chrome"
	BrowserFirefox    = "Firefox"
	BrowserSafari     = "Safari"
	BrowserEdge       = "Edge"
	BrowserOpera      = "Opera"
	BrowserSamsung    = "Samsung Internet"
	BrowserUC         = "UC Browser"
	BrowserYandex     = "Yandex"
	BrowserBrave      = "Brave"
	BrowserVivaldi    = "Vivaldi"
	BrowserDuckDuckGo = "DuckDuckGo"
	BrowserIE         = "Internet Explorer"

	// BrowserUnknown is used when the browser cannot be determined
	BrowserUnknown = "Unknown"
)
