package inapp

// DetectWebView reports whether userAgent comes from an embedded WebView
// rather than a full browser. It is the WebView sub-detector used by
// Classify and is exported for hosts that only need this signal.
func DetectWebView(userAgent string, env *Probe) bool {
	return newSignals(userAgent, "", env).detectWebView()
}

func (s signals) detectWebView() bool {
	// Browsers that embed Chromium are still browsers.
	if s.env.braveHook() {
		return false
	}
	for _, p := range webViewExclusions {
		if p.match(s.ua) {
			return false
		}
	}

	// The bridge object only exists inside a React Native WebView host.
	if s.env.reactNativeBridge() {
		return true
	}

	if s.hasWV || webViewEngineMarkers.contains(s.ua) {
		return true
	}

	if s.isAndroid {
		if versionBeforeChrome(s.ua) {
			return true
		}
		// Past this point only geometry is left. Regular Chrome shows browser
		// UI that shrinks the viewport, so geometry can confirm a negative,
		// but missing UI or missing APIs alone are never a WebView signal.
		return false
	}

	// iOS WebViews and Safari share geometry; only explicit signals count.
	return false
}

// versionBeforeChrome reports a "Version/x" token that is either the only
// engine version in the UA or precedes "Chrome/x", which is how Android
// WebViews splice the WebKit version marker into their UA.
func versionBeforeChrome(lowerUA string) bool {
	version := versionTokenRegex.FindStringIndex(lowerUA)
	if version == nil {
		return false
	}
	chrome := chromeTokenRegex.FindStringIndex(lowerUA)
	return chrome == nil || chrome[0] > version[0]
}
