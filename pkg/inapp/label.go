package inapp

import "strings"

// ResolveLabel returns the browser label for the given context without
// deciding whether it is in-app.
func ResolveLabel(userAgent, referrer string, env *Probe) string {
	s := newSignals(userAgent, referrer, env)
	if s.ua == "" {
		return LabelUnknown
	}
	return s.label()
}

// label mirrors the classification priority: app shells first, then
// regular browsers, then the generic WebView fallback.
func (s signals) label() string {
	if strings.Contains(s.ua, tokenGSA) {
		return LabelGoogleApp
	}
	for _, app := range appLabels {
		if app.Tokens.contains(s.ua) {
			return app.Label
		}
	}

	// A mail referrer alone does not turn plain Safari into a mail client.
	if !safariPattern.match(s.ua) && s.detectGmailApp() {
		if p, ok := mailProviderFor(s.referrer); ok {
			return p.Label
		}
		return LabelGmail
	}

	switch {
	case edgePattern.match(s.ua):
		return LabelEdge
	case duckDuckGoPattern.match(s.ua):
		return LabelDuckDuckGo
	case bravePattern.match(s.ua) || s.env.braveHook():
		return LabelBrave
	case strings.Contains(s.ua, tokenIOSChrome):
		return LabelChrome
	case s.hasChrome && !s.hasWV && !operaPattern.match(s.ua) && !vivaldiPattern.match(s.ua):
		return LabelChrome
	case firefoxPattern.match(s.ua):
		return LabelFirefox
	case safariPattern.match(s.ua):
		return LabelSafari
	case operaPattern.match(s.ua):
		return LabelOpera
	case vivaldiPattern.match(s.ua):
		return LabelVivaldi
	}

	if s.detectWebView() {
		return LabelWebView
	}
	return LabelUnknown
}
