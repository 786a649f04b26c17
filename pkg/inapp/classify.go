package inapp

import "strings"

// Verdict is the result of classifying one browsing context.
type Verdict struct {
	// InApp is true when the page runs inside a native app's WebView.
	InApp bool `json:"in_app"`
	// Label is a human-readable browser name, LabelUnknown when unresolved.
	Label string `json:"browser_label"`
	// Reason names the rule that decided InApp.
	Reason Reason `json:"reason"`
	// UserAgent is the original, case-preserved user agent.
	UserAgent string `json:"-"`
}

// signals holds the normalized inputs shared by every rule of one call.
type signals struct {
	ua        string
	referrer  string
	env       *Probe
	isMobile  bool
	isAndroid bool
	isIOS     bool
	hasChrome bool
	hasWV     bool
}

func newSignals(userAgent, referrer string, env *Probe) signals {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	return signals{
		ua:        ua,
		referrer:  strings.ToLower(strings.TrimSpace(referrer)),
		env:       env,
		isMobile:  mobileUARegex.MatchString(ua),
		isAndroid: strings.Contains(ua, tokenAndroid),
		isIOS:     iosUARegex.MatchString(ua),
		hasChrome: strings.Contains(ua, tokenChrome),
		hasWV:     wvTokenRegex.MatchString(ua),
	}
}

// Classify decides whether userAgent and referrer describe an in-app browser
// and resolves a browser label. env may be nil. The result depends only on
// the arguments, so Classify is safe for concurrent use.
func Classify(userAgent, referrer string, env *Probe) Verdict {
	s := newSignals(userAgent, referrer, env)
	if s.ua == "" {
		return Verdict{Label: LabelUnknown, Reason: ReasonEmptyUserAgent, UserAgent: userAgent}
	}

	inApp, reason := s.decide()
	return Verdict{
		InApp:     inApp,
		Label:     s.label(),
		Reason:    reason,
		UserAgent: userAgent,
	}
}

// IsInApp is shorthand for Classify(...).InApp.
func IsInApp(userAgent, referrer string, env *Probe) bool {
	return Classify(userAgent, referrer, env).InApp
}

// decide runs the in-app decision tree. Rules are ordered from unambiguous
// to noisy; the first one that decides wins.
func (s signals) decide() (bool, Reason) {
	// Recognized regular browsers are never in-app, mobile or desktop.
	if s.isRegularBrowser() {
		return false, ReasonRegularBrowser
	}
	// An installed web app is never in-app, whatever else the UA carries.
	if s.env.standalone() {
		return false, ReasonStandalone
	}
	// In-app WebViews are a mobile phenomenon.
	if !s.isMobile {
		return false, ReasonNotMobile
	}

	hasGSA := strings.Contains(s.ua, tokenGSA)

	// Chromium shells like Gmail and the Google app look exactly like
	// Chrome unless one of these explicit markers is present.
	if s.hasChrome && (hasGSA || s.hasWV || isGmailReferrer(s.referrer)) {
		return true, ReasonExplicitToken
	}

	androidChrome := s.isAndroid && s.hasChrome

	isWebView := false
	if androidChrome {
		isWebView = s.detectWebView()
	}

	// Custom Tabs opened by an app carry an app referrer but no WebView token.
	// Geometry must be known and show no browser UI.
	isCustomTab := androidChrome &&
		androidAppReferrerRegex.MatchString(s.referrer) &&
		s.env.chromeHidden()

	isGmailApp := s.detectGmailApp()

	switch {
	case hasGSA:
		return true, ReasonKnownAppToken
	case isWebView:
		return true, ReasonWebView
	case isCustomTab:
		return true, ReasonCustomTab
	case isGmailApp:
		return true, ReasonMailApp
	}

	hasAppToken := knownInAppTokens.contains(s.ua)

	// Chrome with no WebView token and no app token is plain Chrome.
	if s.hasChrome && !s.hasWV && !hasAppToken {
		return false, ReasonPlainChrome
	}

	if hasAppToken {
		return true, ReasonKnownAppToken
	}

	// Non-Chrome Android WebViews were not examined above.
	if !androidChrome && s.detectWebView() {
		return true, ReasonWebView
	}

	return false, ReasonNoSignal
}

func (s signals) isRegularBrowser() bool {
	if s.env.braveHook() {
		return true
	}
	for _, p := range regularBrowserPatterns {
		if p.match(s.ua) {
			return true
		}
	}
	return false
}
