package inapp

import (
	"net/url"
	"strings"
)

// DetectGmailApp reports whether the context looks like the Gmail app (or
// another mail client that opened the link). Only mobile UAs qualify.
func DetectGmailApp(userAgent, referrer string, env *Probe) bool {
	return newSignals(userAgent, referrer, env).detectGmailApp()
}

func (s signals) detectGmailApp() bool {
	if !gmailOSRegex.MatchString(s.ua) {
		return false
	}
	if isMailReferrer(s.referrer) || strings.Contains(s.ua, tokenGSA) {
		return true
	}
	// Plain mobile Safari is never Gmail.
	if safariPattern.match(s.ua) {
		return false
	}
	if s.isAndroid && s.hasChrome && s.hasWV {
		return s.detectWebView()
	}
	return false
}

// mailProviderFor finds the mail client behind a lowercased referrer. It
// accepts android-app://<package> referrers and web-mail URLs.
func mailProviderFor(referrer string) (mailProvider, bool) {
	if referrer == "" {
		return mailProvider{}, false
	}

	if pkg, ok := strings.CutPrefix(referrer, "android-app://"); ok {
		pkg, _, _ = strings.Cut(pkg, "/")
		for _, p := range mailProviders {
			for _, candidate := range p.Packages {
				if pkg == candidate {
					return p, true
				}
			}
		}
		return mailProvider{}, false
	}

	u, err := url.Parse(referrer)
	if err != nil {
		return mailProvider{}, false
	}
	host := u.Hostname()
	if host == "" {
		return mailProvider{}, false
	}
	for _, p := range mailProviders {
		for _, candidate := range p.Hosts {
			if host == candidate || strings.HasSuffix(host, "."+candidate) {
				return p, true
			}
		}
	}
	return mailProvider{}, false
}

func isMailReferrer(referrer string) bool {
	_, ok := mailProviderFor(referrer)
	return ok
}

func isGmailReferrer(referrer string) bool {
	p, ok := mailProviderFor(referrer)
	return ok && p.Label == LabelGmail
}
