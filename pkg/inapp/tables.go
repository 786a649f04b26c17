package inapp

import (
	"regexp"
	"strings"
)

// keywordSet is a list of lowercase substrings tested with strings.Contains.
type keywordSet []string

func (k keywordSet) contains(s string) bool {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Substrings that identify a native application shell in a lowercased UA.
var knownInAppTokens = keywordSet{
	"fban", "fbav", "fb_iab", "fbios", "fb4a",
	"twitter",
	"instagram",
	"linkedinapp",
	"line/",
	"whatsapp",
	"snapchat",
	"pinterest",
	"slack",
	"discord",
	"telegram",
	"viber",
	"micromessenger",
	"qq/",
	tokenGSA,
}

const (
	tokenGSA       = "gsa/"
	tokenChrome    = "chrome"
	tokenIOSChrome = "crios"
	tokenAndroid   = "android"
)

var (
	// wvTokenRegex matches the standalone "wv" marker Android WebViews put in
	// the platform section, e.g. "(Linux; Android 10; SM-G975F; wv)".
	wvTokenRegex = regexp.MustCompile(`\bwv\b`)

	// webViewEngineMarkers are vendor WebView engine markers that are not tied
	// to a particular host application.
	webViewEngineMarkers = keywordSet{"webview", "crosswalk"}

	versionTokenRegex = regexp.MustCompile(`version/[\d.]+`)
	chromeTokenRegex  = regexp.MustCompile(`chrome/[\d.]+`)

	mobileUARegex = regexp.MustCompile(`android|iphone|ipad|ipod|iemobile|windows phone|blackberry|bb10|opera mini|mobile safari|kaios|harmonyos`)
	iosUARegex    = regexp.MustCompile(`iphone|ipad|ipod`)
	gmailOSRegex  = regexp.MustCompile(`android|iphone|ipad|ipod`)

	androidAppReferrerRegex = regexp.MustCompile(`^android-app://`)
)

// browserPattern matches a regular (non-embedded) browser: every keyword set
// must hit at least once and no exclude may be present.
type browserPattern struct {
	Label    string
	Keywords keywordSet
	Excludes keywordSet
	// ExcludeWV disqualifies UAs carrying the standalone "wv" token.
	ExcludeWV bool
}

func (p browserPattern) match(lowerUA string) bool {
	if !p.Keywords.contains(lowerUA) {
		return false
	}
	if p.Excludes.contains(lowerUA) {
		return false
	}
	if p.ExcludeWV && wvTokenRegex.MatchString(lowerUA) {
		return false
	}
	return true
}

var (
	safariPattern = browserPattern{
		Label:     LabelSafari,
		Keywords:  keywordSet{"safari"},
		Excludes:  keywordSet{tokenChrome, tokenIOSChrome, tokenGSA, tokenAndroid},
		ExcludeWV: true,
	}
	edgePattern = browserPattern{
		Label:    LabelEdge,
		Keywords: keywordSet{"edg/", "edge/", "edga/", "edgios/"},
	}
	firefoxPattern = browserPattern{
		Label:    LabelFirefox,
		Keywords: keywordSet{"firefox/", "fxios/"},
	}
	operaPattern = browserPattern{
		Label:    LabelOpera,
		Keywords: keywordSet{"opr/", "opera", "opios/", "opt/"},
	}
	duckDuckGoPattern = browserPattern{
		Label:    LabelDuckDuckGo,
		Keywords: keywordSet{"duckduckgo", "ddg/"},
	}
	bravePattern = browserPattern{
		Label:    LabelBrave,
		Keywords: keywordSet{"brave"},
	}
	vivaldiPattern = browserPattern{
		Label:    LabelVivaldi,
		Keywords: keywordSet{"vivaldi"},
	}
)

// regularBrowserPatterns are browsers that are never in-app, mobile or desktop.
var regularBrowserPatterns = []browserPattern{
	safariPattern,
	edgePattern,
	firefoxPattern,
	operaPattern,
	duckDuckGoPattern,
	bravePattern,
	vivaldiPattern,
}

// webViewExclusions are the Chromium-embedding browsers the WebView
// sub-detector refuses to report, Safari excluded.
var webViewExclusions = []browserPattern{
	duckDuckGoPattern,
	edgePattern,
	bravePattern,
	firefoxPattern,
	operaPattern,
	vivaldiPattern,
}

// mailProvider describes a mail client that sets a distinguishing referrer
// when it opens a link.
type mailProvider struct {
	Label    string
	Packages []string
	Hosts    []string
}

var mailProviders = []mailProvider{
	{
		Label:    LabelGmail,
		Packages: []string{"com.google.android.gm"},
		Hosts:    []string{"mail.google.com"},
	},
	{
		Label:    LabelOutlook,
		Packages: []string{"com.microsoft.office.outlook"},
		Hosts:    []string{"outlook.live.com", "outlook.office.com", "outlook.office365.com"},
	},
	{
		Label:    LabelYahooMail,
		Packages: []string{"com.yahoo.mobile.client.android.mail"},
		Hosts:    []string{"mail.yahoo.com"},
	},
	{
		Label:    LabelProtonMail,
		Packages: []string{"ch.protonmail.android"},
		Hosts:    []string{"mail.proton.me", "mail.protonmail.com"},
	},
	{
		Label:    LabelZohoMail,
		Packages: []string{"com.zoho.mail"},
		Hosts:    []string{"mail.zoho.com", "mail.zoho.eu"},
	},
	{
		Label:    LabelYandexMail,
		Packages: []string{"ru.yandex.mail"},
		Hosts:    []string{"mail.yandex.ru", "mail.yandex.com"},
	},
	{
		Label:    LabelAOLMail,
		Packages: []string{"com.aol.mobile.aolapp"},
		Hosts:    []string{"mail.aol.com"},
	},
	{
		Label:    LabelMailRu,
		Packages: []string{"ru.mail.mailapp"},
		Hosts:    []string{"e.mail.ru", "mail.ru"},
	},
	{
		Label:    LabelFastmail,
		Packages: []string{"com.fastmail.app"},
		Hosts:    []string{"app.fastmail.com", "www.fastmail.com"},
	},
	{
		Label:    LabelHey,
		Packages: []string{"com.basecamp.hey"},
		Hosts:    []string{"app.hey.com"},
	},
}

// appLabel maps in-app tokens to labels, checked in order.
type appLabel struct {
	Label  string
	Tokens keywordSet
}

var appLabels = []appLabel{
	{LabelFacebook, keywordSet{"fban", "fbav", "fb_iab", "fbios", "fb4a"}},
	{LabelTwitter, keywordSet{"twitter"}},
	{LabelInstagram, keywordSet{"instagram"}},
	{LabelLinkedIn, keywordSet{"linkedinapp"}},
	{LabelSnapchat, keywordSet{"snapchat"}},
	{LabelWhatsApp, keywordSet{"whatsapp"}},
	{LabelLine, keywordSet{"line/"}},
	{LabelDiscord, keywordSet{"discord"}},
	{LabelTelegram, keywordSet{"telegram"}},
	{LabelPinterest, keywordSet{"pinterest"}},
	{LabelSlack, keywordSet{"slack"}},
	{LabelViber, keywordSet{"viber"}},
	{LabelWeChat, keywordSet{"micromessenger"}},
	{LabelQQ, keywordSet{"qq/"}},
}
