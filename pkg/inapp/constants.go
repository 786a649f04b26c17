package inapp

// Browser labels returned in Verdict.Label.
const (
	// LabelGoogleApp identifies the Google Search App (GSA) WebView
	LabelGoogleApp = "Google App"

	// LabelFacebook identifies the Facebook and Messenger in-app browsers
	LabelFacebook = "Facebook"

	LabelTwitter   = "Twitter"
	LabelInstagram = "Instagram"
	LabelLinkedIn  = "LinkedIn"
	LabelSnapchat  = "Snapchat"
	LabelWhatsApp  = "WhatsApp"
	LabelLine      = "Line"
	LabelDiscord   = "Discord"
	LabelTelegram  = "Telegram"
	LabelPinterest = "Pinterest"
	LabelSlack     = "Slack"
	LabelViber     = "Viber"
	LabelWeChat    = "WeChat"
	LabelQQ        = "QQ"

	// LabelGmail identifies the Gmail app, and Android WebViews that the
	// Gmail sub-detector cannot tell apart from it
	LabelGmail = "Gmail"

	LabelOutlook    = "Outlook"
	LabelYahooMail  = "Yahoo Mail"
	LabelProtonMail = "Proton Mail"
	LabelZohoMail   = "Zoho Mail"
	LabelYandexMail = "Yandex Mail"
	LabelAOLMail    = "AOL Mail"
	LabelMailRu     = "Mail.ru"
	LabelFastmail   = "Fastmail"
	LabelHey        = "Hey"

	LabelEdge       = "Edge"
	LabelDuckDuckGo = "DuckDuckGo"
	LabelBrave      = "Brave"
	LabelChrome     = "Chrome"
	LabelFirefox    = "Firefox"
	LabelSafari     = "Safari"
	LabelOpera      = "Opera"
	LabelVivaldi    = "Vivaldi"

	// LabelWebView identifies a generic embedded WebView with no known host app
	LabelWebView = "WebView"

	// LabelUnknown is used when no rule matches
	LabelUnknown = "Unknown Browser"
)

// Labels returns the full label enumeration in resolution order.
func Labels() []string {
	return []string{
		LabelGoogleApp, LabelFacebook, LabelTwitter, LabelInstagram, LabelLinkedIn,
		LabelSnapchat, LabelWhatsApp, LabelLine, LabelDiscord, LabelTelegram,
		LabelPinterest, LabelSlack, LabelViber, LabelWeChat, LabelQQ,
		LabelGmail, LabelOutlook, LabelYahooMail, LabelProtonMail, LabelZohoMail,
		LabelYandexMail, LabelAOLMail, LabelMailRu, LabelFastmail, LabelHey,
		LabelEdge, LabelDuckDuckGo, LabelBrave, LabelChrome, LabelFirefox,
		LabelSafari, LabelOpera, LabelVivaldi, LabelWebView, LabelUnknown,
	}
}

// Reason names the rule that decided a verdict.
type Reason string

const (
	ReasonEmptyUserAgent Reason = "empty_user_agent"
	ReasonRegularBrowser Reason = "regular_browser"
	ReasonStandalone     Reason = "standalone_display_mode"
	ReasonNotMobile      Reason = "not_mobile"
	ReasonExplicitToken  Reason = "chromium_explicit_token"
	ReasonWebView        Reason = "webview"
	ReasonCustomTab      Reason = "chrome_custom_tab"
	ReasonMailApp        Reason = "mail_app"
	ReasonPlainChrome    Reason = "plain_chrome"
	ReasonKnownAppToken  Reason = "known_app_token"
	ReasonSafari         Reason = "safari"
	ReasonNoSignal       Reason = "no_signal"
)
