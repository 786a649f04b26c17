// Package inapp tells in-app browsers (WebViews embedded in native apps such
// as Facebook, Instagram or Gmail) apart from standalone browsers.
//
// The only inputs are the ones client-side script can see: the user agent,
// the document referrer and a few optional runtime probes (window geometry,
// display-mode, vendor navigator hooks). Classify combines them into a
// Verdict with an in-app flag and a human-readable browser label.
//
// # Architecture
//
// Classification is a pure function. Static lookup tables (tables.go) hold
// the app tokens, WebView markers, regular-browser patterns and mail-client
// referrers. classify.go runs the ordered decision tree, consulting the
// WebView sub-detector (webview.go) and the Gmail sub-detector (gmail.go);
// label.go resolves the browser label with the same priorities.
//
//	UA, referrer, *Probe
//	        │
//	        ▼
//	regular browser? ──yes──► not in-app
//	standalone / desktop? ──► not in-app
//	explicit tokens ────────► in-app
//	WebView / Custom Tab / Gmail heuristics
//	plain Chrome? ──────────► not in-app
//	known app token ────────► in-app
//
// Ambient globals never reach the engine. Hosts read window, navigator and
// document once and pass the values in a Probe; every Probe field is
// optional and a missing value counts as a negative signal.
//
// # Usage
//
//	v := inapp.Classify(r.UserAgent(), r.Referer(), nil)
//	if v.InApp {
//	    // show an "open in browser" hint naming v.Label
//	}
//
// With probe values collected by the page:
//
//	probe := inapp.ProbeFromQuery(r.URL.Query())
//	v := inapp.Classify(ua, referrer, probe)
//
// HTTP servers can classify every request with Middleware and read the
// result back with FromContext. LoggerExtractor adds the verdict to slog
// records.
//
// # Error Handling
//
// Classify never fails. Empty or garbage input yields InApp=false and
// LabelUnknown, the safe default for UI gating.
//
// # Limitations
//
// This is a heuristic classifier. It is not resilient to deliberate UA
// spoofing, and the Custom Tab geometry rule is a last-resort guess.
package inapp
