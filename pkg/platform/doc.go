// Package platform extracts the operating system and browser, with their
// versions, from a User-Agent string.
//
// Parse lowercases the input once and matches it against keyword tables, so
// it is allocation-light and safe for concurrent use:
//
//	info := platform.Parse(r.UserAgent())
//	fmt.Println(info) // "Chrome 115.0 on Android 13"
//
// Info keeps the full version strings as found in the UA. String shortens
// them to major.minor for display. Unrecognized parts are reported as
// OSUnknown or BrowserUnknown with empty versions.
package platform
