// Package binder decodes HTTP request data into structs.
//
// JSON reads a strict, size-limited application/json body. Query binds URL
// query parameters using `query:"name"` struct tags; pointer fields stay nil
// when the parameter is absent. Both return a binder function with the
// signature func(*http.Request, any) error.
//
// String fields are sanitized after binding: surrounding whitespace is trimmed
// and control characters other than tab are removed, so user agent strings
// copied from logs or shells bind cleanly.
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is.
package binder
