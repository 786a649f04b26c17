package binder

import "net/http"

// Query returns a binder for URL query parameters.
//
// Supported tags:
//   - `query:"name"` binds parameter "name"
//   - `query:"-"` skips the field
//
// Fields without a tag bind the lowercased field name. Supported kinds are
// strings, integers, floats, booleans, pointers to those (nil when absent)
// and slices (repeated or comma-separated values).
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery); err != nil {
			return err
		}
		sanitizeValue(reflectValue(v))
		return nil
	}
}
