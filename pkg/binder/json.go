package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the maximum accepted JSON body size (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON returns a binder for application/json request bodies. Unknown fields,
// trailing data and bodies larger than DefaultMaxJSONSize are rejected.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		sanitizeValue(reflectValue(v))
		return nil
	}
}
