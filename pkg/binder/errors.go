package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)
