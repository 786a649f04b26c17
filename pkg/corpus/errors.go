package corpus

import "errors"

var (
	ErrEmptyCorpus = errors.New("corpus has no cases")
	ErrInvalidCase = errors.New("invalid corpus case")
	ErrDecode      = errors.New("failed to decode corpus")
)
