package api

import "errors"

var (
	ErrSelfCheck     = errors.New("classifier self-check failed")
	ErrBatchTooLarge = errors.New("batch too large")
	ErrEmptyBatch    = errors.New("batch is empty")
)
