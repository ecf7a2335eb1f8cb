package cpi

import "errors"

import "github.com/tinne26/cpi/internal"

// Error kinds reported by this package. All of them are fatal for the
// run in which they are detected; wrapped values remain classifiable
// through errors.Is.
var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrTruncated         = internal.ErrTruncated
	ErrInvalidRange      = errors.New("invalid range")
	ErrInvalidRangeOrder = errors.New("ending range can not be smaller than starting range")
	ErrOutputUnavailable = errors.New("could not open output")
)
