package qoi

import "github.com/pkg/errors"

// Error kinds returned at the Encode/Decode call boundary. None are
// retried internally; callers inspect with errors.Is against these
// sentinels.
var (
	// ErrInvalidDescriptor is returned when a descriptor's width, height,
	// channel count, or colorspace is out of range.
	ErrInvalidDescriptor = errors.New("qoi: invalid image descriptor")

	// ErrBadHeader is returned when a decoded stream is too short, has a
	// bad magic, or has header fields out of range.
	ErrBadHeader = errors.New("qoi: malformed header")

	// ErrInvalidChannels is returned when Decode's requested output
	// channel count is not 0, 3, or 4.
	ErrInvalidChannels = errors.New("qoi: invalid requested channel count")

	// ErrAllocationFailed is returned when an output buffer cannot be
	// sized to its closed-form worst case.
	ErrAllocationFailed = errors.New("qoi: output buffer allocation failed")
)
