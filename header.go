package qoi

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

const (
	magic        = "qoif"
	headerSize   = 14
	trailerSize  = 8
	minStreamLen = headerSize + trailerSize
)

// Colorspace tags the informative colorspace byte in the header. It never
// affects codec behavior.
type Colorspace uint8

const (
	ColorspaceSRGB   Colorspace = 0 // sRGB with linear alpha.
	ColorspaceLinear Colorspace = 1 // all channels linear.
)

// Descriptor describes the image a stream encodes or is expected to
// decode to: its dimensions, source channel count, and colorspace tag.
type Descriptor struct {
	Width      uint32
	Height     uint32
	Channels   uint8 // 3 or 4.
	Colorspace Colorspace
}

// Validate reports ErrInvalidDescriptor if width, height, channels, or
// colorspace are out of range.
func (d Descriptor) Validate() error {
	switch {
	case d.Width == 0:
		return errors.Wrap(ErrInvalidDescriptor, "width is zero")
	case d.Height == 0:
		return errors.Wrap(ErrInvalidDescriptor, "height is zero")
	case d.Channels != 3 && d.Channels != 4:
		return errors.Wrap(ErrInvalidDescriptor, fmt.Sprintf("channels must be 3 or 4, got %d", d.Channels))
	case d.Colorspace > 1:
		return errors.Wrap(ErrInvalidDescriptor, fmt.Sprintf("colorspace must be 0 or 1, got %d", d.Colorspace))
	}
	return nil
}

// appendHeader appends the 14-byte serialized header to buf.
func (d Descriptor) appendHeader(buf []byte) []byte {
	buf = append(buf, magic...)
	buf = binary.BigEndian.AppendUint32(buf, d.Width)
	buf = binary.BigEndian.AppendUint32(buf, d.Height)
	buf = append(buf, d.Channels, uint8(d.Colorspace))
	return buf
}

// parseHeader parses and validates the 14-byte header from the front of
// data, requiring the full stream (header + at least the 8-byte trailer)
// to be present.
func parseHeader(data []byte) (Descriptor, error) {
	if len(data) < minStreamLen {
		return Descriptor{}, errors.Wrap(ErrBadHeader, fmt.Sprintf("stream is %d bytes, need at least %d", len(data), minStreamLen))
	}
	if string(data[0:4]) != magic {
		return Descriptor{}, errors.Wrap(ErrBadHeader, fmt.Sprintf("bad magic %q", data[0:4]))
	}

	d := Descriptor{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: Colorspace(data[13]),
	}

	switch {
	case d.Width == 0:
		return Descriptor{}, errors.Wrap(ErrBadHeader, "width is zero")
	case d.Height == 0:
		return Descriptor{}, errors.Wrap(ErrBadHeader, "height is zero")
	case d.Channels != 3 && d.Channels != 4:
		return Descriptor{}, errors.Wrap(ErrBadHeader, fmt.Sprintf("channels must be 3 or 4, got %d", d.Channels))
	case d.Colorspace > 1:
		return Descriptor{}, errors.Wrap(ErrBadHeader, fmt.Sprintf("colorspace must be 0 or 1, got %d", d.Colorspace))
	}

	return d, nil
}
