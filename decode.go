package qoi

import "github.com/pkg/errors"

// Decode parses a QOI stream and reconstructs its pixel data. outChannels
// selects the output layout: 0 uses the stream's own channel count, 3
// drops alpha, 4 always includes it (widening a 3-channel stream fills
// alpha with 255).
func Decode(data []byte, outChannels int, opts Options) ([]byte, Descriptor, error) {
	if outChannels != 0 && outChannels != 3 && outChannels != 4 {
		return nil, Descriptor{}, errors.Wrap(ErrInvalidChannels, "out_channels must be 0, 3, or 4")
	}

	desc, err := parseHeader(data)
	if err != nil {
		return nil, Descriptor{}, err
	}

	if outChannels == 0 {
		outChannels = int(desc.Channels)
	}
	log := opts.logger()

	pixelCount := int(desc.Width) * int(desc.Height)
	wantLen := pixelCount * outChannels
	out := make([]byte, wantLen)
	if cap(out) < wantLen {
		return nil, Descriptor{}, ErrAllocationFailed
	}

	pred := &predictor{}
	chunksEnd := len(data) - trailerSize
	cursor := headerSize
	truncated := false

	for i := 0; i < pixelCount; i++ {
		switch {
		case pred.run > 0:
			pred.run--

		case cursor < chunksEnd:
			b1 := data[cursor]
			cursor++

			switch {
			case b1 == tagRGBA:
				if !fits(data, cursor, 4) {
					truncated = true
					cursor = chunksEnd
					break
				}
				px := Pixel{R: data[cursor], G: data[cursor+1], B: data[cursor+2], A: data[cursor+3]}
				cursor += 4
				pred.commit(px)

			case b1 == tagRGB:
				if !fits(data, cursor, 3) {
					truncated = true
					cursor = chunksEnd
					break
				}
				px := Pixel{R: data[cursor], G: data[cursor+1], B: data[cursor+2], A: pred.prev.A}
				cursor += 3
				pred.commit(px)

			case b1>>6 == 0: // QOI_OP_INDEX
				px := pred.index[b1]
				pred.commitSkipIndex(px)

			case b1>>6 == 1: // QOI_OP_DIFF
				px := Pixel{
					R: pred.prev.R + ((b1>>4)&3) - 2,
					G: pred.prev.G + ((b1>>2)&3) - 2,
					B: pred.prev.B + (b1&3) - 2,
					A: pred.prev.A,
				}
				pred.commit(px)

			case b1>>6 == 2: // QOI_OP_LUMA
				if !fits(data, cursor, 1) {
					truncated = true
					cursor = chunksEnd
					break
				}
				b2 := data[cursor]
				cursor++
				dg := (b1 & 0x3F) - 32
				px := Pixel{
					G: pred.prev.G + dg,
					R: pred.prev.R + dg - 8 + ((b2>>4)&0xF),
					B: pred.prev.B + dg - 8 + (b2 & 0xF),
					A: pred.prev.A,
				}
				pred.commit(px)

			default: // QOI_OP_RUN
				pred.run = int(b1 & 0x3F)
			}

		default:
			// Chunk stream exhausted before all pixels were produced.
			// Treat this as a truncated-but-recoverable stream rather
			// than a hard failure: hold the last reconstructed pixel
			// for the remainder of the image.
			truncated = true
		}

		writePixel(out, i, outChannels, pred.prev)
	}

	if truncated {
		log.Warning("qoi: chunk stream exhausted before all pixels were produced; padding with last pixel")
	}
	log.Debug("qoi: decode complete", "pixels", pixelCount, "out_channels", outChannels)

	return out, desc, nil
}

// fits reports whether n more bytes are available at pos without running
// past the end of the buffer (the trailer's zero bytes are safe to read
// into; running past the whole buffer is not).
func fits(data []byte, pos, n int) bool {
	return pos+n <= len(data)
}

func writePixel(dst []byte, index, channels int, px Pixel) {
	off := index * channels
	dst[off] = px.R
	dst[off+1] = px.G
	dst[off+2] = px.B
	if channels == 4 {
		dst[off+3] = px.A
	}
}
