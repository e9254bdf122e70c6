package qoi

import "github.com/pkg/errors"

// chunk tag bytes, one per entry in the chunk form table.
const (
	tagIndex byte = 0x00 // 00xxxxxx
	tagDiff  byte = 0x40 // 01xxxxxx
	tagLuma  byte = 0x80 // 10xxxxxx
	tagRun   byte = 0xC0 // 11xxxxxx
	tagRGB   byte = 0xFE
	tagRGBA  byte = 0xFF
)

// maxRun is the largest run length the encoder ever emits; the
// representable 6-bit field holds 1..62, biased by one to 0..61. 62 and 63
// are reserved and must never appear as a run chunk's low 6 bits.
const maxRun = 62

// Encode compresses a raw pixel buffer into a QOI stream. pixels must hold
// exactly width*height*desc.Channels bytes, channel-interleaved, no
// padding. In 3-channel mode every pixel is treated as having alpha 255;
// the input bytes for a 3-channel buffer carry only R, G, B per pixel.
func Encode(pixels []byte, desc Descriptor, opts Options) ([]byte, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	inChannels := int(desc.Channels)
	pixelCount := int(desc.Width) * int(desc.Height)
	wantLen := pixelCount * inChannels
	if len(pixels) != wantLen {
		return nil, errors.Wrap(ErrInvalidDescriptor, "pixel buffer length does not match width*height*channels")
	}

	log := opts.logger()

	maxSize := pixelCount*(inChannels+1) + headerSize + trailerSize
	out := make([]byte, 0, maxSize)
	if cap(out) < maxSize {
		return nil, ErrAllocationFailed
	}
	out = desc.appendHeader(out)

	pred := &predictor{}
	var rgbaChunks, rgbChunks, diffChunks, lumaChunks, indexChunks, runChunks int

	flushRun := func() {
		if pred.run > 0 {
			out = append(out, tagRun|byte(pred.run-1))
			runChunks++
			pred.run = 0
		}
	}

	for i := 0; i < pixelCount; i++ {
		off := i * inChannels
		px := Pixel{R: pixels[off], G: pixels[off+1], B: pixels[off+2]}
		if inChannels == 4 {
			px.A = pixels[off+3]
		} else {
			px.A = 255 // 3-channel pixels are always opaque
		}

		if px == pred.prev {
			pred.run++
			if pred.run == maxRun || i == pixelCount-1 {
				flushRun()
			}
			continue
		}
		flushRun()

		h := hash(px)
		if pred.index[h] == px {
			out = append(out, tagIndex|h)
			indexChunks++
			pred.commitSkipIndex(px) // already stored; no index write needed
			continue
		}
		pred.index[h] = px

		if px.A == pred.prev.A {
			dr := int8(px.R - pred.prev.R)
			dg := int8(px.G - pred.prev.G)
			db := int8(px.B - pred.prev.B)

			if diffInRange(dr) && diffInRange(dg) && diffInRange(db) {
				out = append(out, tagDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2))
				diffChunks++
				pred.prev = px
				continue
			}

			drdg := dr - dg
			dbdg := db - dg
			if lumaGreenInRange(dg) && lumaRBInRange(drdg) && lumaRBInRange(dbdg) {
				out = append(out, tagLuma|byte(dg+32))
				out = append(out, byte(drdg+8)<<4|byte(dbdg+8))
				lumaChunks++
				pred.prev = px
				continue
			}

			out = append(out, tagRGB, px.R, px.G, px.B)
			rgbChunks++
			pred.prev = px
			continue
		}

		out = append(out, tagRGBA, px.R, px.G, px.B, px.A)
		rgbaChunks++
		pred.prev = px
	}

	out = append(out, 0, 0, 0, 0, 0, 0, 0, 0)

	log.Debug("qoi: encode complete", "bytes", len(out), "pixels", pixelCount,
		"rgba", rgbaChunks, "rgb", rgbChunks, "diff", diffChunks,
		"luma", lumaChunks, "index", indexChunks, "run", runChunks)

	return out, nil
}

func diffInRange(d int8) bool      { return d >= -2 && d <= 1 }
func lumaGreenInRange(d int8) bool { return d >= -32 && d <= 31 }
func lumaRBInRange(d int8) bool    { return d >= -8 && d <= 7 }
