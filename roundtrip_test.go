package qoi_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kriticalflare/qoicodec"
)

// genPixels deterministically fills a width*height*channels buffer with a
// varied mix of runs, near-duplicate neighbors (DIFF/LUMA candidates), and
// wide jumps (RGB/RGBA candidates) so round-trip tests exercise every
// chunk form.
func genPixels(width, height, channels int) []byte {
	buf := make([]byte, width*height*channels)
	var r, g, b, a byte = 10, 20, 30, 255
	for i := 0; i < width*height; i++ {
		switch i % 7 {
		case 0, 1: // hold steady -> encourages a run
		case 2:
			r += 1
			g -= 1 // small diff
		case 3:
			r += 20
			g += 20
			b += 20 // luma-range jump
		case 4:
			r, g, b = byte(i*37), byte(i*59), byte(i*83) // wide jump -> RGB
		case 5:
			if channels == 4 {
				a = byte(255 - i)
			}
		case 6:
			r, g, b = 10, 20, 30 // back to an earlier seen pixel -> INDEX candidate
			if channels == 4 {
				a = 255
			}
		}
		off := i * channels
		buf[off], buf[off+1], buf[off+2] = r, g, b
		if channels == 4 {
			buf[off+3] = a
		}
	}
	return buf
}

// A 4-channel round-trip is byte-for-byte exact.
func TestRoundTripFourChannel(t *testing.T) {
	desc := qoi.Descriptor{Width: 17, Height: 13, Channels: 4, Colorspace: 1}
	pixels := genPixels(17, 13, 4)

	encoded, err := qoi.Encode(pixels, desc, qoi.Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, gotDesc, err := qoi.Decode(encoded, 4, qoi.Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(desc, gotDesc); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Equal(pixels, decoded) {
		t.Fatalf("round-trip mismatch: got %d bytes, want %d bytes", len(decoded), len(pixels))
	}
}

// A 3-channel round-trip is byte-for-byte exact.
func TestRoundTripThreeChannel(t *testing.T) {
	desc := qoi.Descriptor{Width: 9, Height: 21, Channels: 3, Colorspace: 0}
	pixels := genPixels(9, 21, 3)

	encoded, err := qoi.Encode(pixels, desc, qoi.Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, gotDesc, err := qoi.Decode(encoded, 3, qoi.Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(desc, gotDesc); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Equal(pixels, decoded) {
		t.Fatalf("round-trip mismatch: got %d bytes, want %d bytes", len(decoded), len(pixels))
	}
}

// The trailer is exactly eight 0x00 bytes, and no interior run of 8
// consecutive zero bytes occurs (a decoder relies on the trailer being
// the only such run to cheaply spot the end of the stream).
func TestTrailerExactAndNoInteriorFalsePositive(t *testing.T) {
	desc := qoi.Descriptor{Width: 33, Height: 7, Channels: 4, Colorspace: 0}
	pixels := genPixels(33, 7, 4)

	encoded, err := qoi.Encode(pixels, desc, qoi.Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tail := encoded[len(encoded)-8:]
	for i, b := range tail {
		if b != 0 {
			t.Fatalf("trailer byte %d = %#02x, want 0x00", i, b)
		}
	}

	body := encoded[14 : len(encoded)-8]
	zeroRun := 0
	for _, b := range body {
		if b == 0 {
			zeroRun++
			if zeroRun >= 8 {
				t.Fatalf("found an interior run of >= 8 zero bytes")
			}
		} else {
			zeroRun = 0
		}
	}
}

// The first 14 bytes of any encode output are exactly the serialized
// descriptor.
func TestHeaderBytesExact(t *testing.T) {
	desc := qoi.Descriptor{Width: 5, Height: 6, Channels: 4, Colorspace: 1}
	pixels := genPixels(5, 6, 4)

	encoded, err := qoi.Encode(pixels, desc, qoi.Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []byte{
		'q', 'o', 'i', 'f',
		0, 0, 0, 5,
		0, 0, 0, 6,
		4, 1,
	}
	if !bytes.Equal(encoded[:14], want) {
		t.Fatalf("header = %X, want %X", encoded[:14], want)
	}
}

// No emitted RUN chunk ever carries a low-6-bit value of 62 or 63 — those
// are reserved and would collide with the RGB/RGBA tag bytes.
func TestRunChunksNeverCarryReservedValues(t *testing.T) {
	width, height := 1, 300
	pixels := make([]byte, width*height*4)
	for i := range pixels {
		pixels[i] = 0 // one enormous run, forces repeated RUN chunk flushing
	}
	desc := qoi.Descriptor{Width: uint32(width), Height: uint32(height), Channels: 4, Colorspace: 0}

	encoded, err := qoi.Encode(pixels, desc, qoi.Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	body := encoded[14 : len(encoded)-8]
	for _, b := range body {
		if b&0xC0 == 0xC0 && b != 0xFE && b != 0xFF {
			v := b & 0x3F
			if v == 62 || v == 63 {
				t.Fatalf("RUN chunk carries reserved value %d", v)
			}
		}
	}
}

// Widening a 3-channel stream to 4-channel output yields alpha=255 for
// every pixel.
func TestChannelWideningFillsOpaqueAlpha(t *testing.T) {
	desc := qoi.Descriptor{Width: 4, Height: 4, Channels: 3, Colorspace: 0}
	pixels := genPixels(4, 4, 3)

	encoded, err := qoi.Encode(pixels, desc, qoi.Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, _, err := qoi.Decode(encoded, 4, qoi.Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	pixelCount := int(desc.Width) * int(desc.Height)
	for i := 0; i < pixelCount; i++ {
		if a := decoded[i*4+3]; a != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i, a)
		}
	}
}
