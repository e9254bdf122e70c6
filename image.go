package qoi

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

func init() {
	image.RegisterFormat("qoi", magic, decodeImage, decodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) { return ImageDecode(r) }
func decodeConfig(r io.Reader) (image.Config, error) { return DecodeConfig(r) }

// ImageDecode reads a full QOI stream from r and returns it as an
// *image.NRGBA, widened to 4 channels regardless of the stream's declared
// channel count.
func ImageDecode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	pixels, desc, err := Decode(data, 4, Options{})
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, int(desc.Width), int(desc.Height)))
	copy(img.Pix, pixels)
	return img, nil
}

// DecodeConfig reads just the 14-byte header from r and reports the
// image's dimensions without decoding any pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, err
	}
	// parseHeader also requires the trailer to be present; pad with zeros
	// since DecodeConfig never reads chunk data.
	padded := append(buf, make([]byte, trailerSize)...)
	desc, err := parseHeader(padded)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:      int(desc.Width),
		Height:     int(desc.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// opaquer is satisfied by most of the standard library's image types
// (image.NRGBA, image.RGBA, image.Gray, ...): it reports whether every
// pixel's alpha is fully opaque without requiring a per-pixel scan here.
type opaquer interface {
	Opaque() bool
}

// ImageEncode writes img to w as a QOI stream. Images that report full
// opacity (via the standard library's Opaque() convention) are encoded as
// 3-channel; anything else, including images with no Opaque method, is
// encoded as 4-channel RGBA.
func ImageEncode(w io.Writer, img image.Image, opts Options) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	channels := 4
	if o, ok := img.(opaquer); ok && o.Opaque() {
		channels = 3
	}

	pixels := make([]byte, width*height*channels)

	if channels == 4 {
		if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && bounds.Min == (image.Point{}) {
			copy(pixels, nrgba.Pix)
		} else {
			i := 0
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
					pixels[i] = c.R
					pixels[i+1] = c.G
					pixels[i+2] = c.B
					pixels[i+3] = c.A
					i += 4
				}
			}
		}
	} else {
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				pixels[i] = c.R
				pixels[i+1] = c.G
				pixels[i+2] = c.B
				i += 3
			}
		}
	}

	desc := Descriptor{Width: uint32(width), Height: uint32(height), Channels: uint8(channels), Colorspace: ColorspaceSRGB}
	encoded, err := Encode(pixels, desc, opts)
	if err != nil {
		return errors.Wrap(err, "qoi: image encode failed")
	}
	_, err = w.Write(encoded)
	return err
}
