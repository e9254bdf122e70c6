// Package qoi implements a lossless raster image codec: a byte-aligned
// container format and a streaming encoder/decoder pair sharing a common
// predictor. Pixel data is three- or four-channel, 8 bits per channel.
//
// Encode and Decode are the two entry points; everything else (the
// predictor, the header codec, the chunk grammar) is shared machinery
// between them. The image.Image adapters (ImageDecode, ImageEncode,
// DecodeConfig) let the format participate in the standard image package
// alongside png, gif, and friends.
package qoi
