package qoi

// Pixel is a single four-channel 8-bit-per-channel color sample. Equality
// is plain struct comparison over the four components — no reliance on any
// overlapping memory representation.
type Pixel struct {
	R, G, B, A uint8
}

// hash returns the 6-bit slot a pixel maps to in the predictor's index
// table. Arithmetic wraps at 8 bits; only the low 6 bits of the result are
// meaningful, which the mod-64 already guarantees.
func hash(px Pixel) uint8 {
	return (px.R*3 + px.G*5 + px.B*7 + px.A*11) % 64
}
