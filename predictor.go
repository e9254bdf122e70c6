package qoi

// predictor is the reconstructed-pixel context shared, with identical
// update rules, by Encode and Decode: the previous pixel, a 64-slot
// recently-seen table keyed by hash, and the active run length. Its zero
// value is the correct initial state: prev starts at (0,0,0,0) and every
// index slot starts populated with that same zero pixel rather than some
// "empty" marker.
type predictor struct {
	prev  Pixel
	index [64]Pixel
	run   int
}

// commit records px as the most recently produced pixel and stores it in
// its index slot. Decode uses it for RGB, RGBA, DIFF and LUMA chunks;
// Encode writes the same two fields directly.
func (p *predictor) commit(px Pixel) {
	p.index[hash(px)] = px
	p.prev = px
}

// commitSkipIndex records px as the most recently produced pixel without
// touching the index table. Used for an INDEX chunk hit, where the slot
// already holds px. Pixels covered by a run do not pass through the
// predictor at all: prev already equals the repeated pixel.
func (p *predictor) commitSkipIndex(px Pixel) {
	p.prev = px
}
