package qoi

import "testing"

func TestPredictorInitialState(t *testing.T) {
	var p predictor
	if p.prev != (Pixel{}) {
		t.Fatalf("initial prev = %+v, want zero pixel", p.prev)
	}
	for i, slot := range p.index {
		if slot != (Pixel{}) {
			t.Fatalf("initial index[%d] = %+v, want zero pixel", i, slot)
		}
	}
	if p.run != 0 {
		t.Fatalf("initial run = %d, want 0", p.run)
	}
}

func TestPredictorCommitStoresIndexAndPrev(t *testing.T) {
	var p predictor
	px := Pixel{R: 10, G: 20, B: 30, A: 255}
	p.commit(px)

	if p.prev != px {
		t.Fatalf("prev = %+v, want %+v", p.prev, px)
	}
	if got := p.index[hash(px)]; got != px {
		t.Fatalf("index[hash(px)] = %+v, want %+v", got, px)
	}
}

// commitSkipIndex is used on an INDEX hit, and must not touch the index
// table even though it advances prev.
func TestPredictorCommitSkipIndexLeavesTableAlone(t *testing.T) {
	var p predictor
	seed := Pixel{R: 1, G: 2, B: 3, A: 4}
	p.index[hash(seed)] = seed

	other := Pixel{R: 9, G: 9, B: 9, A: 9}
	p.commitSkipIndex(other)

	if p.prev != other {
		t.Fatalf("prev = %+v, want %+v", p.prev, other)
	}
	if got := p.index[hash(seed)]; got != seed {
		t.Fatalf("index[hash(seed)] = %+v, want untouched %+v", got, seed)
	}
}
