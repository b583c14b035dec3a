package intrapred

import "testing"

// newTestEdge builds an EdgeBuf[T] backed by a freshly allocated slice, with
// tl at the corner, top[0..] running rightward, and left[0..] running
// downward, matching §3's addressing convention. Both top and left should be
// supplied long enough for whatever mode/geometry the test exercises (the
// routines under test read exactly as far as §3/§9 document and no
// further).
func newTestEdge[T Sample](tl T, top, left []T) EdgeBuf[T] {
	n := len(left)
	buf := make([]T, n+1+len(top))
	for i, v := range left {
		buf[n-1-i] = v
	}
	buf[n] = tl
	copy(buf[n+1:], top)
	return NewEdgeBuf(buf, n)
}

// newTestBlock allocates a fresh W x H destination block with stride W.
func newTestBlock[T Sample](w, h int) Block[T] {
	return Block[T]{Buf: make([]T, w*h), Off: 0, Stride: w}
}

func blockRows[T Sample](b Block[T], w, h int) [][]T {
	rows := make([][]T, h)
	for y := 0; y < h; y++ {
		row := make([]T, w)
		for x := 0; x < w; x++ {
			row[x] = b.Get(x, y)
		}
		rows[y] = row
	}
	return rows
}

func TestAngleWordRoundTrip(t *testing.T) {
	cases := []struct {
		value    int
		isSmooth bool
	}{
		{0, false}, {45, true}, {511, false}, {511, true}, {3, true},
	}
	for _, c := range cases {
		w := NewAngleWord(c.value, c.isSmooth)
		if got := w.Angle(); got != c.value {
			t.Errorf("NewAngleWord(%d,%v).Angle() = %d, want %d", c.value, c.isSmooth, got, c.value)
		}
		if got := w.FilterIdx(); got != c.value {
			t.Errorf("NewAngleWord(%d,%v).FilterIdx() = %d, want %d", c.value, c.isSmooth, got, c.value)
		}
		if got := w.IsSmooth(); got != c.isSmooth {
			t.Errorf("NewAngleWord(%d,%v).IsSmooth() = %v, want %v", c.value, c.isSmooth, got, c.isSmooth)
		}
	}
}

func TestModeString(t *testing.T) {
	if got := DCPred.String(); got != "DC_PRED" {
		t.Errorf("DCPred.String() = %q, want DC_PRED", got)
	}
	if got := FilterPred.String(); got != "FILTER_PRED" {
		t.Errorf("FilterPred.String() = %q, want FILTER_PRED", got)
	}
	if got := Mode(999).String(); got != "UNKNOWN_PRED" {
		t.Errorf("Mode(999).String() = %q, want UNKNOWN_PRED", got)
	}
}

func TestEdgeBufAddressing(t *testing.T) {
	edge := newTestEdge[uint8](7, []uint8{1, 2, 3, 4}, []uint8{5, 6, 7, 8})
	if got := edge.At(0); got != 7 {
		t.Errorf("At(0) = %d, want 7 (TL)", got)
	}
	for i, want := range []uint8{1, 2, 3, 4} {
		if got := edge.At(1 + i); got != want {
			t.Errorf("At(%d) = %d, want %d", 1+i, got, want)
		}
	}
	for i, want := range []uint8{5, 6, 7, 8} {
		if got := edge.At(-(1 + i)); got != want {
			t.Errorf("At(%d) = %d, want %d", -(1 + i), got, want)
		}
	}
}
