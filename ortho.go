package intrapred

// Orthogonal/smooth family (§4.C). ipredV/ipredH are the direct generalization
// of the teacher's ve16/ve8uv/ve4 and he16/he8uv/he4 (internal/dsp/predict_lossy.go)
// from fixed geometries to arbitrary W,H. ipredPaeth generalizes tm16/tm8uv/tm4
// (VP8's TrueMotion predictor, which is exactly AV1's Paeth predictor: L+T-TL
// base with nearest-neighbor selection replacing TrueMotion's clamped
// subtraction). The Smooth family has no VP8 analog in predict_lossy.go; its
// weighted blend of all four neighbor extremes is grounded instead on
// predict_lossless.go's Average2/Average3/Average4 weighted-neighbor-blend
// style, generalized from fixed 50/50 (or 25% each) weights to the per-position
// sm_weights table.

// ipredV implements VERT_PRED: each row is a copy of the row above.
func ipredV[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, edge.At(1+x))
		}
	}
}

// ipredH implements HOR_PRED: each column is a copy of the column to the left.
func ipredH[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	for y := 0; y < h; y++ {
		v := edge.At(-(y + 1))
		for x := 0; x < w; x++ {
			dst.Set(x, y, v)
		}
	}
}

// ipredPaeth implements PAETH_PRED (§4.C): for each pixel, pick whichever of
// L, T, TL lies closest to L+T-TL.
func ipredPaeth[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	tl := int(edge.At(0))
	for y := 0; y < h; y++ {
		l := int(edge.At(-(y + 1)))
		for x := 0; x < w; x++ {
			t := int(edge.At(1 + x))
			b := l + t - tl
			pl, pt, ptl := iabs(l-b), iabs(t-b), iabs(tl-b)
			var v int
			switch {
			case pl <= pt && pl <= ptl:
				v = l
			case pt <= ptl:
				v = t
			default:
				v = tl
			}
			dst.Set(x, y, T(v))
		}
	}
}

// smoothWeights returns the sm_weights row for the given block dimension
// (§4.C, table values in tables.go).
func smoothWeights(n int) []int { return smWeights[n] }

// ipredSmooth implements SMOOTH_PRED: blend of all four neighbor extremes
// weighted by position (§4.C).
func ipredSmooth[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	wv := smoothWeights(w)
	hv := smoothWeights(h)
	right := int(edge.At(w))
	bottom := int(edge.At(-h))
	for y := 0; y < h; y++ {
		wvY := hv[y]
		left := int(edge.At(-(1 + y)))
		for x := 0; x < w; x++ {
			top := int(edge.At(1 + x))
			whX := wv[x]
			pred := wvY*top + (256-wvY)*bottom + whX*left + (256-whX)*right
			dst.Set(x, y, T((pred+256)>>9))
		}
	}
}

// ipredSmoothV implements SMOOTH_V_PRED: vertical-only half of the Smooth blend.
func ipredSmoothV[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	hv := smoothWeights(h)
	bottom := int(edge.At(-h))
	for y := 0; y < h; y++ {
		wvY := hv[y]
		for x := 0; x < w; x++ {
			top := int(edge.At(1 + x))
			pred := wvY*top + (256-wvY)*bottom
			dst.Set(x, y, T((pred+128)>>8))
		}
	}
}

// ipredSmoothH implements SMOOTH_H_PRED: horizontal-only half of the Smooth blend.
func ipredSmoothH[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	wv := smoothWeights(w)
	right := int(edge.At(w))
	for y := 0; y < h; y++ {
		left := int(edge.At(-(1 + y)))
		for x := 0; x < w; x++ {
			whX := wv[x]
			pred := whX*left + (256-whX)*right
			dst.Set(x, y, T((pred+128)>>8))
		}
	}
}
