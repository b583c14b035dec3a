package intrapred

// DC family predictors (§4.B). Splat-then-fill, the same shape as the
// teacher's dc16/dc8uv/dc4 trio (internal/dsp/predict_lossy.go), generalized
// from three fixed geometries to arbitrary W,H and parameterized by bit
// depth for the multiplicative normalization when W != H.

const (
	dcMul1x2BD8  = 0x5556
	dcMul1x4BD8  = 0x3334
	dcShiftBD8   = 16
	dcMul1x2High = 0xAAAB
	dcMul1x4High = 0x6667
	dcShiftHigh  = 17
)

// splatDC writes dc to every sample of the W x H block (§4.B splat_dc).
func splatDC[T Sample](dst Block[T], w, h, dc, bitDepth int) {
	assertDCInRange(dc, bitDepth)
	v := T(dc)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, v)
		}
	}
}

// ipredDC implements DC_PRED: average of both neighbor sides, with the
// width/height normalization of §4.B.
func ipredDC[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	sum := (w + h) / 2
	for i := 1; i <= w; i++ {
		sum += int(edge.At(i))
	}
	for i := 1; i <= h; i++ {
		sum += int(edge.At(-i))
	}
	dc := sum >> ctz(w+h)
	if w != h {
		mul, shift := dcMul1x2BD8, dcShiftBD8
		if bitDepth > 8 {
			mul, shift = dcMul1x2High, dcShiftHigh
		}
		if maxInt(w, h) > 2*minInt(w, h) {
			if bitDepth > 8 {
				mul = dcMul1x4High
			} else {
				mul = dcMul1x4BD8
			}
		}
		dc = (dc * mul) >> uint(shift)
	}
	splatDC(dst, w, h, dc, bitDepth)
}

// ipredDCTop implements TOP_DC_PRED: average of the row above only.
func ipredDCTop[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	sum := w / 2
	for i := 1; i <= w; i++ {
		sum += int(edge.At(i))
	}
	dc := sum >> ctz(w)
	splatDC(dst, w, h, dc, bitDepth)
}

// ipredDCLeft implements LEFT_DC_PRED: average of the column to the left only.
func ipredDCLeft[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	sum := h / 2
	for i := 1; i <= h; i++ {
		sum += int(edge.At(-i))
	}
	dc := sum >> ctz(h)
	splatDC(dst, w, h, dc, bitDepth)
}

// ipredDC128 implements DC_128_PRED: constant mid-gray splat, independent of
// the edge buffer.
func ipredDC128[T Sample](dst Block[T], _ EdgeBuf[T], w, h, bitDepth int, _ AngleWord) {
	splatDC(dst, w, h, 1<<uint(bitDepth-1), bitDepth)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
