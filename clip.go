package intrapred

// Bit-depth-parameterized clip and rounding helpers. The teacher's
// cliptables.go precomputes fixed-size lookup tables for the single 8-bit
// depth WebP needs (Clip8b's unsigned-compare trick). Since this module
// spans three bit depths at runtime, the same single-branch shape is kept
// but the bound is a parameter instead of a baked-in table size — table
// lookup would need one table per bit depth and buys nothing at this call
// frequency.

// maxSampleValue returns 2^bitDepth - 1.
func maxSampleValue(bitDepth int) int { return (1 << uint(bitDepth)) - 1 }

// clipPixel clips v to [0, 2^bitDepth - 1] and returns it as T.
func clipPixel[T Sample](v, bitDepth int) T {
	max := maxSampleValue(bitDepth)
	if v < 0 {
		return 0
	}
	if v > max {
		return T(max)
	}
	return T(v)
}

// iabs returns the absolute value of v.
func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isign returns -1, 0, or 1 according to the sign of v.
func isign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// ctz returns the number of trailing zero bits of v (v must be nonzero).
func ctz(v int) int {
	n := 0
	for v&1 == 0 {
		v >>= 1
		n++
	}
	return n
}

// clampIndex clamps i to [lo, hi-1], the edge-buffer read clamping used by
// filterEdge and upsampleEdge (§4.A: "Reads outside [from, to) are clamped
// to the nearest in-range index").
func clampIndex(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi-1 {
		return hi - 1
	}
	return i
}
