package intrapred

// Edge conditioner (§4.A): the preprocessing pass applied to a neighbor-pixel
// segment before the directional predictors (§4.D) sample it.
//
// filterEdge's tap-weighted-sum-then-round shape and upsampleEdge's
// even/odd-position split are both grounded in the teacher's
// internal/dsp/upsample.go, which upsamples chroma with exactly this
// even-position-is-a-copy / odd-position-is-a-4-tap-interpolation structure
// (its diamond kernel interpolates in two dimensions at once; this is the
// one-dimensional case).

// filterStrength implements §4.A's get_filter_strength: how hard to smooth
// an edge segment before sampling it, as a function of block size, angular
// distance from the nearest cardinal direction, and the smooth-neighbor
// flag. See DESIGN.md for how the thresholds below were sourced.
func filterStrength(blkWH, d int, isSmooth bool) int {
	if isSmooth {
		switch {
		case blkWH <= 8:
			switch {
			case d >= 64:
				return 2
			case d >= 40:
				return 1
			}
		case blkWH <= 16:
			switch {
			case d >= 48:
				return 2
			case d >= 20:
				return 1
			}
		case blkWH <= 24:
			if d >= 4 {
				return 3
			}
		default: // <=32 and "else" share strength 3 on the smooth side
			return 3
		}
		return 0
	}

	switch {
	case blkWH <= 8:
		if d >= 56 {
			return 1
		}
	case blkWH <= 16:
		if d >= 40 {
			return 1
		}
	case blkWH <= 24:
		switch {
		case d >= 32:
			return 3
		case d >= 16:
			return 2
		case d >= 8:
			return 1
		}
	case blkWH <= 32:
		switch {
		case d >= 32:
			return 3
		case d >= 4:
			return 2
		default:
			return 1
		}
	default:
		return 3
	}
	return 0
}

// filterEdge applies the 5-tap kernel selected by strength to in[from:to),
// writing n output samples to out (§4.A filter_edge). Reads outside
// [from,to) clamp to the nearest in-range index.
func filterEdge[T Sample](out []T, n int, in []T, from, to, strength int) {
	kernel := edgeFilterKernels[strength-1]
	for i := 0; i < n; i++ {
		sum := 0
		for j := 0; j < 5; j++ {
			idx := clampIndex(i-2+j, from, to)
			sum += int(in[idx]) * kernel[j]
		}
		out[i] = T((sum + 8) >> 4)
	}
}

// upsample implements §4.A's decision of whether to upsample an edge
// segment before directional sampling.
func upsample(blkWH, d int, isSmooth bool) bool {
	if d >= 40 {
		return false
	}
	if isSmooth {
		return blkWH <= 8
	}
	return blkWH <= 16
}

// upsampleEdge produces a length 2*hsz-1 upsampled edge from in[from:to)
// (§4.A upsample_edge). Even output positions are clipped copies of the
// input; odd positions use the 4-tap {-1,9,9,-1} kernel.
func upsampleEdge[T Sample](out []T, hsz int, in []T, from, to, bitDepth int) {
	n := 2*hsz - 1
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			src := clampIndex(from+i/2, from, to)
			out[i] = in[src]
			continue
		}
		base := from + i/2
		k := upsampleKernel
		sum := int(in[clampIndex(base-1, from, to)])*k[0] +
			int(in[clampIndex(base, from, to)])*k[1] +
			int(in[clampIndex(base+1, from, to)])*k[2] +
			int(in[clampIndex(base+2, from, to)])*k[3]
		out[i] = clipPixel[T]((sum+8)>>4, bitDepth)
	}
}

// angularDelta returns d, the absolute angular distance from angle to the
// nearest cardinal direction (0 or 90), used by filterStrength/upsample.
func angularDelta(angle int) int {
	d := angle % 90
	if d > 45 {
		d = 90 - d
	}
	return iabs(d)
}
