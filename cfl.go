package intrapred

// Chroma-from-luma (§4.F, §4.G): extract a zero-mean AC plane from
// co-located luma samples, then combine it with a chroma DC using a signed,
// alpha-scaled offset. Grounded on the teacher's color-space conversion in
// internal/dsp (its YUV->RGB paths also reduce a higher-resolution plane to
// a lower-resolution one via box-filter summation before combining
// channels); the subsample-sum-then-normalize shape is the same idea
// applied to one plane instead of three.
//
// §9 notes that the reference stamps out 31 specialized AC extractors (one
// per (chroma layout, transform size) pair) from a single generic routine
// via macro expansion; this module keeps the one generic routine and lets
// the dispatch table in dispatch.go hold one geometry-bound closure per
// (layout, transform size) pair (3 layouts x 14 sizes = 42 closures),
// rather than hand-duplicating the function itself.

// ACPlane is a signed 16-bit chroma-resolution plane, row-major with
// stride = width (§3).
type ACPlane struct {
	Buf    []int16
	Width  int
	Height int
}

func (p ACPlane) at(x, y int) int { return int(p.Buf[y*p.Width+x]) }
func (p ACPlane) set(x, y, v int) { p.Buf[y*p.Width+x] = int16(v) }

// cflAC implements the generic CfL AC extractor (§4.F). luma is the
// co-located luma plane at full (unsubsampled) resolution; ssHor/ssVer
// select 4:2:0 (1,1), 4:2:2 (1,0), or 4:4:4 (0,0) subsampling. wPad/hPad are
// in 4-sample units (§3); assertPadding enforces the precondition that the
// padded region is a strict subset of the plane.
func cflAC(ac ACPlane, luma []int, lumaStride, ssHor, ssVer, wPad, hPad int) {
	cw, ch := ac.Width, ac.Height
	assertPadding(wPad, hPad, cw, ch)

	shift := 1
	if ssVer == 0 {
		shift++
	}
	if ssHor == 0 {
		shift++
	}

	validW := cw - 4*wPad
	validH := ch - 4*hPad

	for y := 0; y < validH; y++ {
		ly := y << uint(ssVer)
		for x := 0; x < validW; x++ {
			lx := x << uint(ssHor)
			sum := luma[ly*lumaStride+lx]
			if ssHor == 1 {
				sum += luma[ly*lumaStride+lx+1]
			}
			if ssVer == 1 {
				sum += luma[(ly+1)*lumaStride+lx]
				if ssHor == 1 {
					sum += luma[(ly+1)*lumaStride+lx+1]
				}
			}
			ac.set(x, y, sum<<uint(shift))
		}
	}

	// Step 2: horizontal pad — replicate the last valid column rightward.
	for y := 0; y < validH; y++ {
		for x := validW; x < cw; x++ {
			ac.set(x, y, ac.at(x-1, y))
		}
	}
	// Step 3: vertical pad — replicate the last valid row downward.
	for y := validH; y < ch; y++ {
		for x := 0; x < cw; x++ {
			ac.set(x, y, ac.at(x, y-1))
		}
	}

	// Step 4: DC subtract, rounding the mean to nearest.
	log2sz := ctz(cw * ch)
	sum := 1 << uint(log2sz-1)
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			sum += ac.at(x, y)
		}
	}
	dc := sum >> uint(log2sz)
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			ac.set(x, y, ac.at(x, y)-dc)
		}
	}
}

// cflPred1 implements cfl_pred_1 (§4.G): combine a single chroma plane's
// already-present DC with the alpha-scaled AC offset.
func cflPred1[T Sample](dst Block[T], ac ACPlane, alpha, w, h, bitDepth int) {
	dc := int(dst.Get(0, 0))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			diff := alpha * ac.at(x, y)
			offset := isign(diff) * ((iabs(diff) + 32) >> 6)
			dst.Set(x, y, clipPixel[T](dc+offset, bitDepth))
		}
	}
}

// cflPred implements cfl_pred (§4.G): apply cflPred1 independently to U and
// V with their own starting DC and alpha.
func cflPred[T Sample](dstU, dstV Block[T], ac ACPlane, alphas [2]int, w, h, bitDepth int) {
	cflPred1(dstU, ac, alphas[0], w, h, bitDepth)
	cflPred1(dstV, ac, alphas[1], w, h, bitDepth)
}
