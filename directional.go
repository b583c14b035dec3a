package intrapred

// Directional predictors Z1/Z2/Z3 (§4.D): fractional-position sampling along
// one of 56 angles, the generalization of the teacher's eight fixed-angle
// 4x4 directional modes (rd4/vr4/ld4/vl4/hd4/hu4 in predict_lossy.go) from a
// handful of baked-in 45-degree-multiple angles to an arbitrary Q6 step
// looked up per angle.

// condSide holds one side's conditioned (raw, filtered, or upsampled) edge
// segment together with the fractional-bit width and upsample flag the
// sampling loop needs. Reads past either end clamp to the nearest valid
// sample, the same clamp-at-the-boundary idea filterEdge/upsampleEdge use
// internally, and the same behavior the fill-remainder-of-row/column rule
// in §4.D produces at the far end.
type condSide[T Sample] struct {
	vals     []T
	fracBits int
	ups      int // 0 or 1
	maxBase  int
}

func (c condSide[T]) at(i int) T {
	if i < 0 {
		i = 0
	}
	if i >= len(c.vals) {
		i = len(c.vals) - 1
	}
	return c.vals[i]
}

// buildCondSide implements the edge-buffer decision rule common to Z1/Z2/Z3
// (§4.D): upsample if applicable, else filter if the strength table calls
// for it, else use the raw samples. sampleAt(i) returns the i'th raw
// neighbor sample (i in [0, blkWH) for an upsampled or filtered side, in
// [0, rawLen) for a raw one) in whatever convention the caller's
// side needs (starting at the first actual neighbor pixel for Z1/Z3's
// top/left-only sides, or at the top-left corner for Z2's sides, which
// need it reachable by the dx/dy extrapolation).
func buildCondSide[T Sample](sampleAt func(i int) T, rawLen, blkWH, d int, isSmooth bool, bitDepth int) condSide[T] {
	if upsample(blkWH, d, isSmooth) {
		hsz := blkWH
		raw := make([]T, hsz)
		for i := 0; i < hsz; i++ {
			raw[i] = sampleAt(i)
		}
		out := make([]T, 2*hsz-1)
		upsampleEdge(out, hsz, raw, 0, hsz, bitDepth)
		return condSide[T]{vals: out, fracBits: 5, ups: 1, maxBase: 2*blkWH - 2}
	}
	if s := filterStrength(blkWH, d, isSmooth); s != 0 {
		n := blkWH
		raw := make([]T, n)
		for i := 0; i < n; i++ {
			raw[i] = sampleAt(i)
		}
		out := make([]T, n)
		filterEdge(out, n, raw, 0, n, s)
		return condSide[T]{vals: out, fracBits: 6, ups: 0, maxBase: n - 1}
	}
	n := rawLen
	raw := make([]T, n)
	for i := 0; i < n; i++ {
		raw[i] = sampleAt(i)
	}
	return condSide[T]{vals: raw, fracBits: 6, ups: 0, maxBase: n - 1}
}

// dirSample linearly interpolates side.at(base) and side.at(base+1) with Q5
// weights, clipped to the active bit depth (the interpolation rule shared
// by Z1/Z2/Z3).
func dirSample[T Sample](side condSide[T], base, frac, bitDepth int) T {
	v := (int(side.at(base))*(32-frac) + int(side.at(base+1))*frac + 16) >> 5
	return clipPixel[T](v, bitDepth)
}

// ipredZ1 implements Z1_PRED: 0 < angle < 90, sampled purely from the top
// side.
func ipredZ1[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, param AngleWord) {
	angle := param.Angle()
	assertAngleRange(Z1Pred, angle)
	isSmooth := param.IsSmooth()
	d := angularDelta(angle)

	top := buildCondSide(func(i int) T { return edge.At(1 + i) }, w+minInt(w, h), w+h, d, isSmooth, bitDepth)
	dx := drIntraDerivative[angle]

	for y := 0; y < h; y++ {
		xpos := (y + 1) * dx
		base := xpos >> uint(top.fracBits)
		frac := ((xpos << uint(top.ups)) & 0x3F) >> 1
		for x := 0; x < w; x++ {
			if base >= top.maxBase {
				fillVal := top.at(top.maxBase)
				for ; x < w; x++ {
					dst.Set(x, y, fillVal)
				}
				break
			}
			dst.Set(x, y, dirSample(top, base, frac, bitDepth))
			base += 1 << uint(top.ups)
		}
	}
}

// ipredZ3 implements Z3_PRED: 180 < angle, sampled purely from the left
// side. Symmetric to ipredZ1 with x/y and w/h swapped and written
// column-by-column.
func ipredZ3[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, param AngleWord) {
	angle := param.Angle()
	assertAngleRange(Z3Pred, angle)
	isSmooth := param.IsSmooth()
	effAngle := angle - 180
	d := angularDelta(effAngle)

	left := buildCondSide(func(i int) T { return edge.At(-(1 + i)) }, h+minInt(w, h), w+h, d, isSmooth, bitDepth)
	dy := drIntraDerivative[effAngle]

	for x := 0; x < w; x++ {
		ypos := (x + 1) * dy
		base := ypos >> uint(left.fracBits)
		frac := ((ypos << uint(left.ups)) & 0x3F) >> 1
		for y := 0; y < h; y++ {
			if base >= left.maxBase {
				fillVal := left.at(left.maxBase)
				for ; y < h; y++ {
					dst.Set(x, y, fillVal)
				}
				break
			}
			dst.Set(x, y, dirSample(left, base, frac, bitDepth))
			base += 1 << uint(left.ups)
		}
	}
}

// ipredZ2 implements Z2_PRED: 90 < angle < 180, sampled from both sides.
// Unlike Z1/Z3, both conditioned sides here include the top-left corner at
// index 0 (Z2's column/row extrapolation can walk back past the first
// actual neighbor sample towards it), which is also why Z2/FILTER are the
// only directional-family members whose independence property (§8) covers
// both edge sides at once.
func ipredZ2[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, param AngleWord) {
	angle := param.Angle()
	assertAngleRange(Z2Pred, angle)
	isSmooth := param.IsSmooth()

	dy := drIntraDerivative[angle-90]
	dx := drIntraDerivative[180-angle]

	dTop := angularDelta(180 - angle)
	dLeft := angularDelta(angle - 90)

	top := buildCondSide(func(i int) T { return edge.At(i) }, w+h+1, w+h, dTop, isSmooth, bitDepth)
	left := buildCondSide(func(i int) T { return edge.At(-i) }, w+h+1, w+h, dLeft, isSmooth, bitDepth)

	minBaseX := -(1 << uint(top.ups))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			xpos := (x << 6) - (y+1)*dx
			baseX := xpos >> uint(top.fracBits)
			if baseX >= minBaseX {
				fracX := ((xpos << uint(top.ups)) & 0x3F) >> 1
				dst.Set(x, y, dirSample(top, baseX, fracX, bitDepth))
				continue
			}
			ypos := (y << 6) - (x+1)*dy
			baseY := ypos >> uint(left.fracBits)
			fracY := ((ypos << uint(left.ups)) & 0x3F) >> 1
			dst.Set(x, y, dirSample(left, baseY, fracY, bitDepth))
		}
	}
}
