package intrapred

// Recursive filter predictor (§4.E): FILTER_PRED subdivides the block into
// 4x2 tiles and predicts each tile from the seven pixels immediately above
// and to the left of it (the top-left corner, the four samples above the
// tile and the two samples to its left, each taken from the edge buffer
// where the tile touches the block border and from already-produced block
// pixels otherwise), one of the five coefficient sets in tables.go selected by the
// AngleWord's filter index. Grounded on the teacher's recursive left/top
// context chaining in predict_lossy.go's ld4/vl4 family, which also
// predicts each output pixel from a mix of already-produced neighbor
// pixels rather than a single pass over static edge samples.

// ipredFilter implements FILTER_PRED.
func ipredFilter[T Sample](dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, param AngleWord) {
	idx := param.FilterIdx()
	assertFilterIdx(idx)
	coeffs := filterIntraModeSets[idx]

	for ty := 0; ty < h; ty += 2 {
		for tx := 0; tx < w; tx += 4 {
			predictFilterTile(dst, edge, tx, ty, bitDepth, coeffs)
		}
	}
}

// predictFilterTile fills the 4x2 tile at (tx,ty) using the seven context
// taps p0..p6: p0 is the top-left corner of the tile, p1..p4 run left to
// right along the top of the tile, p5..p6 run top to bottom along the left
// of the tile.
func predictFilterTile[T Sample](dst Block[T], edge EdgeBuf[T], tx, ty, bitDepth int, coeffs [8][7]int) {
	var p [7]int
	switch {
	case ty == 0:
		p[0] = int(edge.At(tx))
	case tx == 0:
		p[0] = int(edge.At(-ty))
	default:
		p[0] = int(dst.Get(tx-1, ty-1))
	}
	for i := 0; i < 4; i++ {
		if ty == 0 {
			p[1+i] = int(edge.At(tx + 1 + i))
		} else {
			p[1+i] = int(dst.Get(tx+i, ty-1))
		}
	}
	for i := 0; i < 2; i++ {
		if tx == 0 {
			p[5+i] = int(edge.At(-(ty + 1 + i)))
		} else {
			p[5+i] = int(dst.Get(tx-1, ty+i))
		}
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			c := coeffs[row*4+col]
			sum := 0
			for k := 0; k < 7; k++ {
				sum += p[k] * c[k]
			}
			v := clipPixel[T]((sum+8)>>4, bitDepth)
			dst.Set(tx+col, ty+row, v)
		}
	}
}
