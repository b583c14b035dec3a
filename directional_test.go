package intrapred

import "testing"

// TestIpredZ1FillsRemainderPastMaxBase exercises the §4.D fill-remainder
// rule: at a shallow angle (close to the top-side cardinal) dx is large
// enough that base reaches max_base_x on the very first sample of every
// row, so the whole block should equal whichever conditioned-side sample
// sits at max_base_x (computed independently via buildCondSide using the
// same inputs ipredZ1 uses internally).
func TestIpredZ1FillsRemainderPastMaxBase(t *testing.T) {
	const w, h = 4, 4
	const angle = 3
	top := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	edge := newTestEdge[uint8](0, top, make([]uint8, h))

	d := angularDelta(angle)
	side := buildCondSide(func(i int) uint8 { return edge.At(1 + i) }, w+minInt(w, h), w+h, d, false, 8)
	want := side.at(side.maxBase)

	dst := newTestBlock[uint8](w, h)
	ipredZ1[uint8](dst, edge, w, h, 8, NewAngleWord(angle, false))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := dst.Get(x, y); got != want {
				t.Fatalf("dst(%d,%d) = %d, want %d (angle=%d should immediately exceed max_base_x)", x, y, got, want, angle)
			}
		}
	}
}

// TestIpredZ3FillsRemainderPastMaxBase is the Z3 mirror of the Z1 test
// above, using the left side and written column-by-column.
func TestIpredZ3FillsRemainderPastMaxBase(t *testing.T) {
	const w, h = 4, 4
	const angle = 183
	effAngle := angle - 180
	left := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	edge := newTestEdge[uint8](0, make([]uint8, w), left)

	d := angularDelta(effAngle)
	side := buildCondSide(func(i int) uint8 { return edge.At(-(1 + i)) }, h+minInt(w, h), w+h, d, false, 8)
	want := side.at(side.maxBase)

	dst := newTestBlock[uint8](w, h)
	ipredZ3[uint8](dst, edge, w, h, 8, NewAngleWord(angle, false))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := dst.Get(x, y); got != want {
				t.Fatalf("dst(%d,%d) = %d, want %d (angle=%d should immediately exceed max_base_y)", x, y, got, want, angle)
			}
		}
	}
}

// TestDirectionalRangeAndDeterminism covers §8's global invariants (range,
// determinism) across all three directional predictors at a sampling of
// angles and block sizes, reading edge data long enough for the largest
// geometry under test.
func TestDirectionalRangeAndDeterminism(t *testing.T) {
	const bitDepth = 8
	maxVal := uint8(maxSampleValue(bitDepth))

	top := make([]uint8, 256)
	left := make([]uint8, 256)
	for i := range top {
		top[i] = uint8((i * 37) % 256)
		left[i] = uint8((i * 53) % 256)
	}

	geoms := []struct{ w, h int }{{4, 4}, {8, 4}, {4, 8}, {16, 16}}
	angles := []int{15, 45, 75, 105, 135, 165, 195, 225, 255}

	for _, g := range geoms {
		edge := newTestEdge[uint8](128, top, left)
		for _, angle := range angles {
			var fn PredFunc[uint8]
			switch {
			case angle < 90:
				fn = ipredZ1[uint8]
			case angle < 180:
				fn = ipredZ2[uint8]
			default:
				fn = ipredZ3[uint8]
			}
			param := NewAngleWord(angle, false)

			dst1 := newTestBlock[uint8](g.w, g.h)
			fn(dst1, edge, g.w, g.h, bitDepth, param)
			dst2 := newTestBlock[uint8](g.w, g.h)
			fn(dst2, edge, g.w, g.h, bitDepth, param)

			for y := 0; y < g.h; y++ {
				for x := 0; x < g.w; x++ {
					v1, v2 := dst1.Get(x, y), dst2.Get(x, y)
					if v1 != v2 {
						t.Fatalf("geom=%v angle=%d: nondeterministic output at (%d,%d): %d vs %d", g, angle, x, y, v1, v2)
					}
					if v1 > maxVal {
						t.Fatalf("geom=%v angle=%d: dst(%d,%d) = %d out of range", g, angle, x, y, v1)
					}
				}
			}
		}
	}
}
