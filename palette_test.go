package intrapred

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestIpredPaletteScenario6 reproduces §8 scenario 6: pal=[7,9,11],
// idx=[0,1,2,2,1,0], W=3,H=2 -> row0=[7,9,11], row1=[11,9,7].
func TestIpredPaletteScenario6(t *testing.T) {
	pal := []uint8{7, 9, 11}
	idx := []uint8{0, 1, 2, 2, 1, 0}
	dst := newTestBlock[uint8](3, 2)
	ipredPalette[uint8](dst, pal, idx, 3, 2)

	got := blockRows(dst, 3, 2)
	want := [][]uint8{{7, 9, 11}, {11, 9, 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ipredPalette() mismatch (-want +got):\n%s", diff)
	}
}

func TestIpredPaletteSingleEntry(t *testing.T) {
	pal := []uint16{500}
	idx := make([]uint8, 16)
	dst := newTestBlock[uint16](4, 4)
	ipredPalette[uint16](dst, pal, idx, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := dst.Get(x, y); got != 500 {
				t.Fatalf("dst(%d,%d) = %d, want 500", x, y, got)
			}
		}
	}
}
