package intrapred

// Palette expansion (§4.H): the simplest leaf in the core, a per-pixel
// lookup into a caller-supplied table. Grounded on the teacher's own
// palette-free lookup-table idiom in cliptables.go (a precomputed table
// indexed by a bounded integer, read without branching).

// ipredPalette implements pal_pred: dst[y,x] = pal[idx[y*W+x]] (§4.H). idx
// is read-only and must hold values in range for pal; assertPaletteIndices
// enforces this at debug time.
func ipredPalette[T Sample](dst Block[T], pal []T, idx []uint8, w, h int) {
	assertPaletteIndices(idx, len(pal))
	for y := 0; y < h; y++ {
		row := idx[y*w : y*w+w]
		for x := 0; x < w; x++ {
			dst.Set(x, y, pal[row[x]])
		}
	}
}
