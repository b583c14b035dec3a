//go:build debug

package intrapred

import "github.com/pkg/errors"

// Debug-mode precondition checks (§7). These compile out entirely in
// release builds (the !debug variant in assert_release.go) — the core is
// total over its documented input domain, and a violated precondition is
// undefined behavior to have invoked, not a reportable error. Panicking
// with a pkg/errors-wrapped message follows the pattern ausocean-av's
// codec/h264/h264dec package uses for "this should never happen" checks
// deep in decode paths, where a plain panic would lose the call-site
// context.

func assertTrue(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Errorf(format, args...))
	}
}

func assertDCInRange(dc, bitDepth int) {
	assertTrue(dc >= 0 && dc <= maxSampleValue(bitDepth),
		"intrapred: dc %d out of range for bit depth %d", dc, bitDepth)
}

func assertAngleRange(mode Mode, angle int) {
	switch mode {
	case Z1Pred:
		assertTrue(angle > 0 && angle < 90, "intrapred: Z1_PRED angle %d out of (0,90)", angle)
	case Z2Pred:
		assertTrue(angle > 90 && angle < 180, "intrapred: Z2_PRED angle %d out of (90,180)", angle)
	case Z3Pred:
		assertTrue(angle > 180, "intrapred: Z3_PRED angle %d must be > 180", angle)
	}
}

func assertFilterIdx(idx int) {
	assertTrue(idx >= 0 && idx < 5, "intrapred: filter index %d out of [0,5)", idx)
}

func assertPaletteIndices(idx []uint8, palLen int) {
	for i, v := range idx {
		assertTrue(int(v) < palLen, "intrapred: palette index %d at position %d out of range for palette length %d", v, i, palLen)
	}
}

func assertPadding(wPad, hPad, cw, ch int) {
	assertTrue(wPad*4 < cw, "intrapred: w_pad*4 (%d) must be < cW (%d)", wPad*4, cw)
	assertTrue(hPad*4 < ch, "intrapred: h_pad*4 (%d) must be < cH (%d)", hPad*4, ch)
}
