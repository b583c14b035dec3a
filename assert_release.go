//go:build !debug

package intrapred

// Release-mode preconditions are assumed, not checked (§7). These no-op
// stand-ins keep call sites identical between build modes.

func assertTrue(cond bool, format string, args ...interface{})    {}
func assertDCInRange(dc, bitDepth int)                             {}
func assertAngleRange(mode Mode, angle int)                        {}
func assertFilterIdx(idx int)                                      {}
func assertPaletteIndices(idx []uint8, palLen int)                 {}
func assertPadding(wPad, hPad, cw, ch int)                         {}
