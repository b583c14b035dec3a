package intrapred

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// TestTablesPopulated checks that Init (invoked automatically by the
// package's func init()) has filled the Pred and Pal slots of both
// bit-depth monomorphizations, and the CflPred1, CflPred and CflAC slots of
// the 8-bit table.
func TestTablesPopulated(t *testing.T) {
	c := qt.New(t)
	for mode := 0; mode < NumModes; mode++ {
		c.Assert(TablesBD8.Pred[mode], qt.IsNotNil, qt.Commentf("BD8 mode %d", mode))
		c.Assert(TablesBD16.Pred[mode], qt.IsNotNil, qt.Commentf("BD16 mode %d", mode))
	}
	c.Assert(TablesBD8.Pal, qt.IsNotNil)
	c.Assert(TablesBD16.Pal, qt.IsNotNil)
	for i := 0; i < 4; i++ {
		c.Assert(TablesBD8.CflPred1[i], qt.IsNotNil)
		c.Assert(TablesBD8.CflPred[i], qt.IsNotNil)
	}
	for _, layout := range []Layout{I420, I422, I444} {
		perTx, ok := TablesBD8.CflAC[layout]
		c.Assert(ok, qt.IsTrue)
		for _, tx := range chromaTxSizes {
			_, ok := perTx[tx]
			c.Assert(ok, qt.IsTrue, qt.Commentf("layout=%v tx=%v", layout, tx))
		}
	}
}

// TestDispatchedPredMatchesDirectCall checks that invoking a predictor
// through the dispatch table produces the same result as calling the
// underlying routine directly, for a representative sample of modes.
func TestDispatchedPredMatchesDirectCall(t *testing.T) {
	c := qt.New(t)
	edge := newTestEdge[uint8](10, []uint8{1, 2, 3, 4}, []uint8{5, 6, 7, 8})

	direct := map[Mode]PredFunc[uint8]{
		DCPred:     ipredDC[uint8],
		VertPred:   ipredV[uint8],
		HorPred:    ipredH[uint8],
		PaethPred:  ipredPaeth[uint8],
		SmoothPred: ipredSmooth[uint8],
	}

	for _, mode := range []Mode{DCPred, VertPred, HorPred, PaethPred, SmoothPred} {
		want := newTestBlock[uint8](4, 4)
		direct[mode](want, edge, 4, 4, 8, 0)

		dispatched := newTestBlock[uint8](4, 4)
		TablesBD8.Pred[mode](dispatched, edge, 4, 4, 8, 0)

		c.Assert(blockRows(dispatched, 4, 4), qt.DeepEquals, blockRows(want, 4, 4))
	}
}

// TestCflACDispatchUsesBakedGeometry checks that a closure fetched from
// Tables.CflAC produces output sized to the transform size it was
// registered under, regardless of the ACPlane.Width/Height the caller
// happens to pass in.
func TestCflACDispatchUsesBakedGeometry(t *testing.T) {
	c := qt.New(t)
	fn := TablesBD8.CflAC[I420][TxSize{8, 8}]
	luma := buildLuma(16, 16, 16)
	ac := ACPlane{Buf: make([]int16, 8*8)}
	fn(ac, luma, 16, 0, 0)

	log2sz := ctz(8 * 8)
	sum := 1 << uint(log2sz-1)
	for _, v := range ac.Buf {
		sum += int(v)
	}
	c.Assert(sum%(1<<uint(log2sz)), qt.Equals, 0)
}
