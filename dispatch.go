package intrapred

// Dispatch table (§4.I, §6): the single registration point binding mode,
// chroma layout, and transform size to a concrete routine. Grounded on the
// teacher's internal/dsp/dsp.go, which populates package-level function-
// pointer arrays (VP8PredLuma4/VP8PredLuma16/VP8PredChroma8, plus the
// filter/upsample slots) once from an Init function and re-invokes that
// same Init from a package-level func init(), so the tables are always
// populated before first use without the caller doing anything.

// PredFunc is the common shape every intra_pred[mode] entry point has.
type PredFunc[T Sample] func(dst Block[T], edge EdgeBuf[T], w, h, bitDepth int, param AngleWord)

// CflACFunc is cfl_ac[layout][tx] with geometry baked in by the closure
// dispatch.go builds (§6: "geometry baked in").
type CflACFunc[T Sample] func(ac ACPlane, luma []int, lumaStride, wPad, hPad int)

// CflPred1Func is cfl_pred_1[w_idx] with W baked in.
type CflPred1Func[T Sample] func(dst Block[T], ac ACPlane, alpha, h, bitDepth int)

// CflPredFunc is cfl_pred[w_idx] with W baked in.
type CflPredFunc[T Sample] func(dstU, dstV Block[T], ac ACPlane, alphas [2]int, h, bitDepth int)

// PalFunc is pal_pred.
type PalFunc[T Sample] func(dst Block[T], pal []T, idx []uint8, w, h int)

// Layout enumerates the three chroma subsampling layouts CfL supports.
type Layout int

const (
	I420 Layout = iota
	I422
	I444
)

func (l Layout) subsampling() (ssHor, ssVer int) {
	switch l {
	case I420:
		return 1, 1
	case I422:
		return 1, 0
	default:
		return 0, 0
	}
}

// TxSize identifies a chroma transform size by its dimensions in samples.
type TxSize struct{ W, H int }

// chromaTxSizes lists every transform size CfL's AC extractor is specialized
// for: the four squares and the ten rectangular combinations not exceeding
// 32 in either dimension (see DESIGN.md's "CfL dispatch table shape").
var chromaTxSizes = []TxSize{
	{4, 4}, {8, 8}, {16, 16}, {32, 32},
	{4, 8}, {8, 4},
	{8, 16}, {16, 8},
	{16, 32}, {32, 16},
	{4, 16}, {16, 4},
	{8, 32}, {32, 8},
}

// Tables holds every dispatch slot for one bit-depth monomorphization of
// Sample (§4.I, §6).
type Tables[T Sample] struct {
	Pred     [NumModes]PredFunc[T]
	CflAC    map[Layout]map[TxSize]CflACFunc[T]
	CflPred1 [4]CflPred1Func[T] // indexed by log2(W/4), W in {4,8,16,32}
	CflPred  [4]CflPredFunc[T]
	Pal      PalFunc[T]
}

// TablesBD8 holds the dispatch table for 8-bit-depth decoding.
var TablesBD8 Tables[uint8]

// TablesBD16 holds the dispatch table for 10/12-bit-depth decoding.
var TablesBD16 Tables[uint16]

// Init populates TablesBD8 and TablesBD16. Safe to call more than once;
// called automatically once via func init() below, matching the teacher's
// dsp.go pattern of an idempotent Init plus an automatic init() trigger so
// callers never need to remember to invoke it.
func Init() {
	initTables(&TablesBD8)
	initTables(&TablesBD16)
}

func init() { Init() }

func initTables[T Sample](t *Tables[T]) {
	t.Pred[DCPred] = ipredDC[T]
	t.Pred[DC128Pred] = ipredDC128[T]
	t.Pred[TopDCPred] = ipredDCTop[T]
	t.Pred[LeftDCPred] = ipredDCLeft[T]
	t.Pred[HorPred] = ipredH[T]
	t.Pred[VertPred] = ipredV[T]
	t.Pred[PaethPred] = ipredPaeth[T]
	t.Pred[SmoothPred] = ipredSmooth[T]
	t.Pred[SmoothVPred] = ipredSmoothV[T]
	t.Pred[SmoothHPred] = ipredSmoothH[T]
	t.Pred[Z1Pred] = ipredZ1[T]
	t.Pred[Z2Pred] = ipredZ2[T]
	t.Pred[Z3Pred] = ipredZ3[T]
	t.Pred[FilterPred] = ipredFilter[T]

	t.CflAC = make(map[Layout]map[TxSize]CflACFunc[T])
	for _, layout := range []Layout{I420, I422, I444} {
		ssHor, ssVer := layout.subsampling()
		perTx := make(map[TxSize]CflACFunc[T])
		for _, tx := range chromaTxSizes {
			tx := tx
			perTx[tx] = func(ac ACPlane, luma []int, lumaStride, wPad, hPad int) {
				ac.Width, ac.Height = tx.W, tx.H
				cflAC(ac, luma, lumaStride, ssHor, ssVer, wPad, hPad)
			}
		}
		t.CflAC[layout] = perTx
	}

	for i := 0; i < 4; i++ {
		w := 4 << uint(i)
		t.CflPred1[i] = func(dst Block[T], ac ACPlane, alpha, h, bitDepth int) {
			cflPred1[T](dst, ac, alpha, w, h, bitDepth)
		}
		t.CflPred[i] = func(dstU, dstV Block[T], ac ACPlane, alphas [2]int, h, bitDepth int) {
			cflPred[T](dstU, dstV, ac, alphas, w, h, bitDepth)
		}
	}

	t.Pal = func(dst Block[T], pal []T, idx []uint8, w, h int) {
		ipredPalette[T](dst, pal, idx, w, h)
	}
}
