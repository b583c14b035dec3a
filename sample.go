// Package intrapred implements the intra-prediction sample-generation core
// of an AV1-style video decoder: given a block's geometry, the reconstructed
// neighbor samples above and to the left, and a mode descriptor, it produces
// the predicted pixel values for that block. It also implements
// chroma-from-luma (CfL) AC extraction and combine, and palette expansion.
//
// The package is total over its documented input domain (see the assert*
// helpers in assert.go for the debug-time precondition checks) and holds no
// process-wide mutable state other than the dispatch tables populated once
// by Init.
package intrapred

// Sample is the pixel storage type. uint8 covers 8-bit depth; uint16 covers
// 10- and 12-bit depth (the bit depth itself is passed as a runtime
// parameter to the handful of routines whose arithmetic depends on it).
type Sample interface {
	~uint8 | ~uint16
}

// Mode enumerates the intra prediction modes of §3.
type Mode int

const (
	DCPred Mode = iota
	DC128Pred
	TopDCPred
	LeftDCPred
	HorPred
	VertPred
	PaethPred
	SmoothPred
	SmoothVPred
	SmoothHPred
	Z1Pred
	Z2Pred
	Z3Pred
	FilterPred

	NumModes = int(FilterPred) + 1
)

func (m Mode) String() string {
	switch m {
	case DCPred:
		return "DC_PRED"
	case DC128Pred:
		return "DC_128_PRED"
	case TopDCPred:
		return "TOP_DC_PRED"
	case LeftDCPred:
		return "LEFT_DC_PRED"
	case HorPred:
		return "HOR_PRED"
	case VertPred:
		return "VERT_PRED"
	case PaethPred:
		return "PAETH_PRED"
	case SmoothPred:
		return "SMOOTH_PRED"
	case SmoothVPred:
		return "SMOOTH_V_PRED"
	case SmoothHPred:
		return "SMOOTH_H_PRED"
	case Z1Pred:
		return "Z1_PRED"
	case Z2Pred:
		return "Z2_PRED"
	case Z3Pred:
		return "Z3_PRED"
	case FilterPred:
		return "FILTER_PRED"
	default:
		return "UNKNOWN_PRED"
	}
}

// AngleWord packs the parameter used by Z1/Z2/Z3 (an angle in [0,511]) and
// FILTER_PRED (a filter index in [0,4]) together with the "is smooth
// neighbor" flag in bit 9, per §3.
type AngleWord uint16

// NewAngleWord builds an AngleWord from its components.
func NewAngleWord(value int, isSmooth bool) AngleWord {
	w := AngleWord(value & 0x1ff)
	if isSmooth {
		w |= 1 << 9
	}
	return w
}

// Angle returns bits 0-8: the directional angle in [0,511].
func (w AngleWord) Angle() int { return int(w & 0x1ff) }

// FilterIdx returns bits 0-8 reinterpreted as a FILTER_PRED filter index in
// [0,4].
func (w AngleWord) FilterIdx() int { return int(w & 0x1ff) }

// IsSmooth reports bit 9, the smooth-neighbor flag used to parameterize edge
// conditioning.
func (w AngleWord) IsSmooth() bool { return w&(1<<9) != 0 }

// EdgeBuf is the one-dimensional neighbor-sample view of §3: index 0 is the
// top-left corner, positive indices run along the row above the block
// (left to right), negative indices run along the column to the left of the
// block (top to bottom). It is read-only for the duration of a call.
//
// Internally EdgeBuf stores samples in a single backing slice with the
// top-left corner at a fixed offset, the same "full buffer + offset"
// addressing the teacher uses for macroblock reconstruction (see
// predict_lossy.go's buf[off-BPS+i] convention) — this keeps every access
// a non-negative Go slice index while preserving the signed-offset algebra
// the algorithms are written against.
type EdgeBuf[T Sample] struct {
	buf []T
	tl  int
}

// NewEdgeBuf wraps buf with the top-left corner located at backing index tl.
func NewEdgeBuf[T Sample](buf []T, tl int) EdgeBuf[T] {
	return EdgeBuf[T]{buf: buf, tl: tl}
}

// At returns the sample at signed offset i from the top-left corner.
func (e EdgeBuf[T]) At(i int) T { return e.buf[e.tl+i] }

// Slice returns the contiguous run [from, to) of signed offsets as a Go
// slice, useful for passing ranges to filterEdge/upsampleEdge.
func (e EdgeBuf[T]) Slice(from, to int) []T { return e.buf[e.tl+from : e.tl+to] }

// Block is a destination or source rectangle of pixel samples addressed as
// buf[off + x + y*stride], mirroring the teacher's (buf, off) convention
// generalized with an explicit stride instead of the fixed BPS constant.
type Block[T Sample] struct {
	Buf    []T
	Off    int
	Stride int
}

func (b Block[T]) at(x, y int) int { return b.Off + x + y*b.Stride }

// Get returns the sample at (x,y) within the block.
func (b Block[T]) Get(x, y int) T { return b.Buf[b.at(x, y)] }

// Set writes v to (x,y) within the block.
func (b Block[T]) Set(x, y int, v T) { b.Buf[b.at(x, y)] = v }
