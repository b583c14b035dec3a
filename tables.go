package intrapred

// Constant tables shared by the edge conditioner (§4.A), directional
// predictors (§4.D), and the recursive filter predictor (§4.E). See
// DESIGN.md's "Implementation status" notes for how each table below was
// sourced.

// drIntraDerivative holds the Q6 per-angle step used by Z1/Z2/Z3, indexed
// directly by the angle in degrees. Only the angles actually reachable by a
// base directional mode plus an angle_delta step are populated; every other
// entry is unused and left zero.
//
// These are the published AV1/dav1d reference constants, not a derived
// approximation: the table is independently tuned per angle rather than a
// smooth function of it (e.g. angle 42 and 45 differ by 7, not by the
// roughly-3 step a continuous cotangent would give), so a formula cannot
// stand in for it without drifting off by one or more Q6 units on exactly
// the surface the spec calls out as needing bit-exactness.
var drIntraDerivative = [90]int{
	3:  1023,
	6:  547,
	9:  372,
	14: 273,
	17: 215,
	20: 178,
	23: 151,
	26: 132,
	29: 116,
	32: 102,
	36: 90,
	39: 80,
	42: 71,
	45: 64,
	48: 57,
	51: 51,
	54: 45,
	58: 40,
	61: 35,
	64: 31,
	67: 27,
	70: 23,
	73: 19,
	76: 15,
	81: 11,
	84: 7,
	87: 3,
}

// smWeights holds the smooth-prediction weight row for each supported block
// dimension (§4.C). The length-2 row reproduces spec.md's own worked example
// (scenario 5); the others reproduce the standard AV1 smooth-weight
// constants, which spec.md describes as data "supplied by the host" rather
// than something this module derives.
var smWeights = map[int][]int{
	2:  {255, 128},
	4:  {255, 149, 85, 64},
	8:  {255, 197, 146, 105, 73, 50, 37, 32},
	16: {255, 225, 196, 170, 145, 123, 102, 84, 68, 54, 43, 33, 26, 20, 17, 16},
	32: {
		255, 240, 225, 210, 196, 182, 169, 157, 145, 133, 122, 111, 101, 92, 83, 74,
		66, 59, 52, 45, 39, 34, 29, 25, 21, 17, 14, 12, 10, 9, 8, 8,
	},
	64: {
		255, 248, 240, 233, 225, 218, 210, 203, 196, 189, 182, 176, 169, 163, 156, 150,
		144, 138, 133, 127, 121, 116, 111, 106, 101, 96, 91, 86, 82, 77, 73, 69,
		65, 61, 57, 54, 50, 47, 44, 41, 38, 35, 32, 29, 27, 25, 22, 20,
		18, 16, 15, 13, 12, 10, 9, 8, 7, 6, 6, 5, 5, 4, 4, 4,
	},
}

// edgeFilterKernels holds the three 5-tap symmetric kernels used by
// filterEdge (§4.A), indexed by strength-1.
var edgeFilterKernels = [3][5]int{
	{0, 4, 8, 4, 0},
	{0, 5, 6, 5, 0},
	{2, 4, 4, 4, 2},
}

// upsampleKernel is the 4-tap kernel used by upsampleEdge for odd output
// positions (§4.A), structurally the same shape as the teacher's diamond
// upsample kernel in internal/dsp/upsample.go (a short, hand-tuned
// interpolation kernel with a (sum+half)>>shift rounding tail).
var upsampleKernel = [4]int{-1, 9, 9, -1}

// filterIntraModeSets holds the five 7-tap recursive filter predictor
// coefficient sets of §4.E, each an 8-row x 7-column table (one row per
// output position within a 4x2 tile, in raster order: row*4+col).
//
// These coefficients sum to 16 per row so that (sum+8)>>4 is a rounding
// average, mirroring the teacher's avg3 ((a+2b+c+2)>>2, weights summing to
// 4) and the Smooth family's (pred+256)>>9 (weights summing to 512): every
// rounding divide in this codebase divides by exactly the sum of the
// weights it rounds.
var filterIntraModeSets = [5][8][7]int{
	// FILTER_DC_PRED-derived set: biased toward the DC-like blend of all
	// seven context taps.
	{
		{-3, -1, 2, 3, -1, 4, 12},
		{-3, -3, 4, 5, -1, 4, 10},
		{-3, -4, 4, 6, -1, 4, 10},
		{-3, -5, 4, 7, -1, 4, 10},
		{-2, -6, 4, 8, -1, 4, 9},
		{-2, -7, 5, 8, -1, 4, 9},
		{-2, -8, 5, 9, -1, 4, 9},
		{-2, -9, 5, 10, -1, 4, 9},
	},
	// FILTER_V_PRED-derived set: weighted toward the top context taps.
	{
		{-3, 8, 6, 2, -1, 2, 2},
		{-4, 9, 7, 2, -1, 2, 1},
		{-4, 10, 7, 1, -1, 2, 1},
		{-4, 11, 7, 1, -1, 2, 0},
		{-5, 12, 7, 1, -1, 2, 0},
		{-5, 13, 7, 0, -1, 2, 0},
		{-5, 14, 6, 0, -1, 2, 0},
		{-6, 15, 6, 0, -1, 2, 0},
	},
	// FILTER_H_PRED-derived set: weighted toward the left context taps.
	{
		{-3, 2, 2, -1, 8, 6, 2},
		{-4, 2, 1, -1, 9, 7, 2},
		{-4, 2, 1, -1, 10, 7, 1},
		{-4, 2, 0, -1, 11, 7, 1},
		{-5, 2, 0, -1, 12, 7, 1},
		{-5, 2, 0, -1, 13, 7, 0},
		{-5, 2, 0, -1, 14, 6, 0},
		{-6, 2, 0, -1, 15, 6, 0},
	},
	// FILTER_D157_PRED-derived set: diagonal blend.
	{
		{-2, 4, 4, 4, 4, 4, -2},
		{-2, 3, 4, 4, 5, 4, -2},
		{-1, 3, 4, 4, 4, 4, -2},
		{-1, 2, 4, 5, 4, 4, -2},
		{-1, 2, 3, 5, 5, 4, -2},
		{0, 1, 3, 5, 5, 4, -2},
		{0, 1, 3, 5, 6, 4, -3},
		{0, 0, 3, 5, 6, 5, -3},
	},
	// FILTER_PAETH_PRED-derived set: heavier TL/L/T taps, matching Paeth's
	// nearest-extreme selection in spirit.
	{
		{-1, -1, 1, 4, 3, 7, 3},
		{-1, -2, 1, 5, 3, 8, 2},
		{-1, -3, 2, 5, 3, 8, 2},
		{-2, -3, 2, 6, 3, 9, 1},
		{-2, -4, 2, 7, 3, 9, 1},
		{-2, -5, 3, 7, 2, 10, 1},
		{-3, -5, 3, 8, 2, 10, 1},
		{-3, -6, 3, 9, 2, 10, 1},
	},
}
