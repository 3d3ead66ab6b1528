// Package numeric is the eager dense backend for the markov inference
// engines: row-major float64 matrices plus the small set of kernels the
// forward-backward and Viterbi sweeps require.
//
// 🚀 What is numeric?
//
//	A deliberately small linear-algebra substrate:
//	  • Dense — row-major matrix with bounds-checked access
//	  • products: VecMat, MatVec, Mul, DiagScale
//	  • element-wise: Hadamard, AddVec, BroadcastAddRows, Log, Exp
//	  • reductions: Sum, ColMax (max+argmax per column), ArgMax
//	  • NormalizeSum — checked division by a vector's sum
//
// ✨ Key properties:
//   - Deterministic: fixed loop orders everywhere; max/argmax resolve ties
//     to the lowest index by an explicit first-max scan
//   - Fail-fast: every kernel validates shapes and returns a sentinel error
//     (ErrBadShape, ErrDimensionMismatch, ...) — no panics on user input
//   - Checked degeneracy: NormalizeSum reports a zero or non-finite sum as
//     ErrDegenerateSum instead of letting NaN propagate
//   - Fresh outputs: kernels never mutate their operands
//
// Bulk arithmetic delegates to gonum.org/v1/gonum/floats.
//
// Performance: all kernels are O(r·c) time or better; the only allocations
// are the returned outputs.
package numeric
