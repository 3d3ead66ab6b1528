// SPDX-License-Identifier: MIT
// Package: numeric
//
// Purpose:
//   - Provide the product, element-wise and reduction kernels the inference
//     engines are written against.
//   - Keep all loops deterministic and cache-friendly over Dense's flat
//     row-major buffer.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1); ties in max/argmax always
//     resolve to the lowest index via an explicit first-max scan.
//   - Bulk element ranges delegate to gonum.org/v1/gonum/floats.
//   - No hidden allocations beyond each kernel's output.

package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opVecMat       = "VecMat"
	opMatVec       = "MatVec"
	opMul          = "Mul"
	opDiagScale    = "DiagScale"
	opHadamard     = "Hadamard"
	opAddVec       = "AddVec"
	opBroadcastAdd = "BroadcastAddRows"
	opNormalize    = "NormalizeSum"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VecMat computes the row-vector-times-matrix product out[j] = Σ_i v[i]*m[i][j].
// Stage 1 (Validate): m non-nil, len(v) == m.Rows().
// Stage 2 (Execute): accumulate row i of m scaled by v[i], fixed i→j order.
// Complexity: O(r*c) time, O(c) memory.
func VecMat(v []float64, m *Dense) ([]float64, error) {
	if m == nil {
		return nil, opErrorf(opVecMat, ErrNilMatrix)
	}
	if len(v) != m.r {
		return nil, opErrorf(opVecMat, ErrDimensionMismatch)
	}

	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		row := m.row(i)
		vi := v[i]
		for j := 0; j < m.c; j++ {
			out[j] += vi * row[j]
		}
	}

	return out, nil
}

// MatVec computes the matrix-times-column-vector product out[i] = Σ_j m[i][j]*v[j].
// Complexity: O(r*c) time, O(r) memory.
func MatVec(m *Dense, v []float64) ([]float64, error) {
	if m == nil {
		return nil, opErrorf(opMatVec, ErrNilMatrix)
	}
	if len(v) != m.c {
		return nil, opErrorf(opMatVec, ErrDimensionMismatch)
	}

	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		// Dot of row i with v via the flat row view.
		out[i] = floats.Dot(m.row(i), v)
	}

	return out, nil
}

// Mul computes the matrix product a×b; a.Cols() must equal b.Rows().
// A fresh Dense is allocated; operands are not mutated.
// Complexity: O(r*k*c) time, O(r*c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		arow := a.row(i)
		orow := out.row(i)
		for k := 0; k < a.c; k++ {
			// Skip zero multipliers; keeps -Inf/NaN out of untouched cells.
			aik := arow[k]
			if aik == 0 {
				continue
			}
			floats.AddScaled(orow, aik, b.row(k))
		}
	}

	return out, nil
}

// DiagScale computes m×diag(d), i.e. out[i][j] = m[i][j]*d[j], scaling each
// column j of m by d[j]. len(d) must equal m.Cols().
// Complexity: O(r*c) time and memory.
func DiagScale(m *Dense, d []float64) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opDiagScale, ErrNilMatrix)
	}
	if len(d) != m.c {
		return nil, opErrorf(opDiagScale, ErrDimensionMismatch)
	}

	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		floats.MulTo(out.row(i), m.row(i), d)
	}

	return out, nil
}

// Hadamard computes the element-wise product of two equal-length vectors.
// Complexity: O(n) time and memory.
func Hadamard(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, opErrorf(opHadamard, ErrDimensionMismatch)
	}

	return floats.MulTo(make([]float64, len(a)), a, b), nil
}

// AddVec computes the element-wise sum of two equal-length vectors.
// Complexity: O(n) time and memory.
func AddVec(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, opErrorf(opAddVec, ErrDimensionMismatch)
	}

	return floats.AddTo(make([]float64, len(a)), a, b), nil
}

// BroadcastAddRows computes out[i][j] = m[i][j] + v[i], broadcasting v down
// the rows of m. len(v) must equal m.Rows().
// Complexity: O(r*c) time and memory. Deterministic i→j loops.
func BroadcastAddRows(m *Dense, v []float64) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opBroadcastAdd, ErrNilMatrix)
	}
	if len(v) != m.r {
		return nil, opErrorf(opBroadcastAdd, ErrDimensionMismatch)
	}

	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		orow := out.row(i)
		copy(orow, m.row(i))
		floats.AddConst(v[i], orow)
	}

	return out, nil
}

// Log returns the element-wise natural logarithm of v as a fresh slice.
// Zero entries map to -Inf and negative entries to NaN, exactly as math.Log
// defines them; callers own the stochasticity of their inputs.
// Complexity: O(n) time and memory.
func Log(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Log(x)
	}

	return out
}

// Exp returns the element-wise exponential of v as a fresh slice.
// Complexity: O(n) time and memory.
func Exp(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Exp(x)
	}

	return out
}

// LogElems returns the element-wise natural logarithm of m as a fresh Dense.
// Complexity: O(r*c) time and memory.
func LogElems(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf("LogElems", ErrNilMatrix)
	}

	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i, x := range m.data {
		out.data[i] = math.Log(x)
	}

	return out, nil
}

// Sum returns the sum of all elements of v.
// Complexity: O(n).
func Sum(v []float64) float64 {
	return floats.Sum(v)
}

// NormalizeSum divides v by its sum and returns the result as a fresh slice.
// A sum of exactly zero, NaN or ±Inf is a degenerate renormalization and is
// reported as ErrDegenerateSum instead of being divided through, so that
// non-finite values never propagate silently into downstream math.
// Complexity: O(n) time and memory.
func NormalizeSum(v []float64) ([]float64, error) {
	s := floats.Sum(v)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, opErrorf(opNormalize, ErrDegenerateSum)
	}

	return floats.ScaleTo(make([]float64, len(v)), 1/s, v), nil
}

// ColMax reduces m along its rows, returning for every column j both the
// maximum value max_i m[i][j] and the row index attaining it. Ties resolve
// to the LOWEST row index: the scan keeps the first maximum and replaces it
// only on a strictly greater value. This explicit first-max scan is the
// deterministic tie-break contract the Viterbi recursion depends on.
// Complexity: O(r*c) time, O(c) memory.
func ColMax(m *Dense) (vals []float64, args []int, err error) {
	if m == nil {
		return nil, nil, opErrorf("ColMax", ErrNilMatrix)
	}

	vals = make([]float64, m.c)
	args = make([]int, m.c)
	copy(vals, m.row(0)) // row 0 seeds the scan; args stay 0
	for i := 1; i < m.r; i++ {
		row := m.row(i)
		for j := 0; j < m.c; j++ {
			// Strictly greater only: equal values keep the earlier row.
			if row[j] > vals[j] {
				vals[j] = row[j]
				args[j] = i
			}
		}
	}

	return vals, args, nil
}

// ArgMax returns the index of the maximum value of v, resolving ties to the
// lowest index by the same first-max scan as ColMax. Returns -1 for an
// empty vector.
// Complexity: O(n).
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}

	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}

	return best
}
