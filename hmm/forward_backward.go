package hmm

import (
	"fmt"

	"github.com/katalvlaran/markov/numeric"
)

// ForwardBackward — smoothed posterior marginals over hidden states.
//
// Description:
//
//	For an observation sequence y of length T, ForwardBackward computes
//	the posterior probability of every hidden state at every time step,
//	combining evidence from the whole sequence. This is the classical
//	two-sweep smoother, run in the scaled (per-step renormalized) form so
//	that long sequences never underflow.
//
// Algorithm Outline:
//  1. Allocate augmented (T+1)×K forward and backward tables.
//  2. Forward sweep: forward[0] = uniform 1/K; for t = 0..T-1
//     tmp        = (forward[t] · P) ⊙ lik(y[t])
//     forward[t+1] = tmp / sum(tmp)
//  3. Backward sweep: backward[T] = uniform 1/K; for t = T..1
//     tmp          = (P · diag(lik(y[t-1]))) · backward[t]
//     backward[t-1] = tmp / sum(tmp)
//  4. Drop the initial forward sentinel and final backward sentinel,
//     aligning both tables to the T observations.
//  5. posterior[t] = forward[t] ⊙ backward[t], renormalized row by row.
//
// Every division above is a checked renormalization: a zero (or otherwise
// non-finite) row sum — e.g. an observation whose likelihood underflows to
// zero in every state — aborts the call with an error matching
// numeric.ErrDegenerateSum and naming the failing step, instead of letting
// NaN flow into the remaining rows.
//
// Guarantees: on success every row of Posterior, Forward and Backward sums
// to 1 up to floating-point tolerance; the call is deterministic and leaves
// the Model untouched, so repeated invocations are bit-identical.
//
// Complexity:
//
//	Time   = O(T·K²)
//	Memory = O(T·K) outputs, O(K²) transient per step
//
// Errors:
//   - ErrNilModel               — m is nil.
//   - ErrEmptyObservations      — T = 0.
//   - numeric.ErrDegenerateSum  — a renormalization divided by zero
//     (wrapped with the failing sweep and step; match with errors.Is).
func ForwardBackward(m *Model, y []float64) (*Smoothed, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	nT := len(y)
	if nT == 0 {
		return nil, ErrEmptyObservations
	}

	// Uniform 1/K sentinel row shared by both sweeps; dropped before output.
	uniform := make([]float64, m.k)
	for i := range uniform {
		uniform[i] = 1 / float64(m.k)
	}

	// Forward sweep over the augmented table.
	forward := make([][]float64, nT+1)
	forward[0] = uniform
	for t := 0; t < nT; t++ {
		tmp, err := numeric.VecMat(forward[t], m.trans)
		if err != nil {
			return nil, fmt.Errorf("hmm: forward step %d: %w", t, err)
		}
		if tmp, err = numeric.Hadamard(tmp, m.Likelihood(y[t])); err != nil {
			return nil, fmt.Errorf("hmm: forward step %d: %w", t, err)
		}
		if forward[t+1], err = numeric.NormalizeSum(tmp); err != nil {
			return nil, fmt.Errorf("hmm: forward step %d: %w", t, err)
		}
	}

	// Backward sweep over the augmented table.
	backward := make([][]float64, nT+1)
	backward[nT] = uniform
	for t := nT; t >= 1; t-- {
		scaled, err := numeric.DiagScale(m.trans, m.Likelihood(y[t-1]))
		if err != nil {
			return nil, fmt.Errorf("hmm: backward step %d: %w", t-1, err)
		}
		tmp, err := numeric.MatVec(scaled, backward[t])
		if err != nil {
			return nil, fmt.Errorf("hmm: backward step %d: %w", t-1, err)
		}
		if backward[t-1], err = numeric.NormalizeSum(tmp); err != nil {
			return nil, fmt.Errorf("hmm: backward step %d: %w", t-1, err)
		}
	}

	// Drop sentinels (forward[0], backward[T]) and combine the aligned rows.
	posterior := make([][]float64, nT)
	for t := 0; t < nT; t++ {
		prod, err := numeric.Hadamard(forward[t+1], backward[t])
		if err != nil {
			return nil, fmt.Errorf("hmm: posterior row %d: %w", t, err)
		}
		if posterior[t], err = numeric.NormalizeSum(prod); err != nil {
			return nil, fmt.Errorf("hmm: posterior row %d: %w", t, err)
		}
	}

	post, err := numeric.FromRows(posterior)
	if err != nil {
		return nil, fmt.Errorf("hmm: posterior: %w", err)
	}
	fwd, err := numeric.FromRows(forward[1:])
	if err != nil {
		return nil, fmt.Errorf("hmm: forward: %w", err)
	}
	bwd, err := numeric.FromRows(backward[:nT])
	if err != nil {
		return nil, fmt.Errorf("hmm: backward: %w", err)
	}

	return &Smoothed{Posterior: post, Forward: fwd, Backward: bwd}, nil
}
