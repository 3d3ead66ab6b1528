package hmm

import (
	"fmt"

	"github.com/katalvlaran/markov/numeric"
)

// ViterbiDecode — most probable hidden state path.
//
// Description:
//
//	For an observation sequence y of length T, ViterbiDecode returns the
//	single state sequence maximizing the joint log-probability of states
//	and observations, plus the full T×K dynamic-programming table of
//	max-path scores. The recursion runs entirely in the log domain, so
//	products become sums and zero transition probabilities act as -Inf
//	barriers that no optimal path can cross.
//
// Algorithm Outline:
//  1. scores[0] = log(p0) + logLik(y[0]).
//  2. For t = 1..T-1:
//     M[i][j]      = scores[t-1][i] + logP[i][j]   (K×K partial forward)
//     states[t][j] = argmax_i M[i][j]              (lowest index on ties)
//     scores[t][j] = max_i M[i][j] + logLik(y[t])[j]
//  3. Backtrack: s[T-1] = argmax_j scores[T-1][j]; then
//     s[t-1] = states[t][s[t]] for t = T-1..1.
//
// Ties in every max/argmax resolve to the lowest state index — the
// first-max scan contract of numeric.ColMax and numeric.ArgMax — so the
// decoded path is fully deterministic.
//
// Guarantees: len(path) == T and every entry lies in [0, K). The returned
// scores are max-path log-probabilities, NOT normalized marginals. The call
// allocates only call-local tables; a shared Model may be decoded from many
// goroutines concurrently.
//
// Complexity:
//
//	Time   = O(T·K²)
//	Memory = O(T·K) outputs, O(K²) transient per step
//
// Errors:
//   - ErrNilModel          — m is nil.
//   - ErrEmptyObservations — T = 0.
func ViterbiDecode(m *Model, y []float64) (path []int, scores *numeric.Dense, err error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}
	nT := len(y)
	if nT == 0 {
		return nil, nil, ErrEmptyObservations
	}

	pathScores := make([][]float64, nT)
	pathStates := make([][]int, nT)

	// Initialize from the initial distribution and the first observation.
	if pathScores[0], err = numeric.AddVec(m.logInit, m.LogLikelihood(y[0])); err != nil {
		return nil, nil, fmt.Errorf("hmm: viterbi step 0: %w", err)
	}

	for t := 1; t < nT; t++ {
		// Partial forward: previous scores broadcast down the rows of logP.
		tmpMat, err := numeric.BroadcastAddRows(m.logTr, pathScores[t-1])
		if err != nil {
			return nil, nil, fmt.Errorf("hmm: viterbi step %d: %w", t, err)
		}

		// Column-wise max picks the best predecessor of every state j.
		vals, args, err := numeric.ColMax(tmpMat)
		if err != nil {
			return nil, nil, fmt.Errorf("hmm: viterbi step %d: %w", t, err)
		}
		pathStates[t] = args
		if pathScores[t], err = numeric.AddVec(vals, m.LogLikelihood(y[t])); err != nil {
			return nil, nil, fmt.Errorf("hmm: viterbi step %d: %w", t, err)
		}
	}

	// Backtrack from the best final state.
	path = make([]int, nT)
	path[nT-1] = numeric.ArgMax(pathScores[nT-1])
	for t := nT - 1; t >= 1; t-- {
		path[t-1] = pathStates[t][path[t]]
	}

	if scores, err = numeric.FromRows(pathScores); err != nil {
		return nil, nil, fmt.Errorf("hmm: viterbi scores: %w", err)
	}

	return path, scores, nil
}
