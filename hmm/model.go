package hmm

import (
	"fmt"

	"github.com/katalvlaran/markov/numeric"
)

// New constructs an immutable Model from per-state emission means and a
// K×K transition matrix, where K = len(means).
//
// Stage 1 (Validate): K ≥ 1; trans present and exactly K×K; an explicit
// initial distribution, if any, has exactly K entries. Shape violations
// fail fast with ErrShapeMismatch — probabilities are never inspected
// beyond shape (see the package doc for why).
// Stage 2 (Prepare): copy means and the initial distribution, clone trans;
// the Model owns private storage and is unaffected by later caller writes.
// Stage 3 (Finalize): cache the element-wise natural logs of the transition
// matrix and initial distribution once, so inference calls never recompute
// them. Zero probabilities become -Inf here, which is exactly what the
// log-domain Viterbi recursion needs to rule a transition out.
//
// Complexity: O(K²) time and memory.
func New(means []float64, trans *numeric.Dense, opts ...Option) (*Model, error) {
	k := len(means)
	if k == 0 {
		return nil, ErrNoStates
	}
	if trans == nil {
		return nil, fmt.Errorf("hmm: transition matrix: %w", numeric.ErrNilMatrix)
	}
	if trans.Rows() != k || trans.Cols() != k {
		return nil, fmt.Errorf("hmm: transition matrix is %d×%d, want %d×%d: %w",
			trans.Rows(), trans.Cols(), k, k, ErrShapeMismatch)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	init := make([]float64, k)
	if cfg.init == nil {
		// Default: uniform start, 1/K per state.
		for i := range init {
			init[i] = 1 / float64(k)
		}
	} else {
		if len(cfg.init) != k {
			return nil, fmt.Errorf("hmm: initial distribution has %d entries, want %d: %w",
				len(cfg.init), k, ErrShapeMismatch)
		}
		copy(init, cfg.init)
	}

	w := make([]float64, k)
	copy(w, means)
	tr := trans.Clone()

	logTr, err := numeric.LogElems(tr)
	if err != nil {
		return nil, fmt.Errorf("hmm: %w", err)
	}

	return &Model{
		k:       k,
		means:   w,
		trans:   tr,
		logTr:   logTr,
		init:    init,
		logInit: numeric.Log(init),
	}, nil
}

// NumStates returns K, the number of hidden states.
func (m *Model) NumStates() int {
	return m.k
}

// Means returns a copy of the per-state emission means.
func (m *Model) Means() []float64 {
	out := make([]float64, m.k)
	copy(out, m.means)

	return out
}

// Transition returns a deep copy of the K×K transition matrix.
func (m *Model) Transition() *numeric.Dense {
	return m.trans.Clone()
}

// InitialDist returns a copy of the initial state distribution.
func (m *Model) InitialDist() []float64 {
	out := make([]float64, m.k)
	copy(out, m.init)

	return out
}
