package hmm

import (
	"math"

	"github.com/katalvlaran/markov/numeric"
)

// LogLikelihood returns the length-K vector of per-state emission
// log-likelihoods for a scalar observation y:
//
//	logLik[k] = -2 * |y - means[k]|
//
// This is an unnormalized Gaussian surrogate: a fixed-scale distance score,
// not a normalized log-density, and the factor 2 is a modeling constant
// rather than something derived from a variance. The exact form is part of
// the model's contract and must not be "corrected".
//
// Pure function of the Model and y; no side effects.
// Complexity: O(K) time and memory.
func (m *Model) LogLikelihood(y float64) []float64 {
	out := make([]float64, m.k)
	for i, w := range m.means {
		out[i] = -2 * math.Abs(y-w)
	}

	return out
}

// Likelihood returns exp(LogLikelihood(y)) element-wise.
//
// The result does NOT necessarily sum to 1 across states — an easy example
// is a very unlikely y, where the sum may be far below 1. Callers must not
// treat it as a distribution; the engines renormalize at every step.
// Complexity: O(K) time and memory.
func (m *Model) Likelihood(y float64) []float64 {
	return numeric.Exp(m.LogLikelihood(y))
}
