// Package hmm defines the Model type, construction options, result types
// and sentinel errors for Hidden Markov Model inference.
//
// A Model bundles K hidden states, one scalar emission mean per state, a
// K×K row-stochastic transition matrix and a length-K initial distribution,
// together with log-domain caches of the latter two computed once at
// construction. A Model never changes after New returns, so a single value
// may be shared across any number of concurrent inference calls.
//
// Errors (sentinel):
//
//	– ErrNilModel          if a nil *Model is passed to an engine.
//	– ErrNoStates          if the means slice is empty (K must be ≥ 1).
//	– ErrShapeMismatch     if the transition matrix is not K×K or the
//	                       initial distribution does not have K entries.
//	– ErrEmptyObservations if an engine receives a zero-length sequence.
//
// Stochasticity of the transition rows and of the initial distribution is
// the caller's responsibility and is deliberately NOT validated: a zero
// probability is legitimate modeling input (its log is -Inf), and the
// engines report any resulting degenerate renormalization explicitly via
// numeric.ErrDegenerateSum rather than guessing at construction time.
package hmm

import (
	"errors"

	"github.com/katalvlaran/markov/numeric"
)

// Sentinel errors returned by Model construction and the inference engines.
var (
	// ErrNilModel indicates that a nil *Model was passed to an engine.
	ErrNilModel = errors.New("hmm: model is nil")

	// ErrNoStates indicates that no emission means were provided, leaving
	// the model without a single hidden state.
	ErrNoStates = errors.New("hmm: at least one state is required")

	// ErrShapeMismatch indicates that the transition matrix is not K×K or
	// the initial distribution does not have exactly K entries.
	ErrShapeMismatch = errors.New("hmm: parameter shape mismatch")

	// ErrEmptyObservations indicates a zero-length observation sequence.
	// Inference over nothing is undefined and rejected at call entry.
	ErrEmptyObservations = errors.New("hmm: observation sequence is empty")
)

// Model is an immutable Hidden Markov Model over K discrete states with
// one scalar emission mean per state.
//
// All fields are private and fixed at construction; accessors return
// copies, so shared Models are safe for concurrent use without locking.
type Model struct {
	k       int            // number of hidden states
	means   []float64      // per-state emission means, length k
	trans   *numeric.Dense // k×k transition matrix, row-stochastic by convention
	logTr   *numeric.Dense // element-wise log of trans, cached once
	init    []float64      // initial state distribution, length k
	logInit []float64      // element-wise log of init, cached once
}

// Option configures Model construction.
type Option func(*config)

// config collects construction-time choices before validation.
type config struct {
	init []float64
}

// WithInitialDist sets the initial state distribution p0. It must have
// exactly K entries (validated by New). When omitted, New defaults to the
// uniform distribution 1/K per state.
func WithInitialDist(p0 []float64) Option {
	return func(c *config) {
		c.init = p0
	}
}

// Smoothed holds the three aligned T×K outputs of ForwardBackward.
//
// Row t of Posterior is the smoothed marginal distribution over states at
// time t, and sums to 1. Forward and Backward hold the per-step renormalized
// filtering and backward messages; their rows also sum to 1 by construction.
type Smoothed struct {
	Posterior *numeric.Dense
	Forward   *numeric.Dense
	Backward  *numeric.Dense
}
