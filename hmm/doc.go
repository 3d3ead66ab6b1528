// Package hmm implements exact inference for discrete-state Hidden Markov
// Models with scalar Gaussian-surrogate emissions: the scaled
// forward-backward smoother and log-domain Viterbi decoding.
//
// 🚀 What is an HMM here?
//
//	K hidden states, each with a scalar emission mean; a K×K row-stochastic
//	transition matrix; an initial state distribution (uniform by default).
//	The per-state observation score is the fixed-scale distance surrogate
//	exp(-2·|y - mean|) — unnormalized on purpose, see Model.LogLikelihood.
//
// ✨ Key features:
//   - ForwardBackward: smoothed state marginals with per-step scaling, so
//     arbitrarily long sequences never underflow
//   - ViterbiDecode: deterministic most-likely path with explicit
//     lowest-index tie-breaks and -Inf transition barriers
//   - Degenerate renormalizations (all-zero likelihood rows) surface as
//     errors matching numeric.ErrDegenerateSum, never as silent NaN
//   - A Model is immutable and safe to share across goroutines; every
//     inference call owns its DP tables
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/markov/hmm"
//	  "github.com/katalvlaran/markov/numeric"
//	)
//
//	P, _ := numeric.FromRows([][]float64{
//	  {0.5, 0.5},
//	  {0.0, 1.0},
//	})
//	m, err := hmm.New([]float64{0, 1}, P)
//	if err != nil { ... }
//
//	sm, err := hmm.ForwardBackward(m, y)   // Posterior, Forward, Backward
//	path, scores, err := hmm.ViterbiDecode(m, y)
//
// Performance:
//
//   - Time:   O(T·K²) per call, T = len(observations)
//   - Memory: O(T·K) per call, allocated fresh every call
//
// Out of scope: parameter learning (Baum-Welch/EM), streaming inference,
// and continuous-state filtering.
package hmm
