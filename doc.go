// Package markov is a compact toolkit for exact inference in discrete-state
// Hidden Markov Models with Gaussian-like scalar emissions.
//
// 🚀 What is markov?
//
//	A pure-Go library implementing the two classical HMM inference sweeps:
//	  • Forward–Backward: smoothed posterior marginals over hidden states
//	  • Viterbi: the single most probable hidden state path
//	Both run against an immutable Model (means, transition matrix, initial
//	distribution) and a caller-supplied observation sequence.
//
// ✨ Why choose markov?
//
//   - Deterministic – explicit lowest-index tie-breaks, fixed loop orders
//   - Numerically honest – scaled recursions, log-domain Viterbi, and
//     degenerate renormalization surfaced as errors instead of silent NaN
//   - Concurrency-friendly – a Model is read-only after construction and
//     safe to share across goroutines; every call owns its DP tables
//   - Pure Go – no cgo, no hidden I/O
//
// Everything is organized under two subpackages:
//
//	hmm/     — Model construction, emission likelihoods, ForwardBackward,
//	           ViterbiDecode
//	numeric/ — the eager dense backend: row-major matrices, elementary
//	           kernels, reductions and checked normalization
//
// Quick example:
//
//	P, _ := numeric.FromRows([][]float64{{0.5, 0.5}, {0, 1}})
//	m, _ := hmm.New([]float64{0, 1}, P)
//	path, _, _ := hmm.ViterbiDecode(m, []float64{0, 1, 0, 0, 1, 1, 1, 1, 1})
//
// See hmm and numeric package docs for the full API.
package markov
