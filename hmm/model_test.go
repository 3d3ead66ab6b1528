package hmm_test

import (
	"testing"

	"github.com/katalvlaran/markov/hmm"
	"github.com/katalvlaran/markov/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *numeric.Dense {
	t.Helper()
	m, err := numeric.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestNew_NoStates verifies that an empty means slice is rejected.
func TestNew_NoStates(t *testing.T) {
	p := mustDense(t, [][]float64{{1}})

	_, err := hmm.New(nil, p)
	assert.ErrorIs(t, err, hmm.ErrNoStates)
}

// TestNew_NilTransition verifies that a nil transition matrix is rejected.
func TestNew_NilTransition(t *testing.T) {
	_, err := hmm.New([]float64{0, 1}, nil)
	assert.ErrorIs(t, err, numeric.ErrNilMatrix)
}

// TestNew_TransitionShapeMismatch verifies that a non-K×K transition
// matrix fails with ErrShapeMismatch.
func TestNew_TransitionShapeMismatch(t *testing.T) {
	// 2 states but a 2×3 matrix.
	p := mustDense(t, [][]float64{{0.5, 0.3, 0.2}, {0.1, 0.8, 0.1}})
	_, err := hmm.New([]float64{0, 1}, p)
	assert.ErrorIs(t, err, hmm.ErrShapeMismatch)

	// 2 states but a 3×3 matrix.
	p = mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	_, err = hmm.New([]float64{0, 1}, p)
	assert.ErrorIs(t, err, hmm.ErrShapeMismatch)
}

// TestNew_InitialDistShapeMismatch verifies that a wrong-length initial
// distribution fails with ErrShapeMismatch.
func TestNew_InitialDistShapeMismatch(t *testing.T) {
	p := mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})

	_, err := hmm.New([]float64{0, 1}, p, hmm.WithInitialDist([]float64{1}))
	assert.ErrorIs(t, err, hmm.ErrShapeMismatch)
}

// TestNew_DefaultInitialDist verifies the uniform 1/K default.
func TestNew_DefaultInitialDist(t *testing.T) {
	p := mustDense(t, [][]float64{
		{0.2, 0.3, 0.5},
		{0.1, 0.8, 0.1},
		{0.3, 0.3, 0.4},
	})

	m, err := hmm.New([]float64{-1, 0, 1}, p)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumStates())

	third := 1.0 / 3.0
	assert.Equal(t, []float64{third, third, third}, m.InitialDist())
}

// TestNew_ExplicitInitialDist verifies WithInitialDist round-trips.
func TestNew_ExplicitInitialDist(t *testing.T) {
	p := mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})

	m, err := hmm.New([]float64{0, 1}, p, hmm.WithInitialDist([]float64{0.9, 0.1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.1}, m.InitialDist())
}

// TestModel_Immutability verifies that neither later writes to the
// constructor inputs nor writes to accessor results reach the Model.
func TestModel_Immutability(t *testing.T) {
	means := []float64{0, 1}
	init := []float64{0.9, 0.1}
	p := mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})

	m, err := hmm.New(means, p, hmm.WithInitialDist(init))
	require.NoError(t, err)

	// Mutate every input after construction.
	means[0] = 42
	init[0] = 42
	require.NoError(t, p.Set(0, 0, 42))

	assert.Equal(t, []float64{0, 1}, m.Means())
	assert.Equal(t, []float64{0.9, 0.1}, m.InitialDist())
	v, err := m.Transition().At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	// Mutate accessor results; the Model must stay fixed.
	m.Means()[0] = -5
	m.InitialDist()[1] = -5
	require.NoError(t, m.Transition().Set(1, 1, -5))

	assert.Equal(t, []float64{0, 1}, m.Means())
	assert.Equal(t, []float64{0.9, 0.1}, m.InitialDist())
	v, err = m.Transition().At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

// TestLogLikelihood verifies the fixed-scale surrogate -2|y-w| exactly.
func TestLogLikelihood(t *testing.T) {
	p := mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	m, err := hmm.New([]float64{0, 1}, p)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, -2}, m.LogLikelihood(0))
	assert.Equal(t, []float64{-2, 0}, m.LogLikelihood(1))
	assert.Equal(t, []float64{-1, -3}, m.LogLikelihood(0.5), "scale factor is 2, not variance-derived")
	assert.Equal(t, []float64{-6, -4}, m.LogLikelihood(3))
}

// TestLikelihood verifies the exp of the surrogate and its documented
// "does not sum to 1" behavior on unlikely observations.
func TestLikelihood(t *testing.T) {
	p := mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	m, err := hmm.New([]float64{0, 1}, p)
	require.NoError(t, err)

	lik := m.Likelihood(0)
	assert.Equal(t, 1.0, lik[0])
	assert.InDelta(t, 0.1353352832366127, lik[1], 1e-15) // e^-2

	// A far-away observation: both states nearly zero, sum << 1.
	far := m.Likelihood(50)
	assert.Less(t, far[0]+far[1], 1e-40)
}
