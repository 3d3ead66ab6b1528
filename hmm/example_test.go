package hmm_test

import (
	"fmt"

	"github.com/katalvlaran/markov/hmm"
	"github.com/katalvlaran/markov/numeric"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleViterbiDecode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 2-state chain with an absorbing second state:
//	  P  = [[0.5, 0.5],
//	        [0.0, 1.0]]     (state 1 never returns to state 0)
//	  w  = [0, 1]           (per-state emission means)
//	  y  = [0, 1, 0, 0, 1, 1, 1, 1, 1]
//
// Because P[1][0] = 0 is a -Inf log barrier, the optimal path commits to
// state 1 exactly once and rides out the two mismatched observations
// rather than paying repeated 0→0/0→1 transition costs.
//
// Complexity: O(T·K²) time, O(T·K) memory.
func ExampleViterbiDecode() {
	P, err := numeric.FromRows([][]float64{
		{0.5, 0.5},
		{0.0, 1.0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m, err := hmm.New([]float64{0, 1}, P)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	path, _, err := hmm.ViterbiDecode(m, []float64{0, 1, 0, 0, 1, 1, 1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("path =", path)
	// Output:
	// path = [0 1 1 1 1 1 1 1 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleForwardBackward
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A sticky 2-state chain observed twice near each state's mean:
//	  P = [[0.9, 0.1],
//	       [0.2, 0.8]]
//	  w = [0, 1]
//	  y = [0, 0, 1, 1]
//
// The smoothed marginals combine both sweeps, so each time step is
// assigned the state whose mean explains it best in the context of the
// whole sequence.
func ExampleForwardBackward() {
	P, err := numeric.FromRows([][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m, err := hmm.New([]float64{0, 1}, P)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sm, err := hmm.ForwardBackward(m, []float64{0, 0, 1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for t := 0; t < sm.Posterior.Rows(); t++ {
		row, err := sm.Posterior.Row(t)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("t=%d state=%d\n", t, numeric.ArgMax(row))
	}
	// Output:
	// t=0 state=0
	// t=1 state=0
	// t=2 state=1
	// t=3 state=1
}
