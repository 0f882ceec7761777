package binomial

import (
	"math"

	"github.com/katalvlaran/vanilla/option"
)

// Price values o on an N-step CRR lattice.
//
// Algorithm Outline:
//  1. Δt = T/N, u = e^{σ√Δt}, d = 1/u, p = (e^{rΔt} − d)/(u − d).
//  2. Fill v[j] = payoff(S·u^j·d^{N−j}) for j = 0..N.
//  3. Collapse backward: for step = N..1, for j = 0..step−1,
//     v[j] = e^{−rΔt}·(p·v[j+1] + (1−p)·v[j]);
//     under American exercise, v[j] = max(v[j], intrinsic at the node).
//  4. v[0] is the root value.
//
// The value slice is collapsed in place, so memory stays O(N) no matter
// how deep the tree is.
//
// Complexity: O(N²) time, O(N) memory.
func Price(o option.Option, opts Options) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if opts.Steps < 1 {
		return 0, ErrSteps
	}

	n := opts.Steps
	dt := o.T / float64(n)
	u := math.Exp(o.Sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp(o.R*dt) - d) / (u - d)
	if p < 0 || p > 1 {
		return 0, ErrProbability
	}
	disc := math.Exp(-o.R * dt)

	// Terminal layer: payoff over the N+1 leaves, lowest price first.
	v := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		v[j] = o.Payoff(o.S * math.Pow(u, float64(j)) * math.Pow(d, float64(n-j)))
	}

	// Backward induction, collapsing one node per step.
	for step := n; step >= 1; step-- {
		for j := 0; j < step; j++ {
			cont := disc * (p*v[j+1] + (1-p)*v[j])
			if opts.Exercise == American {
				s := o.S * math.Pow(u, float64(j)) * math.Pow(d, float64(step-1-j))
				cont = math.Max(cont, o.Payoff(s))
			}
			v[j] = cont
		}
	}

	return v[0], nil
}
