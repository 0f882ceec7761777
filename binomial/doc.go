// Package binomial prices vanilla options on a Cox-Ross-Rubinstein
// lattice.
//
// What:
//
//   - Price walks an N-step recombining tree with up factor u=e^{σ√Δt},
//     down factor d=1/u and risk-neutral probability p=(e^{rΔt}−d)/(u−d),
//     then discounts backward to the root.
//   - Exercise selects European (continuation only) or American
//     (max of continuation and intrinsic at every node).
//
// Why:
//
//   - The lattice converges to the Black-Scholes value as N grows and,
//     unlike the closed form, handles early exercise.
//
// Complexity:
//
//   - Time:   O(N²)  (N terminal nodes collapsed over N steps)
//   - Memory: O(N)   (one value slice, collapsed in place)
//
// Options:
//
//   - Options.Steps: number of time steps N (default 500).
//   - Options.Exercise: European or American.
//
// Errors:
//
//   - option validation errors from option.Validate.
//   - ErrSteps: Steps < 1.
//   - ErrProbability: the risk-neutral probability falls outside [0,1]
//     (Δt too coarse for the given σ and r).
package binomial
