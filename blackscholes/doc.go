// Package blackscholes evaluates the closed-form Black-Scholes price
// and Greeks of a vanilla European option.
//
// What:
//
//   - Price: exact call/put value under GBM dynamics via d1/d2 and the
//     standard normal CDF.
//   - Greeks: Delta, Gamma, Vega, Theta, Rho in one pass (the d1/d2
//     pair is shared across all five).
//
// Why:
//
//   - The closed form is the reference every numerical method in this
//     module (binomial, fdm, montecarlo) is benchmarked against.
//
// Complexity:
//
//   - Price:  O(1)
//   - Greeks: O(1)
//
// Errors:
//
//   - Only validation errors from option.Validate; the formula itself
//     cannot fail on validated inputs.
package blackscholes
