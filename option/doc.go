// Package option defines the contract shared by every pricing method:
// the scalar parameters of a vanilla option, its payoff, and strict
// input validation.
//
// What:
//
//   - Option bundles spot, strike, rate, volatility and maturity.
//   - Type selects Call or Put; Payoff evaluates intrinsic value.
//   - Validate rejects non-positive or non-finite parameters up front,
//     so solvers never have to re-check them mid-recurrence.
//
// Why:
//
//   - Every solver in this module (blackscholes, binomial, fdm,
//     montecarlo) is a pure function of these scalars; centralizing the
//     contract keeps their signatures identical and their error
//     taxonomy uniform.
//
// Errors:
//
//   - ErrNonPositive: S, K, T or Sigma is ≤ 0.
//   - ErrNotFinite: any parameter is NaN or ±Inf.
//   - ErrBadType: Type is neither Call nor Put.
package option
