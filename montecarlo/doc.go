// Package montecarlo estimates a vanilla European option price by
// simulating terminal GBM prices under the risk-neutral measure.
//
// What:
//
//   - Each path draws one standard normal Z and evaluates
//     S_T = S·exp((r − σ²/2)·T + σ·√T·Z); the estimate is the mean of
//     discounted payoffs, reported together with the 95% confidence
//     width 2·1.96·σ̂/√n.
//   - Paths are processed in fixed-size blocks, each with its own
//     deterministic RNG substream derived from the seed. Workers pick
//     blocks off a shared counter; per-block moments are combined in
//     block order, so the result is identical for a given (Seed, Paths)
//     no matter how many workers run or in what order blocks finish.
//
// Why:
//
//   - Simulation is the method of last resort and of most generality;
//     for the vanilla contract it doubles as an error-bar-carrying
//     cross-check of the other three solvers.
//
// Complexity:
//
//   - Time:   O(n) draws, parallel across workers.
//   - Memory: O(blockSize) per worker.
//
// Options:
//
//   - Options.Paths: number of simulated paths n.
//   - Options.Seed: RNG seed; 0 means a fixed default seed, never the
//     clock (same policy for every stochastic routine in this module).
//   - Options.Workers: goroutines drawing blocks; ≤ 1 means serial.
//
// Errors:
//
//   - option validation errors from option.Validate.
//   - ErrPaths: Paths < 1.
//   - ErrWorkers: Workers < 0.
package montecarlo
