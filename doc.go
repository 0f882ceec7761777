// Package vanilla prices vanilla European options four independent ways,
// from the exact closed form down to brute-force simulation.
//
// 🚀 What is vanilla?
//
//	A small, deterministic pricing library that brings together:
//		• Closed form: Black-Scholes price and Greeks
//		• Lattice: Cox-Ross-Rubinstein binomial tree (European & American exercise)
//		• PDE: explicit finite-difference solver with a hard stability gate
//		• Simulation: seeded GBM Monte Carlo with a reported confidence width
//
// ✨ Why choose vanilla?
//
//   - One contract, four solvers – the same option.Option feeds every method,
//     so cross-checking prices is a one-liner
//   - Rock-solid failure modes – sentinel errors only; an unstable grid or a
//     degenerate tree is an error value, never a silently wrong number
//   - Reproducible randomness – fixed seeds and derived substreams; the same
//     (seed, paths, workers) always yields the same estimate
//   - Pure functions – no global state, no I/O, no hidden clocks
//
// Under the hood, everything is organized under five subpackages:
//
//	option/       — shared contract: parameters, payoff, validation
//	blackscholes/ — analytical price & Greeks
//	binomial/     — CRR lattice
//	fdm/          — explicit finite-difference PDE solver
//	montecarlo/   — GBM path sampler with confidence reporting
//
// Quick cross-check:
//
//	o := option.Option{S: 200, K: 205, R: 0.02, Sigma: 0.14, T: 0.5}
//	exact, _ := blackscholes.Price(o)          // ≈ 6.5611
//	tree, _ := binomial.Price(o, binomial.DefaultOptions())
//	grid, _ := fdm.Price(o, fdm.DefaultOptions())
//
// All three agree to the penny on a sane discretization; the Monte Carlo
// estimate additionally reports how far it may be off.
//
// Dive into examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/vanilla
package vanilla
