// SPDX-License-Identifier: MIT

// Package fdm prices a vanilla European call by solving the
// Black-Scholes PDE with an explicit finite-difference scheme.
//
// What:
//
//   - The PDE is discretized on a reversed-time × price grid:
//     N time steps of Δt = T/N, M price steps of ΔS = S_max/M with
//     S_max = SMaxMultiple·S (5·S by default).
//   - Row 0 holds the payoff at expiry; every later row follows from
//     its predecessor through a three-point stencil (forward time
//     difference, central first- and second-order price differences).
//   - The price is read at the grid node nearest the spot, optionally
//     blended linearly with its right neighbor.
//
// Why:
//
//   - Unlike the closed form, the PDE route generalizes to payoffs and
//     boundary conditions with no analytical solution; the explicit
//     scheme is its simplest member — no linear solve, each row is a
//     direct substitution from the previous one.
//
// Stability:
//
//	The explicit scheme is only conditionally stable. Before any grid
//	is allocated, Price verifies
//
//	    Δt ≤ 1 / (σ²·(M−1) + r/2)
//
//	and refuses to run otherwise: a violated bound means discretization
//	errors grow without bound and the recurrence produces garbage that
//	still looks like a number. That condition is ErrUnstable, a distinct
//	error value — never a numeric result.
//
// Complexity:
//
//   - Time:   O(N·M)
//   - Memory: O(M) in TwoRows mode (default), O(N·M) in FullGrid mode.
//     Each row depends only on its predecessor, so two alternating
//     buffers suffice unless the whole surface is wanted.
//
// Options:
//
//   - Options.TimeSteps, Options.PriceSteps: grid resolution (N, M).
//   - Options.SMaxMultiple: upper price bound as a multiple of spot.
//     The classic heuristic is 5×; it is a modeling choice, not a
//     derived constant, so it is configurable.
//   - Options.GridMode: TwoRows or FullGrid (FullGrid enables Grid).
//   - Options.Interpolate: linear blend between the two nodes
//     bracketing the spot at readout.
//
// Errors:
//
//   - option validation errors from option.Validate.
//   - ErrPutUnsupported: the boundary conditions here are call-specific.
//   - ErrSteps: TimeSteps < 1 or PriceSteps < 2.
//   - ErrSMaxMultiple: SMaxMultiple ≤ 1 (the spot must sit inside the grid).
//   - ErrUnstable: the stability bound above is violated.
//   - ErrIndexRange: the readout node fell outside [0, M].
//   - ErrGridNeedsFullGrid: Grid called without GridMode=FullGrid.
package fdm
