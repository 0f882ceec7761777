// SPDX-License-Identifier: MIT

// Package fdm: options, defaults and sentinel errors for the explicit
// finite-difference solver.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: every misconfiguration is a sentinel error
//     surfaced before the first grid row is touched.
//   - No dead switches: each option changes behavior and is covered by
//     tests.
package fdm

import "errors"

var (
	// ErrSteps indicates TimeSteps < 1 or PriceSteps < 2. PriceSteps
	// of 1 or less degenerates the stability divisor before the bound
	// can even be evaluated.
	ErrSteps = errors.New("fdm: TimeSteps must be ≥ 1 and PriceSteps ≥ 2")
	// ErrSMaxMultiple indicates SMaxMultiple ≤ 1; the grid's upper
	// price bound must lie strictly above the spot.
	ErrSMaxMultiple = errors.New("fdm: SMaxMultiple must be > 1")
	// ErrPutUnsupported indicates a put was passed; the solver's
	// boundary conditions encode a call.
	ErrPutUnsupported = errors.New("fdm: only call options are supported")
	// ErrUnstable indicates the explicit scheme's stability bound
	// Δt ≤ 1/(σ²(M−1)+r/2) is violated for the chosen grid.
	ErrUnstable = errors.New("fdm: unstable discretization")
	// ErrIndexRange indicates the readout node floor(S/ΔS) fell
	// outside [0, M]. Cannot happen while SMaxMultiple > 1 holds;
	// asserted anyway.
	ErrIndexRange = errors.New("fdm: readout index outside grid")
	// ErrGridNeedsFullGrid indicates Grid was called with a TwoRows
	// configuration, which discards all but the last two rows.
	ErrGridNeedsFullGrid = errors.New("fdm: Grid requires GridMode=FullGrid")
)

// GridMode controls how much of the time × price surface is kept.
//
//   - TwoRows  — keep only the current and previous time layers.
//     Memory: O(M). The full surface is not recoverable.
//   - FullGrid — materialize all (N+1)×(M+1) values.
//     Memory: O(N·M). Required by Grid.
type GridMode uint8

const (
	// TwoRows mode: two alternating row buffers, O(M) memory.
	TwoRows GridMode = iota
	// FullGrid mode: whole surface retained, O(N·M) memory.
	FullGrid
)

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultTimeSteps is the default N. Together with
	// DefaultPriceSteps it keeps the reference fixture of the package
	// tests within 0.01 of the closed form.
	DefaultTimeSteps = 5000
	// DefaultPriceSteps is the default M.
	DefaultPriceSteps = 500
	// DefaultSMaxMultiple is the classic 5× spot upper-bound heuristic.
	DefaultSMaxMultiple = 5.0
)

// Options configures the solver.
type Options struct {
	// TimeSteps is N, the number of time layers. Must be ≥ 1.
	TimeSteps int
	// PriceSteps is M, the number of price intervals. Must be ≥ 2.
	PriceSteps int
	// SMaxMultiple sets the grid's upper price bound to
	// SMaxMultiple·S. Must be > 1. Adequacy depends on σ and T; raise
	// it for high-vol or long-dated contracts.
	SMaxMultiple float64
	// GridMode selects TwoRows (default) or FullGrid storage.
	GridMode GridMode
	// Interpolate blends the two nodes bracketing the spot at readout
	// instead of taking the nearest-node value verbatim.
	Interpolate bool
}

// DefaultOptions returns the canonical configuration: a 5000×500 grid,
// the 5× upper-bound heuristic, two-row storage, nearest-node readout.
func DefaultOptions() Options {
	return Options{
		TimeSteps:    DefaultTimeSteps,
		PriceSteps:   DefaultPriceSteps,
		SMaxMultiple: DefaultSMaxMultiple,
		GridMode:     TwoRows,
		Interpolate:  false,
	}
}
