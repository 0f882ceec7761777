// SPDX-License-Identifier: MIT

package fdm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vanilla/option"
)

// grid bundles the validated, derived discretization of one solve.
type grid struct {
	n, m int     // time steps N, price steps M
	dt   float64 // T / N
	ds   float64 // smax / M
	smax float64 // SMaxMultiple · S
	j0   int     // readout node: floor(S / ds)
	frac float64 // S/ds − j0, for optional interpolation
}

// prepare validates the contract and options, derives the grid
// constants and enforces the stability precondition. No row storage is
// allocated before every check has passed.
func prepare(o option.Option, opts Options) (grid, error) {
	if err := o.Validate(); err != nil {
		return grid{}, err
	}
	if o.Type != option.Call {
		return grid{}, ErrPutUnsupported
	}
	if opts.TimeSteps < 1 || opts.PriceSteps < 2 {
		return grid{}, ErrSteps
	}
	if !(opts.SMaxMultiple > 1) {
		return grid{}, ErrSMaxMultiple
	}

	var g grid
	g.n = opts.TimeSteps
	g.m = opts.PriceSteps
	g.dt = o.T / float64(g.n)
	g.smax = opts.SMaxMultiple * o.S
	g.ds = g.smax / float64(g.m)

	// Readout node nearest the spot. SMaxMultiple > 1 pins it strictly
	// inside [0, M); assert rather than assume.
	exact := o.S / g.ds
	g.j0 = int(math.Floor(exact))
	g.frac = exact - float64(g.j0)
	if g.j0 < 0 || g.j0 > g.m {
		return grid{}, fmt.Errorf("%w: j0=%d, M=%d", ErrIndexRange, g.j0, g.m)
	}

	// Conditional stability of the explicit scheme. A violated bound
	// makes the recurrence amplify discretization error; refuse to run.
	denom := o.Sigma*o.Sigma*float64(g.m-1) + 0.5*o.R
	if denom > 0 {
		if bound := 1 / denom; g.dt > bound {
			return grid{}, fmt.Errorf("%w: Δt=%.6g exceeds bound %.6g (σ=%v, M=%d, r=%v)",
				ErrUnstable, g.dt, bound, o.Sigma, g.m, o.R)
		}
	}

	return g, nil
}

// coefficients precomputes the three stencil weights per interior node.
// For j in [1, M−1]:
//
//	a_j = ½·j·Δt·(σ²·j − r)     weight of c(i−1, j−1)
//	b_j = 1 − r·Δt − σ²·j²·Δt   weight of c(i−1, j)
//	c_j = ½·j·Δt·(σ²·j + r)     weight of c(i−1, j+1)
func coefficients(o option.Option, g grid) (a, b, c []float64) {
	a = make([]float64, g.m)
	b = make([]float64, g.m)
	c = make([]float64, g.m)
	s2 := o.Sigma * o.Sigma
	for j := 1; j < g.m; j++ {
		fj := float64(j)
		a[j] = 0.5 * fj * g.dt * (s2*fj - o.R)
		b[j] = 1 - o.R*g.dt - s2*fj*fj*g.dt
		c[j] = 0.5 * fj * g.dt * (s2*fj + o.R)
	}

	return a, b, c
}

// terminalRow fills dst with the call payoff over the price axis and
// pins both boundary nodes.
func terminalRow(dst []float64, o option.Option, g grid) {
	for j := 0; j <= g.m; j++ {
		dst[j] = math.Max(float64(j)*g.ds-o.K, 0)
	}
	dst[0] = 0
	dst[g.m] = g.smax
}

// stepRow advances one time layer: dst's interior from src via the
// stencil, boundaries re-pinned. Interior updates touch j in [1, M−1]
// only, so the boundary columns are never produced by the recurrence.
func stepRow(dst, src, a, b, c []float64, g grid) {
	dst[0] = 0
	for j := 1; j < g.m; j++ {
		dst[j] = a[j]*src[j-1] + b[j]*src[j] + c[j]*src[j+1]
	}
	dst[g.m] = g.smax
}

// readout extracts the price at the node nearest the spot, optionally
// blending with the right neighbor.
func readout(row []float64, g grid, interpolate bool) float64 {
	price := row[g.j0]
	if interpolate && g.j0 < g.m {
		price += g.frac * (row[g.j0+1] - row[g.j0])
	}

	return price
}

// Price solves the reversed-time Black-Scholes PDE for a European call
// on an N×M explicit grid and returns the value at the node nearest
// the spot.
//
// Algorithm Outline:
//  1. Validate contract and options; derive Δt, ΔS, S_max, readout
//     node; enforce Δt ≤ 1/(σ²(M−1)+r/2) — ErrUnstable otherwise.
//  2. Row 0 (expiry): c(0,j) = max(j·ΔS − K, 0).
//  3. Rows 1..N: three-point stencil from the previous row;
//     c(i,0) = 0 and c(i,M) = S_max stay pinned on every row.
//  4. Return c(N, ⌊S/ΔS⌋), linearly interpolated when requested.
//
// Complexity: O(N·M) time; O(M) memory in TwoRows mode, O(N·M) in
// FullGrid mode.
func Price(o option.Option, opts Options) (float64, error) {
	g, err := prepare(o, opts)
	if err != nil {
		return 0, err
	}

	if opts.GridMode == FullGrid {
		rows := march(o, g)

		return readout(rows[g.n], g, opts.Interpolate), nil
	}

	// Two alternating buffers; each row depends only on its
	// predecessor, so nothing else needs to survive.
	a, b, c := coefficients(o, g)
	prev := make([]float64, g.m+1)
	cur := make([]float64, g.m+1)
	terminalRow(prev, o, g)
	for i := 1; i <= g.n; i++ {
		stepRow(cur, prev, a, b, c, g)
		prev, cur = cur, prev
	}

	return readout(prev, g, opts.Interpolate), nil
}

// Grid materializes and returns the whole (N+1)×(M+1) value surface,
// row i holding reversed time i·Δt. Requires GridMode=FullGrid, since
// TwoRows storage discards everything but the frontier.
//
// Complexity: O(N·M) time and memory.
func Grid(o option.Option, opts Options) ([][]float64, error) {
	if opts.GridMode != FullGrid {
		return nil, ErrGridNeedsFullGrid
	}
	g, err := prepare(o, opts)
	if err != nil {
		return nil, err
	}

	return march(o, g), nil
}

// march fills the full surface row by row.
func march(o option.Option, g grid) [][]float64 {
	a, b, c := coefficients(o, g)
	rows := make([][]float64, g.n+1)
	for i := range rows {
		rows[i] = make([]float64, g.m+1)
	}
	terminalRow(rows[0], o, g)
	for i := 1; i <= g.n; i++ {
		stepRow(rows[i], rows[i-1], a, b, c, g)
	}

	return rows
}
