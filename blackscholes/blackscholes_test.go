package blackscholes_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vanilla/blackscholes"
	"github.com/katalvlaran/vanilla/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference is the fixture shared with the binomial/fdm/montecarlo
// convergence tests: a slightly out-of-the-money half-year call.
var reference = option.Option{S: 200, K: 205, R: 0.02, Sigma: 0.14, T: 0.5}

// TestPrice_Reference pins the closed-form value of the shared fixture.
func TestPrice_Reference(t *testing.T) {
	got, err := blackscholes.Price(reference)
	require.NoError(t, err)
	assert.InDelta(t, 6.5611, got, 1e-3)
}

// TestPrice_PutCallParity verifies C − P = S − K·e^{−rT} to float
// precision across a spread of strikes.
func TestPrice_PutCallParity(t *testing.T) {
	for _, k := range []float64{150, 205, 260} {
		o := reference
		o.K = k

		call, err := blackscholes.Price(o)
		require.NoError(t, err)

		o.Type = option.Put
		put, err := blackscholes.Price(o)
		require.NoError(t, err)

		forward := o.S - o.K*discount(o)
		assert.InDelta(t, forward, call-put, 1e-9, "strike %v", k)
	}
}

// TestPrice_Monotone verifies the call value is non-decreasing in
// volatility (higher optionality can never cost less).
func TestPrice_Monotone(t *testing.T) {
	prev := 0.0
	for _, sigma := range []float64{0.05, 0.14, 0.25, 0.60} {
		o := reference
		o.Sigma = sigma
		got, err := blackscholes.Price(o)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "sigma %v", sigma)
		prev = got
	}
}

// TestPrice_Invalid verifies validation errors pass through untouched.
func TestPrice_Invalid(t *testing.T) {
	o := reference
	o.Sigma = 0
	_, err := blackscholes.Price(o)
	assert.ErrorIs(t, err, option.ErrNonPositive)
}

// TestComputeGreeks_CallBounds sanity-checks the Greeks of the fixture:
// call delta in (0,1), gamma and vega positive, theta negative, rho
// positive for a call.
func TestComputeGreeks_CallBounds(t *testing.T) {
	g, err := blackscholes.ComputeGreeks(reference)
	require.NoError(t, err)

	assert.Greater(t, g.Delta, 0.0)
	assert.Less(t, g.Delta, 1.0)
	assert.Greater(t, g.Gamma, 0.0)
	assert.Greater(t, g.Vega, 0.0)
	assert.Less(t, g.Theta, 0.0)
	assert.Greater(t, g.Rho, 0.0)
}

// TestComputeGreeks_DeltaParity verifies call delta − put delta = 1.
func TestComputeGreeks_DeltaParity(t *testing.T) {
	call, err := blackscholes.ComputeGreeks(reference)
	require.NoError(t, err)

	o := reference
	o.Type = option.Put
	put, err := blackscholes.ComputeGreeks(o)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, call.Delta-put.Delta, 1e-12)
}

// TestComputeGreeks_VegaFiniteDiff cross-checks vega against a central
// difference of the price in sigma.
func TestComputeGreeks_VegaFiniteDiff(t *testing.T) {
	const h = 1e-5

	g, err := blackscholes.ComputeGreeks(reference)
	require.NoError(t, err)

	up, dn := reference, reference
	up.Sigma += h
	dn.Sigma -= h
	pu, err := blackscholes.Price(up)
	require.NoError(t, err)
	pd, err := blackscholes.Price(dn)
	require.NoError(t, err)

	assert.InDelta(t, g.Vega, (pu-pd)/(2*h), 1e-4)
}

// discount returns e^{−rT} for o.
func discount(o option.Option) float64 {
	return math.Exp(-o.R * o.T)
}
