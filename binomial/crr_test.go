package binomial_test

import (
	"testing"

	"github.com/katalvlaran/vanilla/binomial"
	"github.com/katalvlaran/vanilla/blackscholes"
	"github.com/katalvlaran/vanilla/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference is the shared convergence fixture; closed form ≈ 6.5611.
var reference = option.Option{S: 200, K: 205, R: 0.02, Sigma: 0.14, T: 0.5}

// TestPrice_ConvergesToClosedForm verifies the N=500 lattice lands
// within 0.01 of the analytical price.
func TestPrice_ConvergesToClosedForm(t *testing.T) {
	exact, err := blackscholes.Price(reference)
	require.NoError(t, err)

	got, err := binomial.Price(reference, binomial.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, exact, got, 0.01)
}

// TestPrice_ErrorShrinks verifies deepening the lattice tightens the
// error against the closed form.
func TestPrice_ErrorShrinks(t *testing.T) {
	exact, err := blackscholes.Price(reference)
	require.NoError(t, err)

	coarse, err := binomial.Price(reference, binomial.Options{Steps: 10})
	require.NoError(t, err)
	fine, err := binomial.Price(reference, binomial.Options{Steps: 2000})
	require.NoError(t, err)

	assert.Less(t, abs(fine-exact), abs(coarse-exact))
	assert.InDelta(t, exact, fine, 0.005)
}

// TestPrice_SingleStep pins the hand-computable one-step tree.
func TestPrice_SingleStep(t *testing.T) {
	got, err := binomial.Price(reference, binomial.Options{Steps: 1})
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	// One step cannot be accurate, but it must stay in the no-arbitrage
	// band [max(S−K·e^{−rT},0), S].
	assert.Less(t, got, reference.S)
}

// TestPrice_MonotoneInVol verifies the lattice inherits the
// vol-monotonicity of the call value.
func TestPrice_MonotoneInVol(t *testing.T) {
	prev := 0.0
	for _, sigma := range []float64{0.05, 0.14, 0.30} {
		o := reference
		o.Sigma = sigma
		got, err := binomial.Price(o, binomial.DefaultOptions())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "sigma %v", sigma)
		prev = got
	}
}

// TestPrice_AmericanCallEqualsEuropean verifies the classic result that
// an American call on a non-dividend-paying asset carries no
// early-exercise premium.
func TestPrice_AmericanCallEqualsEuropean(t *testing.T) {
	opts := binomial.DefaultOptions()
	eur, err := binomial.Price(reference, opts)
	require.NoError(t, err)

	opts.Exercise = binomial.American
	amr, err := binomial.Price(reference, opts)
	require.NoError(t, err)

	assert.InDelta(t, eur, amr, 1e-9)
}

// TestPrice_AmericanPutPremium verifies the American put dominates the
// European put strictly for a deep in-the-money contract.
func TestPrice_AmericanPutPremium(t *testing.T) {
	o := reference
	o.Type = option.Put
	o.K = 260 // deep ITM: early exercise is worth something

	opts := binomial.DefaultOptions()
	eur, err := binomial.Price(o, opts)
	require.NoError(t, err)

	opts.Exercise = binomial.American
	amr, err := binomial.Price(o, opts)
	require.NoError(t, err)

	assert.Greater(t, amr, eur)
	// American deep-ITM put must be worth at least intrinsic value.
	assert.GreaterOrEqual(t, amr, o.K-o.S-1e-9)
}

// TestPrice_DegenerateProbability verifies a coarse step with a high
// rate and tiny vol pushes p past 1 and is rejected, never priced.
func TestPrice_DegenerateProbability(t *testing.T) {
	o := reference
	o.R = 2.0
	o.Sigma = 0.05
	o.T = 1

	_, err := binomial.Price(o, binomial.Options{Steps: 1})
	assert.ErrorIs(t, err, binomial.ErrProbability)
}

// TestPrice_BadSteps verifies Steps < 1 errors before any allocation.
func TestPrice_BadSteps(t *testing.T) {
	_, err := binomial.Price(reference, binomial.Options{Steps: 0})
	assert.ErrorIs(t, err, binomial.ErrSteps)
}

// TestPrice_InvalidOption verifies contract validation runs first.
func TestPrice_InvalidOption(t *testing.T) {
	o := reference
	o.T = 0
	_, err := binomial.Price(o, binomial.DefaultOptions())
	assert.ErrorIs(t, err, option.ErrNonPositive)
}

// abs avoids importing math for one call site.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
