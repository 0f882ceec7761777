package blackscholes

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/vanilla/option"
)

// stdNormal is the unit normal used for Φ and φ. CDF/Prob never touch
// the random source, so the zero Src is fine here.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// d1d2 computes the two Black-Scholes quantiles for a validated option.
func d1d2(o option.Option) (d1, d2 float64) {
	volT := o.Sigma * math.Sqrt(o.T)
	d1 = (math.Log(o.S/o.K) + (o.R+0.5*o.Sigma*o.Sigma)*o.T) / volT
	d2 = d1 - volT

	return d1, d2
}

// Price returns the exact Black-Scholes value of o.
//
//	call = S·Φ(d1) − K·e^{−rT}·Φ(d2)
//	put  = K·e^{−rT}·Φ(−d2) − S·Φ(−d1)
//
// Complexity: O(1).
func Price(o option.Option) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	d1, d2 := d1d2(o)
	disc := math.Exp(-o.R * o.T)
	if o.Type == option.Put {
		return o.K*disc*stdNormal.CDF(-d2) - o.S*stdNormal.CDF(-d1), nil
	}

	return o.S*stdNormal.CDF(d1) - o.K*disc*stdNormal.CDF(d2), nil
}

// Greeks holds the first-order sensitivities of the Black-Scholes value.
// Vega and Rho are per unit change (not per percentage point); Theta is
// per year and negative for long vanilla positions in typical regimes.
type Greeks struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// ComputeGreeks returns all five sensitivities of o in one evaluation.
//
// Complexity: O(1).
func ComputeGreeks(o option.Option) (Greeks, error) {
	if err := o.Validate(); err != nil {
		return Greeks{}, err
	}

	d1, d2 := d1d2(o)
	var (
		sqrtT = math.Sqrt(o.T)
		pdf   = stdNormal.Prob(d1)
		disc  = math.Exp(-o.R * o.T)
		g     Greeks
	)

	g.Gamma = pdf / (o.S * o.Sigma * sqrtT)
	g.Vega = o.S * pdf * sqrtT
	if o.Type == option.Put {
		g.Delta = stdNormal.CDF(d1) - 1
		g.Theta = -o.S*pdf*o.Sigma/(2*sqrtT) + o.R*o.K*disc*stdNormal.CDF(-d2)
		g.Rho = -o.K * o.T * disc * stdNormal.CDF(-d2)
	} else {
		g.Delta = stdNormal.CDF(d1)
		g.Theta = -o.S*pdf*o.Sigma/(2*sqrtT) - o.R*o.K*disc*stdNormal.CDF(d2)
		g.Rho = o.K * o.T * disc * stdNormal.CDF(d2)
	}

	return g, nil
}
