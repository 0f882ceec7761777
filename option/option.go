package option

import (
	"errors"
	"math"
)

var (
	// ErrNonPositive indicates S, K, T or Sigma is zero or negative.
	ErrNonPositive = errors.New("option: S, K, T and Sigma must be positive")
	// ErrNotFinite indicates a parameter is NaN or infinite.
	ErrNotFinite = errors.New("option: parameters must be finite")
	// ErrBadType indicates an option type other than Call or Put.
	ErrBadType = errors.New("option: type must be Call or Put")
)

// Type distinguishes the two vanilla payoffs.
type Type uint8

const (
	// Call pays max(S_T − K, 0) at expiry.
	Call Type = iota
	// Put pays max(K − S_T, 0) at expiry.
	Put
)

// String returns "call" or "put"; unknown values render as "invalid".
func (t Type) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "invalid"
	}
}

// Valid reports whether t is Call or Put.
func (t Type) Valid() bool {
	return t == Call || t == Put
}

// Option holds the scalar parameters of one vanilla contract.
// A zero Type means Call. Values are immutable inputs for the duration
// of a pricing call; solvers never mutate them.
type Option struct {
	// S is the current underlying (spot) price. Must be > 0.
	S float64
	// K is the strike price. Must be > 0.
	K float64
	// R is the continuously compounded risk-free rate. Any finite value.
	R float64
	// Sigma is the annualized volatility. Must be > 0.
	Sigma float64
	// T is the time to maturity in years. Must be > 0.
	T float64
	// Type selects Call or Put payoff.
	Type Type
}

// Validate checks the contract parameters.
// Returns ErrNotFinite for NaN/±Inf, ErrNonPositive for S, K, T or
// Sigma ≤ 0, and ErrBadType for an unknown Type.
//
// Complexity: O(1).
func (o Option) Validate() error {
	for _, v := range [...]float64{o.S, o.K, o.R, o.Sigma, o.T} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}
	if o.S <= 0 || o.K <= 0 || o.Sigma <= 0 || o.T <= 0 {
		return ErrNonPositive
	}
	if !o.Type.Valid() {
		return ErrBadType
	}

	return nil
}

// Payoff evaluates the intrinsic value of the option at underlying
// price s: max(s−K, 0) for a call, max(K−s, 0) for a put.
//
// Complexity: O(1).
func (o Option) Payoff(s float64) float64 {
	switch o.Type {
	case Put:
		return math.Max(o.K-s, 0)
	default:
		return math.Max(s-o.K, 0)
	}
}
