package binomial

import "errors"

var (
	// ErrSteps indicates a non-positive step count.
	ErrSteps = errors.New("binomial: Steps must be ≥ 1")
	// ErrProbability indicates the CRR risk-neutral probability left
	// [0,1]; the time step is too coarse for the given rate and vol.
	ErrProbability = errors.New("binomial: risk-neutral probability outside [0,1]")
)

// ExerciseStyle selects when the holder may exercise.
type ExerciseStyle uint8

const (
	// European exercise: at expiry only.
	European ExerciseStyle = iota
	// American exercise: at any lattice node.
	American
)

// DefaultSteps is the lattice depth used by DefaultOptions. 500 steps
// put a CRR European call within ~0.01 of the closed form for
// contracts like the package test fixture.
const DefaultSteps = 500

// Options configures the lattice.
type Options struct {
	// Steps is the number of time steps N. Must be ≥ 1.
	Steps int
	// Exercise is European or American.
	Exercise ExerciseStyle
}

// DefaultOptions returns the canonical configuration:
// Steps=DefaultSteps, European exercise.
func DefaultOptions() Options {
	return Options{Steps: DefaultSteps, Exercise: European}
}
