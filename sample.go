package graphlab

import (
	"errors"
	"fmt"
	"math"
)

// Sample is one evaluated point of the plotted function.
type Sample struct {
	T float64 // domain coordinate
	Y float64 // function value at T
}

// Func is a real function of one variable.
type Func func(t float64) float64

// minDenominator keeps CubedCosine finite near t = -4/3.
const minDenominator = 1e-9

// CubedCosine evaluates y = cos³(t²) / (1.5t + 2).
func CubedCosine(t float64) float64 {
	c := math.Cos(t * t)
	den := 1.5*t + 2
	if math.Abs(den) < minDenominator {
		den = minDenominator
	}
	return c * c * c / den
}

// CubedCosineTitle is the plot title matching CubedCosine.
const CubedCosineTitle = "y = cos^3(t^2) / (1.5t + 2)"

// Domain is a closed sampling interval walked at a fixed step.
type Domain struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// DefaultDomain is t ∈ [2.3, 7.2] with step 0.8.
var DefaultDomain = Domain{Start: 2.3, End: 7.2, Step: 0.8}

var (
	// ErrInvalidStep is returned for a step that is not a positive finite number.
	ErrInvalidStep = errors.New("graphlab: step must be positive and finite")
	// ErrInvalidDomain is returned when Start > End or a bound is not finite.
	ErrInvalidDomain = errors.New("graphlab: invalid domain")
	// ErrTooManySamples is returned when a domain would yield more than
	// MaxSamples samples.
	ErrTooManySamples = errors.New("graphlab: too many samples")
)

// MaxSamples caps the number of samples a Domain may produce.
const MaxSamples = 1 << 20

// Validate reports whether d can be sampled.
func (d Domain) Validate() error {
	if math.IsNaN(d.Step) || math.IsInf(d.Step, 0) || d.Step <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidStep, d.Step)
	}
	if math.IsNaN(d.Start) || math.IsInf(d.Start, 0) ||
		math.IsNaN(d.End) || math.IsInf(d.End, 0) {
		return fmt.Errorf("%w: bounds [%v, %v] are not finite", ErrInvalidDomain, d.Start, d.End)
	}
	if d.Start > d.End {
		return fmt.Errorf("%w: start %v > end %v", ErrInvalidDomain, d.Start, d.End)
	}
	if n := d.steps(); math.IsNaN(n) || n >= MaxSamples {
		return fmt.Errorf("%w: [%v, %v] at step %v exceeds %d", ErrTooManySamples, d.Start, d.End, d.Step, MaxSamples)
	}
	return nil
}

// steps is the number of whole steps between Start and End. It may be +Inf
// when End-Start overflows or Step underflows the quotient.
func (d Domain) steps() float64 {
	return math.Floor((d.End-d.Start)/d.Step + gridTolerance)
}

// Len returns the number of samples Generate produces for d, or 0 if d is
// invalid.
func (d Domain) Len() int {
	if d.Validate() != nil {
		return 0
	}
	return int(d.steps()) + 1
}

// gridTolerance is measured in steps. It keeps an End that lies on the grid
// despite rounding in (End-Start)/Step.
const gridTolerance = 1e-9

// Generate evaluates fn at t = Start, Start+Step, Start+2·Step, ... while
// t ≤ End. Each t is computed as Start + i·Step rather than accumulated, so
// rounding error does not grow with the sample count.
func Generate(fn Func, d Domain) ([]Sample, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := d.Len()
	samples := make([]Sample, n)
	for i := range samples {
		t := d.Start + float64(i)*d.Step
		samples[i] = Sample{T: t, Y: fn(t)}
	}
	return samples, nil
}
