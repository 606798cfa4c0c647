package domain

import (
	"fmt"
	"math"
)

// OptionProfile describes the assumed normal distribution of one option's outcome.
type OptionProfile struct {
	Label  string
	Mean   float64
	StdDev float64
}

// Validate rejects profiles that cannot parameterize a normal distribution.
func (p OptionProfile) Validate() error {
	if math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0) {
		return fmt.Errorf("%w: %s mean %v is not finite", ErrInvalidParameter, p.name(), p.Mean)
	}
	if math.IsNaN(p.StdDev) || math.IsInf(p.StdDev, 0) {
		return fmt.Errorf("%w: %s std dev %v is not finite", ErrInvalidParameter, p.name(), p.StdDev)
	}
	if p.StdDev < 0 {
		return fmt.Errorf("%w: %s std dev %v < 0", ErrInvalidParameter, p.name(), p.StdDev)
	}
	return nil
}

func (p OptionProfile) name() string {
	if p.Label == "" {
		return "option"
	}
	return fmt.Sprintf("%q", p.Label)
}
