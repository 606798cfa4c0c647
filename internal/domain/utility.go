package domain

import (
	"fmt"
	"math"
)

// DefaultUtilityEpsilon is the floor applied to outcomes before taking the logarithm.
const DefaultUtilityEpsilon = 1e-9

// UtilityResult compares both options under a logarithmic (risk-averse) utility.
type UtilityResult struct {
	UtilityA         float64
	UtilityB         float64
	UtilityAdvantage float64 // UtilityB - UtilityA
	Epsilon          float64
}

// EvaluateUtility clamps every outcome to max(v, epsilon), takes the natural
// logarithm and averages per sample.
//
// Log-utility penalizes variance: a riskier option with a better mean can still
// show a smaller or negative UtilityAdvantage than its ExpectedDifference suggests.
func EvaluateUtility(a, b OutcomeSample, epsilon float64) (UtilityResult, error) {
	if math.IsNaN(epsilon) || epsilon <= 0 {
		return UtilityResult{}, fmt.Errorf("evaluate utility: %w: epsilon %v must be > 0", ErrInvalidParameter, epsilon)
	}
	if err := checkPaired(a, b); err != nil {
		return UtilityResult{}, fmt.Errorf("evaluate utility: %w", err)
	}

	ua := meanLogUtility(a, epsilon)
	ub := meanLogUtility(b, epsilon)
	return UtilityResult{
		UtilityA:         ua,
		UtilityB:         ub,
		UtilityAdvantage: ub - ua,
		Epsilon:          epsilon,
	}, nil
}

// LogUtility devuelve log(max(v, epsilon)).
func LogUtility(v, epsilon float64) float64 {
	return math.Log(math.Max(v, epsilon))
}

func meanLogUtility(s OutcomeSample, epsilon float64) float64 {
	total := 0.0
	for _, v := range s {
		total += LogUtility(v, epsilon)
	}
	return total / float64(len(s))
}
