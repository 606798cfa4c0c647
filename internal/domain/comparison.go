package domain

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ComparisonResult holds the paired comparison of two samples (B relative to A).
type ComparisonResult struct {
	ProbabilityBBeatsA float64 // fraction of trials where b[i] > a[i]; ties do not count
	ExpectedDifference float64 // mean(b[i] - a[i])
	DifferenceRisk     float64 // population std dev of (b[i] - a[i])
}

// CompareOutcomes pairs a and b by simulation index and derives the comparison.
//
// Fórmula:
//
//	d[i]        = b[i] - a[i]
//	probability = #{i : b[i] > a[i]} / N
//	expected    = Σ d[i] / N
//	risk        = sqrt(Σ (d[i] - expected)² / N)
func CompareOutcomes(a, b OutcomeSample) (ComparisonResult, error) {
	if err := checkPaired(a, b); err != nil {
		return ComparisonResult{}, fmt.Errorf("compare outcomes: %w", err)
	}

	diffs := make([]float64, len(a))
	wins := 0
	for i := range a {
		if b[i] > a[i] {
			wins++
		}
		diffs[i] = b[i] - a[i]
	}

	mean, std := stat.PopMeanStdDev(diffs, nil)
	return ComparisonResult{
		ProbabilityBBeatsA: float64(wins) / float64(len(a)),
		ExpectedDifference: mean,
		DifferenceRisk:     std,
	}, nil
}

// checkPaired valida que dos muestras se puedan emparejar índice a índice.
func checkPaired(a, b OutcomeSample) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrShapeMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return fmt.Errorf("%w: empty samples", ErrInvalidParameter)
	}
	return nil
}
