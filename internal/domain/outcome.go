package domain

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// OutcomeSample is the ordered sequence of simulated outcomes for one option.
// Samples are produced once per run and never mutated afterwards.
type OutcomeSample []float64

// Len returns the number of simulated outcomes.
func (s OutcomeSample) Len() int { return len(s) }

// Mean returns the arithmetic mean, or NaN for an empty sample.
func (s OutcomeSample) Mean() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return stat.Mean(s, nil)
}

// SampleSummary holds descriptive statistics of one OutcomeSample.
type SampleSummary struct {
	Count            int
	Mean             float64
	StdDev           float64 // population (divide by N)
	Min              float64
	Max              float64
	P05              float64
	P50              float64
	P95              float64
	ShareNonPositive float64 // fraction of outcomes <= 0, i.e. clamped by log-utility
}

// Summary computes the descriptive statistics on a sorted copy of the sample.
func (s OutcomeSample) Summary() SampleSummary {
	if len(s) == 0 {
		return SampleSummary{}
	}

	sorted := make([]float64, len(s))
	copy(sorted, s)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)

	nonPositive := sort.Search(len(sorted), func(i int) bool { return sorted[i] > 0 })

	return SampleSummary{
		Count:            len(s),
		Mean:             mean,
		StdDev:           std,
		Min:              sorted[0],
		Max:              sorted[len(sorted)-1],
		P05:              stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P50:              stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:              stat.Quantile(0.95, stat.Empirical, sorted, nil),
		ShareNonPositive: float64(nonPositive) / float64(len(s)),
	}
}
