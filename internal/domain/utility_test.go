package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateUtility_ClampsNonPositive(t *testing.T) {
	a := OutcomeSample{-5, 5}
	b := OutcomeSample{1, 1}

	u, err := EvaluateUtility(a, b, 1e-9)
	require.NoError(t, err)

	wantA := (math.Log(1e-9) + math.Log(5)) / 2
	assert.InDelta(t, wantA, u.UtilityA, 1e-12)
	assert.Equal(t, 0.0, u.UtilityB)
	assert.InDelta(t, -wantA, u.UtilityAdvantage, 1e-12)
	assert.Equal(t, 1e-9, u.Epsilon)
}

func TestEvaluateUtility_ZeroUsesEpsilon(t *testing.T) {
	u, err := EvaluateUtility(OutcomeSample{0}, OutcomeSample{0}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.5), u.UtilityA, 1e-12)
	assert.False(t, math.IsInf(u.UtilityA, 0))
	assert.False(t, math.IsNaN(u.UtilityB))
}

func TestEvaluateUtility_Monotonic(t *testing.T) {
	base := OutcomeSample{1, 2, 3, 4, 5}
	u0, err := EvaluateUtility(base, base, DefaultUtilityEpsilon)
	require.NoError(t, err)

	for i := range base {
		bigger := make(OutcomeSample, len(base))
		copy(bigger, base)
		bigger[i] += 10

		u1, err := EvaluateUtility(bigger, bigger, DefaultUtilityEpsilon)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u1.UtilityA, u0.UtilityA)
		assert.GreaterOrEqual(t, u1.UtilityB, u0.UtilityB)
	}
}

func TestEvaluateUtility_RiskAversionDivergence(t *testing.T) {
	// B tiene mayor media (101 vs 100) pero mucha más dispersión:
	// log-utilidad prefiere A aunque la diferencia esperada favorece a B.
	a := OutcomeSample{100, 100}
	b := OutcomeSample{2, 200}

	c, err := CompareOutcomes(a, b)
	require.NoError(t, err)
	u, err := EvaluateUtility(a, b, DefaultUtilityEpsilon)
	require.NoError(t, err)

	assert.Greater(t, c.ExpectedDifference, 0.0)
	assert.Less(t, u.UtilityAdvantage, 0.0)

	d := Decide(c, u)
	assert.True(t, d.Divergent)
	assert.Equal(t, PreferB, d.ByExpectation)
	assert.Equal(t, PreferA, d.ByUtility)
	assert.Equal(t, "DIVERGENT", d.Verdict())
}

func TestEvaluateUtility_InvalidEpsilon(t *testing.T) {
	for _, eps := range []float64{0, -1e-9, math.NaN()} {
		_, err := EvaluateUtility(OutcomeSample{1}, OutcomeSample{1}, eps)
		assert.ErrorIs(t, err, ErrInvalidParameter, "epsilon %v", eps)
	}
}

func TestEvaluateUtility_ShapeMismatch(t *testing.T) {
	_, err := EvaluateUtility(OutcomeSample{1, 2}, OutcomeSample{1}, DefaultUtilityEpsilon)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// --- Decide ---

func TestDecide_AgreeingCriteria(t *testing.T) {
	d := Decide(
		ComparisonResult{ProbabilityBBeatsA: 0.8, ExpectedDifference: 12},
		UtilityResult{UtilityAdvantage: 0.1},
	)
	assert.Equal(t, PreferB, d.ByExpectation)
	assert.Equal(t, PreferB, d.ByProbability)
	assert.Equal(t, PreferB, d.ByUtility)
	assert.False(t, d.Divergent)
	assert.Equal(t, "PREFER B", d.Verdict())
}

func TestDecide_NoDifference(t *testing.T) {
	d := Decide(ComparisonResult{}, UtilityResult{})
	assert.Equal(t, PreferNone, d.ByExpectation)
	assert.Equal(t, PreferA, d.ByProbability) // 0 < 0.5
	assert.Equal(t, PreferNone, d.ByUtility)
	assert.False(t, d.Divergent)
	assert.Equal(t, "UNDECIDED", d.Verdict())
}
