package domain

// Preference is the option favored by one decision criterion.
type Preference string

const (
	PreferA    Preference = "A"
	PreferB    Preference = "B"
	PreferNone Preference = "NONE"
)

// Decision summarizes which option each criterion favors.
type Decision struct {
	ByExpectation Preference // sign of ExpectedDifference
	ByProbability Preference // ProbabilityBBeatsA against 0.5
	ByUtility     Preference // sign of UtilityAdvantage
	Divergent     bool       // expectation and utility favor different options
}

// Decide deriva la decisión de los resultados ya calculados.
func Decide(c ComparisonResult, u UtilityResult) Decision {
	d := Decision{
		ByExpectation: preferenceOf(c.ExpectedDifference),
		ByProbability: preferenceOf(c.ProbabilityBBeatsA - 0.5),
		ByUtility:     preferenceOf(u.UtilityAdvantage),
	}
	d.Divergent = d.ByExpectation != PreferNone &&
		d.ByUtility != PreferNone &&
		d.ByExpectation != d.ByUtility
	return d
}

// Verdict devuelve una etiqueta corta para el reporte.
func (d Decision) Verdict() string {
	switch {
	case d.Divergent:
		return "DIVERGENT"
	case d.ByExpectation == PreferB && d.ByUtility == PreferB:
		return "PREFER B"
	case d.ByExpectation == PreferA && d.ByUtility == PreferA:
		return "PREFER A"
	default:
		return "UNDECIDED"
	}
}

func preferenceOf(bMinusA float64) Preference {
	switch {
	case bMinusA > 0:
		return PreferB
	case bMinusA < 0:
		return PreferA
	default:
		return PreferNone
	}
}
