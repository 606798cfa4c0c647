package domain

import "time"

// RunResult is everything one simulation run produced. It is read-only once built
// and is the only thing handed to the reporting and plotting collaborators.
type RunResult struct {
	ID        string
	Seed      uint64
	Count     int
	OptionA   OptionProfile
	OptionB   OptionProfile
	SampleA   OutcomeSample
	SampleB   OutcomeSample
	SummaryA  SampleSummary
	SummaryB  SampleSummary
	Compare   ComparisonResult
	Utility   UtilityResult
	Decision  Decision
	StartedAt time.Time
	Elapsed   time.Duration
}

// PlotRequest carries what the histogram renderer needs.
type PlotRequest struct {
	SampleA OutcomeSample
	SampleB OutcomeSample
	LabelA  string
	LabelB  string
	MeanA   float64
	MeanB   float64
	Bins    int
	Path    string
}

// PlotRequest builds the histogram input from the run.
func (r RunResult) PlotRequest(path string, bins int) PlotRequest {
	return PlotRequest{
		SampleA: r.SampleA,
		SampleB: r.SampleB,
		LabelA:  r.OptionA.Label,
		LabelB:  r.OptionB.Label,
		MeanA:   r.SummaryA.Mean,
		MeanB:   r.SummaryB.Mean,
		Bins:    bins,
		Path:    path,
	}
}
