package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alejandrodnm/montecarlo/internal/domain"
	"github.com/alejandrodnm/montecarlo/internal/ports"
)

const (
	DefaultCount   = 10000
	DefaultEpsilon = domain.DefaultUtilityEpsilon
)

// DefaultOptionA is the stable option: lower mean, lower risk.
var DefaultOptionA = domain.OptionProfile{Label: "Option A (Stable)", Mean: 80, StdDev: 10}

// DefaultOptionB is the aggressive option: higher mean, higher risk.
var DefaultOptionB = domain.OptionProfile{Label: "Option B (Aggressive)", Mean: 110, StdDev: 40}

// Config holds everything one simulation run needs.
type Config struct {
	Count    int
	OptionA  domain.OptionProfile
	OptionB  domain.OptionProfile
	Epsilon  float64
	Seed     uint64 // 0 = derive from the clock; the chosen seed is reported
	Parallel bool   // generate both samples concurrently
}

// DefaultConfig devuelve la configuración por defecto del simulador.
func DefaultConfig() Config {
	return Config{
		Count:   DefaultCount,
		OptionA: DefaultOptionA,
		OptionB: DefaultOptionB,
		Epsilon: DefaultEpsilon,
	}
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w: simulation count %d must be > 0", domain.ErrInvalidParameter, c.Count)
	}
	if err := c.OptionA.Validate(); err != nil {
		return fmt.Errorf("option A: %w", err)
	}
	if err := c.OptionB.Validate(); err != nil {
		return fmt.Errorf("option B: %w", err)
	}
	if math.IsNaN(c.Epsilon) || c.Epsilon <= 0 {
		return fmt.Errorf("%w: utility epsilon %v must be > 0", domain.ErrInvalidParameter, c.Epsilon)
	}
	return nil
}

// Engine generates outcome samples and derives the comparison statistics.
// It holds no mutable state: every Run owns its random streams.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine for the given configuration.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulation.NewEngine: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// GenerateOutcomes draws count independent outcomes from N(profile.Mean, profile.StdDev²).
func (e *Engine) GenerateOutcomes(src ports.RandomSource, profile domain.OptionProfile, count int) (domain.OutcomeSample, error) {
	return GenerateOutcomes(src, profile, count)
}

// CompareOutcomes pairs both samples by index. See domain.CompareOutcomes.
func (e *Engine) CompareOutcomes(a, b domain.OutcomeSample) (domain.ComparisonResult, error) {
	return domain.CompareOutcomes(a, b)
}

// EvaluateUtility applies the configured epsilon. See domain.EvaluateUtility.
func (e *Engine) EvaluateUtility(a, b domain.OutcomeSample) (domain.UtilityResult, error) {
	return domain.EvaluateUtility(a, b, e.cfg.Epsilon)
}

// GenerateOutcomes draws count outcomes as mean + stdDev·z, z ~ N(0, 1).
func GenerateOutcomes(src ports.RandomSource, profile domain.OptionProfile, count int) (domain.OutcomeSample, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generate outcomes: %w: count %d must be > 0", domain.ErrInvalidParameter, count)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("generate outcomes: %w", err)
	}

	out := make(domain.OutcomeSample, count)
	for i := range out {
		out[i] = profile.Mean + profile.StdDev*src.NormFloat64()
	}
	return out, nil
}

// Run ejecuta una simulación completa: genera ambas muestras, espera a las dos
// y calcula comparación, utilidad y decisión.
func (e *Engine) Run(ctx context.Context) (domain.RunResult, error) {
	start := time.Now()
	seed := resolveSeed(e.cfg.Seed)
	runID := uuid.New().String()

	slog.Info("simulation starting",
		"run_id", runID,
		"seed", seed,
		"count", e.cfg.Count,
		"parallel", e.cfg.Parallel,
	)

	sampleA, sampleB, err := e.generatePair(ctx, seed)
	if err != nil {
		return domain.RunResult{}, err
	}
	slog.Debug("samples generated", "run_id", runID, "elapsed", time.Since(start))

	if err := ctx.Err(); err != nil {
		return domain.RunResult{}, fmt.Errorf("simulation.Run: %w", err)
	}

	cmp, err := e.CompareOutcomes(sampleA, sampleB)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("simulation.Run: %w", err)
	}
	util, err := e.EvaluateUtility(sampleA, sampleB)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("simulation.Run: %w", err)
	}

	res := domain.RunResult{
		ID:        runID,
		Seed:      seed,
		Count:     e.cfg.Count,
		OptionA:   e.cfg.OptionA,
		OptionB:   e.cfg.OptionB,
		SampleA:   sampleA,
		SampleB:   sampleB,
		SummaryA:  sampleA.Summary(),
		SummaryB:  sampleB.Summary(),
		Compare:   cmp,
		Utility:   util,
		Decision:  domain.Decide(cmp, util),
		StartedAt: start,
		Elapsed:   time.Since(start),
	}

	slog.Info("simulation complete",
		"run_id", runID,
		"p_b_beats_a", cmp.ProbabilityBBeatsA,
		"expected_diff", cmp.ExpectedDifference,
		"utility_advantage", util.UtilityAdvantage,
		"verdict", res.Decision.Verdict(),
		"elapsed", res.Elapsed,
	)
	return res, nil
}

// generatePair genera A y B con streams independientes. En modo paralelo cada
// muestra corre en su propia goroutine; el resultado es idéntico al secuencial.
func (e *Engine) generatePair(ctx context.Context, seed uint64) (domain.OutcomeSample, domain.OutcomeSample, error) {
	var sampleA, sampleB domain.OutcomeSample

	genA := func() error {
		s, err := GenerateOutcomes(NewStream(seed, streamOptionA), e.cfg.OptionA, e.cfg.Count)
		if err != nil {
			return fmt.Errorf("option A: %w", err)
		}
		sampleA = s
		return nil
	}
	genB := func() error {
		s, err := GenerateOutcomes(NewStream(seed, streamOptionB), e.cfg.OptionB, e.cfg.Count)
		if err != nil {
			return fmt.Errorf("option B: %w", err)
		}
		sampleB = s
		return nil
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("simulation.Run: %w", err)
	}

	if !e.cfg.Parallel {
		if err := genA(); err != nil {
			return nil, nil, fmt.Errorf("simulation.Run: %w", err)
		}
		if err := genB(); err != nil {
			return nil, nil, fmt.Errorf("simulation.Run: %w", err)
		}
		return sampleA, sampleB, nil
	}

	var g errgroup.Group
	g.Go(genA)
	g.Go(genB)
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("simulation.Run: %w", err)
	}
	return sampleA, sampleB, nil
}
