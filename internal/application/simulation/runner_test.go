package simulation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/montecarlo/internal/application/simulation"
	"github.com/alejandrodnm/montecarlo/internal/domain"
)

// --- mocks ---

type mockReporter struct {
	reported []domain.RunResult
	err      error
}

func (m *mockReporter) Report(_ context.Context, res domain.RunResult) error {
	m.reported = append(m.reported, res)
	return m.err
}

type mockPlotter struct {
	requests []domain.PlotRequest
	err      error
}

func (m *mockPlotter) Plot(_ context.Context, req domain.PlotRequest) error {
	m.requests = append(m.requests, req)
	return m.err
}

func newEngine(t *testing.T) *simulation.Engine {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.Count = 200
	cfg.Seed = 5
	e, err := simulation.NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func TestRunner_RunOnce_ReportsAndPlots(t *testing.T) {
	rep := &mockReporter{}
	pl := &mockPlotter{}
	r := simulation.NewRunner(newEngine(t), rep, pl, simulation.PlotConfig{Enabled: true, Path: "out.png", Bins: 50})

	res, err := r.RunOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.reported, 1)
	assert.Equal(t, res.ID, rep.reported[0].ID)

	require.Len(t, pl.requests, 1)
	req := pl.requests[0]
	assert.Equal(t, "out.png", req.Path)
	assert.Equal(t, 50, req.Bins)
	assert.Equal(t, res.SampleA, req.SampleA)
	assert.Equal(t, res.SampleB, req.SampleB)
	assert.Equal(t, res.SummaryA.Mean, req.MeanA)
	assert.Equal(t, res.SummaryB.Mean, req.MeanB)
	assert.Equal(t, "Option A (Stable)", req.LabelA)
	assert.Equal(t, "Option B (Aggressive)", req.LabelB)
}

func TestRunner_RunOnce_PlotDisabled(t *testing.T) {
	rep := &mockReporter{}
	pl := &mockPlotter{}
	r := simulation.NewRunner(newEngine(t), rep, pl, simulation.PlotConfig{Enabled: false})

	_, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Len(t, rep.reported, 1)
	assert.Empty(t, pl.requests)
}

func TestRunner_RunOnce_NilPlotter(t *testing.T) {
	rep := &mockReporter{}
	r := simulation.NewRunner(newEngine(t), rep, nil, simulation.PlotConfig{Enabled: true, Path: "x.png"})

	_, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Len(t, rep.reported, 1)
}

func TestRunner_RunOnce_ReporterError(t *testing.T) {
	rep := &mockReporter{err: errors.New("stdout closed")}
	pl := &mockPlotter{}
	r := simulation.NewRunner(newEngine(t), rep, pl, simulation.PlotConfig{Enabled: true, Path: "x.png"})

	res, err := r.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report:")
	assert.NotEmpty(t, res.ID)
	assert.Empty(t, pl.requests)
}

func TestRunner_RunOnce_PlotterError(t *testing.T) {
	rep := &mockReporter{}
	pl := &mockPlotter{err: errors.New("disk full")}
	r := simulation.NewRunner(newEngine(t), rep, pl, simulation.PlotConfig{Enabled: true, Path: "x.png"})

	_, err := r.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plot:")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunner_RunOnce_EngineErrorSkipsCollaborators(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := &mockReporter{}
	pl := &mockPlotter{}
	r := simulation.NewRunner(newEngine(t), rep, pl, simulation.PlotConfig{Enabled: true})

	_, err := r.RunOnce(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.reported)
	assert.Empty(t, pl.requests)
}
