package simulation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/montecarlo/internal/domain"
	"github.com/alejandrodnm/montecarlo/internal/ports"
)

// PlotConfig controla si y dónde se guarda el histograma.
type PlotConfig struct {
	Enabled bool
	Path    string
	Bins    int
}

// Runner wires the engine to its presentation collaborators:
// engine.Run → reporter.Report → plotter.Plot.
type Runner struct {
	engine   *Engine
	reporter ports.Reporter
	plotter  ports.Plotter
	plot     PlotConfig
}

// NewRunner crea un Runner con todas las dependencias inyectadas.
// plotter puede ser nil si el histograma está deshabilitado.
func NewRunner(engine *Engine, reporter ports.Reporter, plotter ports.Plotter, plot PlotConfig) *Runner {
	return &Runner{
		engine:   engine,
		reporter: reporter,
		plotter:  plotter,
		plot:     plot,
	}
}

// RunOnce ejecuta una simulación y entrega el resultado a los colaboradores.
// Un error del engine aborta antes de reportar; errores de reporte o plot se
// devuelven junto con el resultado ya calculado.
func (r *Runner) RunOnce(ctx context.Context) (domain.RunResult, error) {
	res, err := r.engine.Run(ctx)
	if err != nil {
		return domain.RunResult{}, err
	}

	if r.reporter != nil {
		if err := r.reporter.Report(ctx, res); err != nil {
			return res, fmt.Errorf("report: %w", err)
		}
	}

	if r.plotter == nil || !r.plot.Enabled {
		slog.Debug("plot disabled", "run_id", res.ID)
		return res, nil
	}

	req := res.PlotRequest(r.plot.Path, r.plot.Bins)
	if err := r.plotter.Plot(ctx, req); err != nil {
		return res, fmt.Errorf("plot: %w", err)
	}
	slog.Info("plot saved", "run_id", res.ID, "path", r.plot.Path)

	return res, nil
}
