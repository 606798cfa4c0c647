package ports

import (
	"context"

	"github.com/alejandrodnm/montecarlo/internal/domain"
)

// Plotter renderiza el histograma de ambas muestras a un archivo de imagen.
type Plotter interface {
	Plot(ctx context.Context, req domain.PlotRequest) error
}
