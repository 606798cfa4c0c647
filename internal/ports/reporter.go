package ports

import (
	"context"

	"github.com/alejandrodnm/montecarlo/internal/domain"
)

// Reporter presenta el resultado de una simulación al usuario.
type Reporter interface {
	// Report formatea e imprime las métricas de comparación y utilidad.
	Report(ctx context.Context, result domain.RunResult) error
}
