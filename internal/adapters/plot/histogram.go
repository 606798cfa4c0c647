package plot

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alejandrodnm/montecarlo/internal/domain"
)

const (
	title  = "Monte Carlo Simulation for Decision-Making under Uncertainty"
	xLabel = "Simulated Outcomes (e.g., Profit, ROI)"
	yLabel = "Frequency"

	defaultBins = 50
)

var (
	fillA = color.NRGBA{R: 135, G: 206, B: 235, A: 178} // skyblue, alpha 0.7
	fillB = color.NRGBA{R: 255, G: 165, B: 0, A: 178}   // orange, alpha 0.7
	meanA = color.NRGBA{B: 255, A: 255}
	meanB = color.NRGBA{R: 255, A: 255}
)

// Histogram implementa ports.Plotter guardando el histograma con gonum/plot.
type Histogram struct {
	width  vg.Length
	height vg.Length
}

// NewHistogram crea un renderer de 12x6 pulgadas.
func NewHistogram() *Histogram {
	return &Histogram{width: 12 * vg.Inch, height: 6 * vg.Inch}
}

// Plot renders both samples as overlaid histograms with dashed mean lines and
// saves the image to req.Path. The format follows the file extension.
func (h *Histogram) Plot(ctx context.Context, req domain.PlotRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("plot.Histogram: %w", err)
	}
	if req.Path == "" {
		return fmt.Errorf("plot.Histogram: %w: empty output path", domain.ErrInvalidParameter)
	}
	if len(req.SampleA) == 0 || len(req.SampleB) == 0 {
		return fmt.Errorf("plot.Histogram: %w: empty sample", domain.ErrInvalidParameter)
	}
	bins := req.Bins
	if bins <= 0 {
		bins = defaultBins
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	histA, err := newHist(req.SampleA, bins, fillA)
	if err != nil {
		return fmt.Errorf("plot.Histogram: %s: %w", req.LabelA, err)
	}
	histB, err := newHist(req.SampleB, bins, fillB)
	if err != nil {
		return fmt.Errorf("plot.Histogram: %s: %w", req.LabelB, err)
	}
	p.Add(histA, histB)
	p.Legend.Add(labelOr(req.LabelA, "Option A"), histA)
	p.Legend.Add(labelOr(req.LabelB, "Option B"), histB)

	top := maxWeight(histA, histB)
	lineA, err := meanLine(req.MeanA, top, meanA)
	if err != nil {
		return fmt.Errorf("plot.Histogram: mean line: %w", err)
	}
	lineB, err := meanLine(req.MeanB, top, meanB)
	if err != nil {
		return fmt.Errorf("plot.Histogram: mean line: %w", err)
	}
	p.Add(lineA, lineB)
	p.Legend.Add(fmt.Sprintf("Mean of %s: %.2f", labelOr(req.LabelA, "Option A"), req.MeanA), lineA)
	p.Legend.Add(fmt.Sprintf("Mean of %s: %.2f", labelOr(req.LabelB, "Option B"), req.MeanB), lineB)

	if dir := filepath.Dir(req.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("plot.Histogram: create dir %q: %w", dir, err)
		}
	}
	if err := p.Save(h.width, h.height, req.Path); err != nil {
		return fmt.Errorf("plot.Histogram: save %q: %w", req.Path, err)
	}
	return nil
}

func newHist(s domain.OutcomeSample, bins int, fill color.Color) (*plotter.Histogram, error) {
	hist, err := plotter.NewHist(plotter.Values(s), bins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = fill
	hist.LineStyle.Color = color.Black
	hist.LineStyle.Width = vg.Points(0.5)
	return hist, nil
}

// meanLine dibuja una línea vertical discontinua en x = mean.
func meanLine(mean, top float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: top}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	return line, nil
}

func maxWeight(hists ...*plotter.Histogram) float64 {
	top := 0.0
	for _, h := range hists {
		for _, b := range h.Bins {
			if b.Weight > top {
				top = b.Weight
			}
		}
	}
	return top
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
