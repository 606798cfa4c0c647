package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/montecarlo/internal/domain"
)

// Console implementa ports.Reporter.
type Console struct {
	out   io.Writer
	table bool
	now   func() time.Time
}

// NewConsole crea un reporter que escribe a stdout.
// table=false imprime una sola línea compacta.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table, now: time.Now}
}

// NewConsoleWriter crea un reporter para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table, now: time.Now}
}

// Report imprime el resultado en el modo configurado.
func (c *Console) Report(_ context.Context, res domain.RunResult) error {
	if c.table {
		c.printFull(res)
	} else {
		c.printCompact(res)
	}
	return nil
}

// printCompact imprime lo esencial en una línea.
func (c *Console) printCompact(res domain.RunResult) {
	fmt.Fprintf(c.out, "[%s] n=%s P(B>A)=%.2f%% dE=%.2f risk=%.2f dU=%.4f %s\n",
		c.now().Format("15:04:05"),
		humanize.Comma(int64(res.Count)),
		res.Compare.ProbabilityBBeatsA*100,
		res.Compare.ExpectedDifference,
		res.Compare.DifferenceRisk,
		res.Utility.UtilityAdvantage,
		res.Decision.Verdict(),
	)
}

// printFull imprime el resumen detallado con la tabla de muestras.
func (c *Console) printFull(res domain.RunResult) {
	labelA := optionLabel(res.OptionA, "Option A")
	labelB := optionLabel(res.OptionB, "Option B")

	fmt.Fprintf(c.out, "\n===== Monte Carlo Decision Simulation Detailed Summary =====\n\n")
	fmt.Fprintf(c.out, "Number of simulations conducted: %s\n", humanize.Comma(int64(res.Count)))
	fmt.Fprintf(c.out, "Run: %s  seed: %d  elapsed: %s\n\n", res.ID, res.Seed, res.Elapsed.Round(time.Microsecond))

	c.printSampleTable(res, labelA, labelB)

	cmp := res.Compare
	fmt.Fprintln(c.out, "Strategic Option Comparison:")
	fmt.Fprintf(c.out, " - Probability Option B outperforms Option A: %.2f%%\n", cmp.ProbabilityBBeatsA*100)
	fmt.Fprintf(c.out, " - Expected Return Difference (Option B - Option A): %.2f\n", cmp.ExpectedDifference)
	fmt.Fprintf(c.out, " - Risk Difference (Std Dev of Return Differences): %.2f\n\n", cmp.DifferenceRisk)

	u := res.Utility
	fmt.Fprintln(c.out, "Utility Analysis (Considering Risk Aversion):")
	fmt.Fprintf(c.out, " - Log-Utility of %s: %.4f\n", labelA, u.UtilityA)
	fmt.Fprintf(c.out, " - Log-Utility of %s: %.4f\n", labelB, u.UtilityB)
	fmt.Fprintf(c.out, " - Utility Advantage (Option B - Option A): %.4f\n\n", u.UtilityAdvantage)

	c.printVerdict(res.Decision)

	fmt.Fprintln(c.out, "=============================================================")
}

// printSampleTable imprime las estadísticas descriptivas de ambas muestras.
func (c *Console) printSampleTable(res domain.RunResult, labelA, labelB string) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Option", "Mean", "Std Dev", "P5", "P50", "P95", "<= 0")

	for _, row := range []struct {
		label string
		s     domain.SampleSummary
	}{
		{labelA, res.SummaryA},
		{labelB, res.SummaryB},
	} {
		table.Append(
			truncate(row.label, 28),
			fmt.Sprintf("%.2f", row.s.Mean),
			fmt.Sprintf("%.2f", row.s.StdDev),
			fmt.Sprintf("%.2f", row.s.P05),
			fmt.Sprintf("%.2f", row.s.P50),
			fmt.Sprintf("%.2f", row.s.P95),
			fmt.Sprintf("%.2f%%", row.s.ShareNonPositive*100),
		)
	}
	table.Render()
	fmt.Fprintln(c.out)
}

// printVerdict imprime qué opción prefiere cada criterio.
func (c *Console) printVerdict(d domain.Decision) {
	fmt.Fprintf(c.out, "VERDICT: %s  (expectation: %s | probability: %s | log-utility: %s)\n",
		d.Verdict(), preferenceLabel(d.ByExpectation), preferenceLabel(d.ByProbability), preferenceLabel(d.ByUtility))
	if d.Divergent {
		fmt.Fprintln(c.out, "  WARNING: expected return and log-utility disagree; the riskier option's")
		fmt.Fprintln(c.out, "  higher mean does not compensate its variance for a risk-averse decision-maker.")
	}
	fmt.Fprintln(c.out)
}

func preferenceLabel(p domain.Preference) string {
	switch p {
	case domain.PreferA:
		return "Option A"
	case domain.PreferB:
		return "Option B"
	default:
		return "none"
	}
}

func optionLabel(p domain.OptionProfile, fallback string) string {
	if p.Label == "" {
		return fallback
	}
	return p.Label
}

func truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
