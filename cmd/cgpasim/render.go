package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Autocrat2005/CGPASimulator/pkg/simulate"
)

const (
	ansiCyan   = "\033[96m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiRed    = "\033[91m"
	ansiBold   = "\033[1m"
	ansiReset  = "\033[0m"
)

// palette paints strings when the output supports ANSI colors and
// passes them through untouched otherwise.
type palette struct {
	enabled bool
}

func newPalette(enabled bool) palette { return palette{enabled: enabled} }

func (p palette) paint(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + ansiReset
}

func (p palette) cyan(s string) string   { return p.paint(ansiCyan, s) }
func (p palette) green(s string) string  { return p.paint(ansiGreen, s) }
func (p palette) yellow(s string) string { return p.paint(ansiYellow, s) }
func (p palette) red(s string) string    { return p.paint(ansiRed, s) }
func (p palette) bold(s string) string   { return p.paint(ansiBold, s) }

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printStatus(w io.Writer, pal palette, sim *simulate.Simulator) {
	fmt.Fprintln(w, pal.bold("\n=== Current Status ==="))
	fmt.Fprintf(w, "Credits done: %g\n", sim.CompletedCredits())
	cgpa, err := sim.CurrentCGPA()
	if err != nil {
		fmt.Fprintln(w, "Current CGPA: n/a (no completed semesters)")
		return
	}
	fmt.Fprintf(w, "Current CGPA: %.4f\n", cgpa)
}

func printRequirements(w io.Writer, pal palette, sim *simulate.Simulator, targets []float64) {
	fmt.Fprintln(w, pal.bold("\n=== Required Average SGPA for Future Semesters ==="))
	tw := newTable(w)
	fmt.Fprintln(tw, "TARGET\tBASE REQD\tWITH EXTRA CREDITS")
	fmt.Fprintln(tw, "------\t---------\t------------------")
	for _, t := range targets {
		fmt.Fprintf(tw, "%g\t%s\t%s\n", t,
			formatRequired(pal, sim.RequiredAverage(t, false)),
			formatRequired(pal, sim.RequiredAverage(t, true)))
	}
	tw.Flush()
}

// formatRequired renders a required average, flagging values beyond
// the scale ceiling as unreachable instead of clamping them.
func formatRequired(pal palette, req float64) string {
	if req > simulate.ScaleMax {
		return pal.red("> 10.0")
	}
	return pal.green(fmt.Sprintf("%.4f", req))
}

func printOutcomes(w io.Writer, pal palette, outcomes []simulate.Outcome) {
	fmt.Fprintln(w, pal.bold("\n=== Simulation Results ==="))
	if len(outcomes) == 0 {
		fmt.Fprintln(w, "Nothing to simulate.")
		return
	}
	tw := newTable(w)
	header := "SCENARIO\tAVG CGPA\tMAX"
	for _, t := range outcomes[0].Targets {
		header += fmt.Sprintf("\tP(>%g)\tP(>%g) +Extra", t.Target, t.Target)
	}
	fmt.Fprintln(tw, header)
	for _, o := range outcomes {
		row := fmt.Sprintf("%s\t%.2f\t%.2f", o.Scenario, o.MeanCGPA, o.MaxCGPA)
		for _, t := range o.Targets {
			row += fmt.Sprintf("\t%.2f%%\t%.2f%%", t.Prob, t.ProbExtra)
		}
		fmt.Fprintln(tw, row)
	}
	tw.Flush()
}

func printVerdicts(w io.Writer, pal palette, outcomes []simulate.Outcome, targets []float64) {
	fmt.Fprintln(w, pal.cyan("\nVerdicts:"))
	for k, t := range targets {
		best := simulate.MaxExtraProbability(outcomes, k)
		verdict := simulate.Classify(best)
		switch verdict {
		case simulate.VerdictUnreachable:
			fmt.Fprintf(w, "- Target %g: %s (max prob: %.1f%%)\n", t, pal.red(verdict.String()), best)
		case simulate.VerdictDifficult:
			fmt.Fprintf(w, "- Target %g: %s (need to sweat significantly)\n", t, pal.yellow(verdict.String()))
		default:
			fmt.Fprintf(w, "- Target %g: %s (you got this)\n", t, pal.green(verdict.String()))
		}
	}
}
