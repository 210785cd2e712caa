package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Phazertron/concour-bench/internal/format"
	"github.com/Phazertron/concour-bench/internal/orchestration"
)

// Terminal styles. Colors come from the 256-color palette so they degrade
// cleanly on basic terminals.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// RenderTable renders the session's results table for a color terminal.
// The layout matches WriteText's plain table so the on-disk report and
// the terminal output stay comparable line for line.
func RenderTable(session *orchestration.Session, systemDesc string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Benchmark results"))
	b.WriteByte('\n')
	if systemDesc != "" {
		b.WriteString(headerStyle.Render(systemDesc))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Array length %d, seed %d, total %s\n\n",
		session.ArrayLength, session.Seed, format.Duration(session.Elapsed))

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %8s %12s %12s %12s %12s %9s",
		"Mode", "Workers", "Min (s)", "Mean (s)", "Max (s)", "Stddev (s)", "Speedup")))
	b.WriteByte('\n')

	base := session.Baseline()
	for _, r := range session.Reports {
		fmt.Fprintf(&b, "%s %8d %12s %12s %12s %12s %9s\n",
			modeStyle.Render(fmt.Sprintf("%-10s", r.Label)),
			r.Parallelism,
			format.Seconds(r.Stats.Min),
			format.Seconds(r.Stats.Mean),
			format.Seconds(r.Stats.Max),
			format.Seconds(r.Stats.Stddev),
			format.Speedup(base.Stats.Mean, r.Stats.Mean))
	}

	b.WriteByte('\n')
	if mismatched := session.VerifySums(); len(mismatched) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("WARNING: sums disagree with the baseline: %v", mismatched)))
	} else if base != nil {
		b.WriteString(okStyle.Render(fmt.Sprintf("Verified sum %d across all modes", base.Sum)))
	}
	b.WriteByte('\n')
	return b.String()
}
