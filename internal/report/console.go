package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/kiroscore/internal/engine"
)

// ConsoleFormatter renders scoring results for terminal display.
type ConsoleFormatter struct {
	quiet   bool
	verbose bool

	headerStyle lipgloss.Style
	strongStyle lipgloss.Style
	goodStyle   lipgloss.Style
	weakStyle   lipgloss.Style
	dimStyle    lipgloss.Style
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:       quiet,
		verbose:     verbose,
		headerStyle: lipgloss.NewStyle().Bold(true),
		strongStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
		goodStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		weakStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),  // gray
	}
}

// Format renders the summary to stdout.
func (f *ConsoleFormatter) Format(summary *Summary) error {
	if f.quiet {
		return nil
	}

	for i := range summary.Reports {
		f.printReport(&summary.Reports[i])
	}
	f.printFooter(summary)
	return nil
}

func (f *ConsoleFormatter) printReport(r *Report) {
	fmt.Printf("%s\n", f.headerStyle.Render(displayName(*r)))

	best := r.Categories.Evaluation(r.Categories.BestMatch)
	if best != nil {
		fmt.Printf("  Best category: %s %s\n",
			best.Category.DisplayName(),
			f.scoreStyle10(best.FitScore).Render(fmt.Sprintf("%.1f/10", best.FitScore)))
		fmt.Printf("  %s\n", f.dimStyle.Render("Because "+r.Categories.BestMatchReason))
	}

	for _, score := range r.Criteria.Scores {
		fmt.Printf("  %-18s %s\n", score.Name,
			f.scoreStyle5(score.Score).Render(fmt.Sprintf("%.1f/5", score.Score)))
		if f.verbose {
			for _, name := range engine.SubCriterionOrder[score.Name] {
				sub := score.SubScores[name]
				fmt.Printf("    %-22s %.1f/5\n", name, sub.Score)
			}
		}
	}

	fmt.Printf("  %-18s %s\n", "Final score",
		f.scoreStyle5(r.Criteria.FinalScore).Render(fmt.Sprintf("%.1f/5", r.Criteria.FinalScore)))
	fmt.Printf("  %-18s %s\n", "Viability",
		f.scoreStyle5(r.Viability).Render(fmt.Sprintf("%.1f/5", r.Viability)))

	if f.verbose && best != nil && len(best.ImprovementSuggestions) > 0 {
		fmt.Println("  Suggestions:")
		for _, s := range best.ImprovementSuggestions {
			fmt.Printf("    - %s\n", s)
		}
	}
	fmt.Println()
}

func (f *ConsoleFormatter) printFooter(summary *Summary) {
	if len(summary.Reports) == 0 {
		fmt.Println("No submissions found to score.")
		return
	}
	duration := time.Since(summary.StartTime).Round(time.Millisecond)
	fmt.Printf("Scored %d submission(s) in %v\n", len(summary.Reports), duration)
}

// scoreStyle10 picks a style for a 0-10 fit score.
func (f *ConsoleFormatter) scoreStyle10(score float64) lipgloss.Style {
	switch {
	case score >= 6:
		return f.strongStyle
	case score >= 4:
		return f.goodStyle
	default:
		return f.weakStyle
	}
}

// scoreStyle5 picks a style for a 0-5 score.
func (f *ConsoleFormatter) scoreStyle5(score float64) lipgloss.Style {
	switch {
	case score >= 3.5:
		return f.strongStyle
	case score >= 2.5:
		return f.goodStyle
	default:
		return f.weakStyle
	}
}
