package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	withinStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// WriteJSON writes the audit report as indented JSON.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteText writes the audit report as a styled table followed by a
// summary. Rows are ordered by complexity, highest first.
func WriteText(w io.Writer, report *Report) error {
	if len(report.Scores) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No functions analyzed."))
		return nil
	}

	sorted := make([]Score, len(report.Scores))
	copy(sorted, report.Scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Complexity > sorted[j].Complexity
	})

	withCoverage := report.Summary.AvgCoverage != nil
	headers := []string{"COMPLEXITY", "FUNCTION", "FILE"}
	if withCoverage {
		headers = []string{"COMPLEXITY", "COVERAGE", "FUNCTION", "FILE"}
	}

	rows := make([][]string, 0, len(sorted))
	for _, s := range sorted {
		marker := ""
		if s.OverBudget {
			marker = " *"
		}
		row := []string{strconv.Itoa(s.Complexity) + marker}
		if withCoverage {
			row = append(row, formatCoverage(s.Coverage))
		}
		row = append(row, s.Package+"."+s.Function, fmt.Sprintf("%s:%d", shortenPath(s.File), s.Line))
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 && row >= 0 && row < len(sorted) {
				if sorted[row].OverBudget {
					return overStyle
				}
				return withinStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t)

	sum := report.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("--- Summary ---"))
	fmt.Fprintf(w, "%s  %d\n", labelStyle.Render("Functions analyzed:"), sum.TotalFunctions)
	fmt.Fprintf(w, "%s  %.1f\n", labelStyle.Render("Avg complexity:"), sum.AvgComplexity)
	fmt.Fprintf(w, "%s  %d\n", labelStyle.Render("Max complexity:"), sum.MaxComplexity)
	if sum.AvgCoverage != nil {
		fmt.Fprintf(w, "%s  %.1f%%\n", labelStyle.Render("Avg coverage:"), *sum.AvgCoverage)
	}
	fmt.Fprintf(w, "%s  %d\n", labelStyle.Render("Complexity budget:"), sum.Budget)

	over := strconv.Itoa(sum.OverBudget)
	if sum.OverBudget > 0 {
		over = overStyle.Render(over) + mutedStyle.Render(" (functions above budget)")
	}
	fmt.Fprintf(w, "%s  %s\n", labelStyle.Render("Over budget:"), over)

	if len(sum.Worst) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render(
			fmt.Sprintf("--- Most Complex (top %d) ---", len(sum.Worst))))
		for i, s := range sum.Worst {
			c := strconv.Itoa(s.Complexity)
			if s.OverBudget {
				c = overStyle.Render(c)
			} else {
				c = withinStyle.Render(c)
			}
			fmt.Fprintf(w, "  %d. %s  %s  %s\n",
				i+1, c, s.Function,
				mutedStyle.Render(fmt.Sprintf("(%s:%d)", shortenPath(s.File), s.Line)))
		}
	}
	return nil
}

func formatCoverage(pct *float64) string {
	if pct == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *pct)
}

// shortenPath trims a path to its module-relative tail.
func shortenPath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	for _, m := range []string{"/internal/", "/cmd/", "/pkg/"} {
		if idx := strings.LastIndex(path, m); idx >= 0 {
			return path[idx+1:]
		}
	}
	parts := strings.Split(path, "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}
