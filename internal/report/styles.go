package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Banner is used for the lab title.
	Banner lipgloss.Style

	// Rule is used for the "=====" lines around the banner.
	Rule lipgloss.Style

	// Heading is used for section headings.
	Heading lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Pass and Fail color affirmative and negative verdict cells.
	Pass lipgloss.Style
	Fail lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Heading: lipgloss.NewStyle().Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).PaddingRight(1),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingRight(1),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

var (
	passVerdicts = map[string]bool{
		"true": true, "Yes": true, "Prime": true, "PERFECT": true,
		"Armstrong Number": true, "Leap Year": true, "Even": true,
	}
	failVerdicts = map[string]bool{
		"false": true, "No": true, "Composite": true, "NOT PERFECT": true,
		"Not an Armstrong Number": true, "Not a Leap Year": true,
		"Odd": true, "Neither": true,
	}
)

// CellStyle returns the style for a table cell, coloring known
// verdict words.
func (s Styles) CellStyle(cell string) lipgloss.Style {
	switch {
	case passVerdicts[cell]:
		return s.Pass
	case failVerdicts[cell]:
		return s.Fail
	default:
		return s.TableCell
	}
}
