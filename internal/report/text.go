package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ruleWidth matches the widest banner used by the labs.
const ruleWidth = 70

// WriteText writes the lab reports as human-readable styled text.
// Output uses lipgloss for color and formatting when the output is a
// TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, labs []LabReport) error {
	s := DefaultStyles()

	for i, lab := range labs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeOneLab(w, lab, s)
	}
	return nil
}

// RenderText returns the text rendering of labs as a string.
func RenderText(labs []LabReport) string {
	var sb strings.Builder
	_ = WriteText(&sb, labs)
	return sb.String()
}

func writeOneLab(w io.Writer, lab LabReport, s Styles) {
	writeBanner(w, lab, s)
	for _, sec := range lab.Sections {
		writeSection(w, sec, s)
	}
}

func writeBanner(w io.Writer, lab LabReport, s Styles) {
	rule := s.Rule.Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, s.Banner.Render(lab.Title))
	fmt.Fprintln(w, rule)
}

func writeSection(w io.Writer, sec *Section, s Styles) {
	fmt.Fprintln(w)
	if sec.Heading != "" {
		fmt.Fprintln(w, s.Heading.Render(sec.Heading))
	}
	if len(sec.Columns) > 0 {
		if len(sec.Rows) == 0 {
			fmt.Fprintln(w, s.Muted.Render("    (no cases)"))
		} else {
			fmt.Fprintln(w, renderTable(sec, s))
		}
	}
	for _, line := range sec.Lines {
		fmt.Fprintln(w, line)
	}
}

// Stream writes lab reports incrementally, so a lab's demonstration
// output reaches the terminal before its prompt. Once every lab has
// been flushed a final time the output matches WriteText.
type Stream struct {
	w       io.Writer
	styles  Styles
	labs    int
	current *LabReport
	written int
}

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w, styles: DefaultStyles()}
}

// Flush writes the sections of lab added since the previous call.
// The banner is written the first time lab is seen. Sections must
// only be appended between calls.
func (st *Stream) Flush(lab *LabReport) {
	if lab != st.current {
		if st.labs > 0 {
			fmt.Fprintln(st.w)
		}
		writeBanner(st.w, *lab, st.styles)
		st.current = lab
		st.written = 0
		st.labs++
	}
	for _, sec := range lab.Sections[st.written:] {
		writeSection(st.w, sec, st.styles)
	}
	st.written = len(lab.Sections)
}

func renderTable(sec *Section, s Styles) string {
	rows := sec.Rows
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) {
				return s.CellStyle(rows[row][col])
			}
			return s.TableCell
		}).
		Headers(sec.Columns...).
		Rows(rows...).
		String()
}
