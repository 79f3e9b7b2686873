// Package report holds the structured output of a lab demonstration
// run and renders it as styled text or JSON.
package report

// Version is the JSON report format version.
const Version = "0.1.0"

// Report is the top-level output of a run over one or more labs.
type Report struct {
	Version string      `json:"version"`
	Labs    []LabReport `json:"labs"`
}

// LabReport is the output of one lab's demonstration driver.
type LabReport struct {
	// Lab is the registry name (e.g. "prime").
	Lab string `json:"lab"`

	// Title is the banner printed above the lab's sections.
	Title string `json:"title"`

	Sections []*Section `json:"sections"`
}

// Section is one titled block of a lab's output. A section with
// Columns renders as a table of Rows; Lines are printed verbatim
// after the table.
type Section struct {
	Heading string     `json:"heading"`
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Lines   []string   `json:"lines,omitempty"`
}

// NewLab starts an empty report for the named lab.
func NewLab(name, title string) *LabReport {
	return &LabReport{Lab: name, Title: title, Sections: []*Section{}}
}

// Table appends a tabular section and returns it for filling.
func (l *LabReport) Table(heading string, columns ...string) *Section {
	s := &Section{Heading: heading, Columns: columns}
	l.Sections = append(l.Sections, s)
	return s
}

// Text appends a free-text section and returns it for filling.
func (l *LabReport) Text(heading string, lines ...string) *Section {
	s := &Section{Heading: heading, Lines: lines}
	l.Sections = append(l.Sections, s)
	return s
}

// Row appends a table row. Missing cells are padded with "".
func (s *Section) Row(cells ...string) *Section {
	for len(cells) < len(s.Columns) {
		cells = append(cells, "")
	}
	s.Rows = append(s.Rows, cells)
	return s
}

// Line appends a free-text line.
func (s *Section) Line(line string) *Section {
	s.Lines = append(s.Lines, line)
	return s
}
