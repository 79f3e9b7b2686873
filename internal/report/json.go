package report

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the lab reports as formatted JSON to the writer.
func WriteJSON(w io.Writer, labs []LabReport) error {
	if labs == nil {
		labs = []LabReport{}
	}
	for i := range labs {
		if labs[i].Sections == nil {
			labs[i].Sections = []*Section{}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Report{
		Version: Version,
		Labs:    labs,
	})
}
