package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/algoscope/internal/trace"
)

type ExportData struct {
	Run   RunMetadata  `json:"run"`
	Steps []trace.Step `json:"steps"`
}

// ExportJSON writes a run with its full step list.
func ExportJSON(w io.Writer, meta *RunMetadata, steps []trace.Step) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: *meta, Steps: steps})
}

// ExportCSV writes one row per step. Fixed columns come first, followed by
// one column per field name in the order names first appear.
func ExportCSV(w io.Writer, steps []trace.Step) error {
	var names []string
	seen := make(map[string]bool)
	for _, s := range steps {
		for _, f := range s.Fields {
			if !seen[f.Name] {
				seen[f.Name] = true
				names = append(names, f.Name)
			}
		}
	}

	cw := csv.NewWriter(w)
	header := append([]string{"index", "line", "explanation", "size"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range steps {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(s.Index), strconv.Itoa(s.Line), s.Explanation, strconv.Itoa(s.Size))
		for _, name := range names {
			v, _ := s.Field(name)
			row = append(row, v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
