package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/isee3s/floodcontrolph/internal/extract"
	"github.com/isee3s/floodcontrolph/internal/project"
)

// OutputFormat specifies the run summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// BandCount is the number of mapped projects in one cost band.
type BandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

// RunSummary contains the result of one pipeline run.
type RunSummary struct {
	GeneratedAt          time.Time   `json:"generated_at"`
	ProjectCount         int         `json:"project_count"`
	RowCount             int         `json:"row_count"`
	SkippedNoTemplate    int         `json:"skipped_no_template"`
	DroppedNoCoordinates int         `json:"dropped_no_coordinates"`
	ByBand               []BandCount `json:"by_band"`
	Unmapped             int         `json:"unmapped"`
	ExcelPath            string      `json:"excel_path"`
	MapPath              string      `json:"map_path"`
}

// summarize builds the run summary from the extraction result. Band
// counts use the same classifier as the renderer, so the summary always
// agrees with the map.
func summarize(res *extract.Result, bands []project.Band, excelPath, mapPath string) *RunSummary {
	counts := make(map[project.Band]int, len(bands))
	unmapped := 0
	for _, rec := range res.Records {
		band := project.Classify(rec.Cost)
		if band.Classified() {
			counts[band]++
		} else {
			unmapped++
		}
	}

	byBand := make([]BandCount, 0, len(bands))
	for _, b := range bands {
		byBand = append(byBand, BandCount{Band: b.Label(), Count: counts[b]})
	}

	return &RunSummary{
		GeneratedAt:          time.Now().UTC(),
		ProjectCount:         len(res.Records),
		RowCount:             res.RowCount,
		SkippedNoTemplate:    res.SkippedNoTemplate,
		DroppedNoCoordinates: res.DroppedNoCoordinates,
		ByBand:               byBand,
		Unmapped:             unmapped,
		ExcelPath:            excelPath,
		MapPath:              mapPath,
	}
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, summary *RunSummary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, summary *RunSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, summary *RunSummary) error {
	fmt.Fprintf(w, "Total projects: %d\n", summary.ProjectCount)
	if summary.SkippedNoTemplate > 0 {
		fmt.Fprintf(w, "Rows skipped (no detail template): %d\n", summary.SkippedNoTemplate)
	}
	if summary.DroppedNoCoordinates > 0 {
		fmt.Fprintf(w, "Rows dropped (no coordinates): %d\n", summary.DroppedNoCoordinates)
	}

	fmt.Fprintln(w, "Projects by cost band:")
	for _, bc := range summary.ByBand {
		fmt.Fprintf(w, "  %-10s %d\n", bc.Band, bc.Count)
	}
	if summary.Unmapped > 0 {
		fmt.Fprintf(w, "  %-10s %d (exported, not mapped)\n", "Below 50M", summary.Unmapped)
	}

	fmt.Fprintf(w, "Projects exported to %q\n", summary.ExcelPath)
	fmt.Fprintf(w, "Map saved as %q\n", summary.MapPath)
	return nil
}
