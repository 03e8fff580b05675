package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isee3s/floodcontrolph/internal/export"
	"github.com/isee3s/floodcontrolph/internal/extract"
	"github.com/isee3s/floodcontrolph/internal/mapgen"
	"github.com/isee3s/floodcontrolph/internal/project"
)

// Default pipeline paths. Running the binary with no flags uses these.
const (
	DefaultInputPath = "resources/all_national_data.txt"
	DefaultExcelPath = "output/national_projects_data.xlsx"
	DefaultMapPath   = "index.html"
)

var (
	flagInput   string
	flagExcel   string
	flagMap     string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "floodmap",
		Short: "Build a cost-banded project map from the national data document",
		Long: `Extracts flood control project records from a saved national data
HTML document, exports them to a spreadsheet, and renders an interactive
map with one toggleable layer per cost band.`,
		RunE: runPipeline,
	}

	// Define flags
	cmd.Flags().StringVar(&flagInput, "input", DefaultInputPath, "Path to the saved national data HTML document")
	cmd.Flags().StringVar(&flagExcel, "excel", DefaultExcelPath, "Path for the spreadsheet export")
	cmd.Flags().StringVar(&flagMap, "map", DefaultMapPath, "Path for the generated map document")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runPipeline is the main command logic: load, extract, export, render.
func runPipeline(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	data, err := os.ReadFile(flagInput)
	if err != nil {
		return fmt.Errorf("reading input document: %w", err)
	}

	res, err := extract.Projects(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("extracting projects: %w", err)
	}
	log.Info().
		Int("projects", len(res.Records)).
		Int("rows", res.RowCount).
		Int("skipped", res.SkippedNoTemplate).
		Int("dropped", res.DroppedNoCoordinates).
		Msg("extracted project records")

	if err := export.WriteExcel(res.Records, flagExcel); err != nil {
		return fmt.Errorf("exporting spreadsheet: %w", err)
	}
	log.Info().Str("path", flagExcel).Msg("projects exported")

	bands := project.Bands()
	if err := mapgen.WriteMap(res.Records, bands, flagMap); err != nil {
		return fmt.Errorf("generating map: %w", err)
	}
	log.Info().Str("path", flagMap).Msg("map saved")

	return WriteOutput(cmd.OutOrStdout(), summarize(res, bands, flagExcel, flagMap), format)
}
