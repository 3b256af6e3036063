package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/domain"
	"github.com/srajal5/vacationplanner/internal/savedtrips"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <trip-id>",
	Short: "Download a trip plan as a PDF or spreadsheet",
	Long: `Export downloads the trip document and writes it to disk.

Example:
  tripctl export 3f2a... --format pdf
  tripctl export 3f2a... --format xlsx --out my-trip.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "document format: pdf or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default: trip-plan-<id>.<ext>)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := domain.ParseExportFormat(exportFormat)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}

	mgr := savedtrips.NewManager(newRepository())
	payload, filename, err := mgr.Export(cmd.Context(), args[0], format)
	if err != nil {
		return err
	}

	if exportOut != "" {
		filename = exportOut
	}
	if err := os.WriteFile(filename, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", filename, len(payload))
	return nil
}
