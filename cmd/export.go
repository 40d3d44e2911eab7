package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/artdash/internal/report"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load a sample and write the raw records to a file",
		Long: `Loads one sample from the collection and writes the raw records for
analysis elsewhere. The format is taken from --format, or from the output
file extension when --format is not given.`,
		Example: `  artdash export --output artworks.parquet
  artdash export --output artworks.csv --departments 11,6 --sample 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			records := newService(cfg).Records(cmd.Context())
			if len(records) == 0 {
				return fmt.Errorf("no artworks could be loaded")
			}

			if err := report.ExportRecords(output, format, records); err != nil {
				return err
			}

			slog.Info("Exported artworks", "count", len(records), "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	cmd.Flags().StringVar(&format, "format", "", "Export format (parquet, json, yaml, csv)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
