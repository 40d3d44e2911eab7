package cmd

import (
	"github.com/lehigh-university-libraries/artdash/internal/report"
	"github.com/spf13/cobra"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var search string
	var typeFilter string
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Load a sample and print statistics and charts",
		Long: `Loads one sample from the collection and prints the dashboard: total and
unique type counts, the type and century charts, and the artworks matching
the optional title search and type filter (at most 50 are listed).`,
		Example: `  # Print the dashboard as text
  artdash summary

  # Only paintings with "river" in the title, as JSON
  artdash summary --search river --type painting --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			service := newService(cfg)
			service.Records(cmd.Context())

			return report.WriteOverview(cmd.OutOrStdout(), service.Overview(search, typeFilter), format)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only list artworks whose title contains this text")
	cmd.Flags().StringVar(&typeFilter, "type", "", "Only list artworks of this type (painting, print, ceramic, sculpture, ...)")
	cmd.Flags().StringVar(&format, "format", report.FormatText, "Output format (text, json, csv, yaml)")

	return cmd
}
