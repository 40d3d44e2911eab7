package cmd

import (
	"fmt"
	"strconv"

	"github.com/lehigh-university-libraries/artdash/internal/report"
	"github.com/spf13/cobra"
)

func newDetailCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "detail <object-id>",
		Short: "Show one artwork with a century comparison",
		Long: `Fetches a single artwork and prints its details. When the artwork's date
contains a year, a comparison sample from the European Paintings department is
loaded and bucketed by century.`,
		Example: `  artdash detail 436121
  artdash detail 436121 --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid object id: %s", args[0])
			}

			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			detail, err := newService(cfg).Detail(cmd.Context(), id)
			if err != nil {
				return err
			}

			return report.WriteDetail(cmd.OutOrStdout(), detail, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", report.FormatText, "Output format (text, json, csv, yaml)")

	return cmd
}
