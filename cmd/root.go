package cmd

import (
	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/artdash/internal/collection"
	"github.com/lehigh-university-libraries/artdash/internal/config"
	"github.com/lehigh-university-libraries/artdash/internal/dashboard"
	"github.com/spf13/cobra"
)

// options are the flags shared by every subcommand
type options struct {
	configPath  string
	baseURL     string
	departments []int
	sampleSize  int
	fallbackIDs []int
	logLevel    string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "artdash",
		Short: "Dashboard for sampling and charting The Met collection",
		Long: `artdash samples artworks from The Met Collection API and summarises them.

It loads a small sample from a ranked list of departments, falling back to a
fixed list of known objects when every department comes back empty, then
reports totals, a chart by object type, and a chart by century.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.baseURL, "api-url", "", "Collection API base URL (overrides "+config.EnvBaseURL+")")
	flags.IntSliceVar(&opts.departments, "departments", nil, "Department ids to try, in priority order")
	flags.IntVar(&opts.sampleSize, "sample", 0, "Number of objects to fetch per department")
	flags.IntSliceVar(&opts.fallbackIDs, "fallback", nil, "Object ids to fetch when every department fails")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Add subcommands
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newSummaryCmd(opts))
	cmd.AddCommand(newDetailCmd(opts))
	cmd.AddCommand(newExportCmd(opts))

	return cmd
}

// load resolves the configuration (file, then env, then flags) and sets up logging
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.BaseURL = o.baseURL
	}
	if flags.Changed("departments") {
		cfg.Departments = o.departments
	}
	if flags.Changed("sample") {
		cfg.SampleSize = o.sampleSize
	}
	if flags.Changed("fallback") {
		cfg.FallbackIDs = o.fallbackIDs
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.SetupLogging()
	return cfg, nil
}

// newService wires the API client, loader, and view state together
func newService(cfg *config.Config) *dashboard.Service {
	client := collection.NewClient(cfg.BaseURL, cfg.HTTPTimeout)
	return dashboard.NewService(client, cfg.Request())
}
