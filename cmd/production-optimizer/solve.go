package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/production-optimizer/internal/config"
	"github.com/iwvelando/production-optimizer/internal/optimizer"
	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/output"
	"github.com/iwvelando/production-optimizer/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type solveOptions struct {
	configPath           string
	outputFormat         string
	logLevel             string
	policy               string
	preferMultipleTables bool
	preferWhen           string
	cornerProfit         string
	hours                float64
	wood                 float64
}

func newSolveCommand() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the optimal production mix for a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.OutOrStdout(), cmd.Flags(), opts)
		},
	}
	addSolveFlags(cmd.Flags(), opts)
	return cmd
}

func addSolveFlags(flags *pflag.FlagSet, opts *solveOptions) {
	flags.StringVarP(&opts.configPath, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVarP(&opts.outputFormat, "output-format", "o", "", "type of output override: pretty, csv, json")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&opts.policy, "policy", "", "policy override: grid, corner")
	flags.BoolVar(&opts.preferMultipleTables, "prefer-multiple-tables", false, "prefer grid points with more than one table")
	flags.StringVar(&opts.preferWhen, "prefer-when", "", "CEL expression over x, y, profit, hours and wood selecting preferred grid points")
	flags.StringVar(&opts.cornerProfit, "corner-profit", "", "profit reported by the corner policy: vertex, floored")
	flags.Float64Var(&opts.hours, "hours", 0, "total labor hours override")
	flags.Float64Var(&opts.wood, "wood", 0, "total wood stock override")
}

// applyOverrides copies every flag the user set explicitly onto conf.
func (o *solveOptions) applyOverrides(flags *pflag.FlagSet, conf *config.Configuration) {
	if flags.Changed("policy") {
		conf.Policy.Kind = o.policy
	}
	if flags.Changed("prefer-multiple-tables") {
		conf.Policy.PreferMultipleTables = o.preferMultipleTables
	}
	if flags.Changed("prefer-when") {
		conf.Policy.PreferWhen = o.preferWhen
	}
	if flags.Changed("corner-profit") {
		conf.Policy.CornerProfit = o.cornerProfit
	}
	if flags.Changed("hours") {
		conf.Limits.TotalHours = o.hours
	}
	if flags.Changed("wood") {
		conf.Limits.TotalWood = o.wood
	}
	if flags.Changed("output-format") {
		conf.Output.Format = o.outputFormat
	}
	conf.Policy.Normalize()
}

// loadSolveConfiguration reads the configuration file. When the default file
// is absent and no path was given, the built-in case study is used.
func loadSolveConfiguration(flags *pflag.FlagSet, path string) (*config.Configuration, error) {
	if !flags.Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.Default()
		}
	}
	return config.LoadConfiguration(path)
}

func runSolve(w io.Writer, flags *pflag.FlagSet, opts *solveOptions) error {
	// Load the config file to get logging configuration
	conf, err := loadSolveConfiguration(flags, opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}
	opts.applyOverrides(flags, conf)

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main.solve"),
		)
		return err
	}

	runner, err := optimizer.NewRunner(logger, conf)
	if err != nil {
		logger.Error("failed to initialize optimizer",
			zap.String("op", "main.solve"),
			zap.Error(err),
		)
		return err
	}
	report := runner.Run()

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(w, report, output.Options{
			CurrencySymbol: conf.Output.CurrencySymbol,
			MaxRows:        conf.Output.MaxRows,
		})
	case constants.OutputFormatCSV:
		output.CsvFormat(w, report)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(w, report, 0); err != nil {
			logger.Error("failed to write report",
				zap.String("op", "main.solve"),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}
