package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"archive2svg/internal/config"
	"archive2svg/internal/dataset"
	"archive2svg/internal/logging"
)

// commandContext carries the persistent flags and lazily loaded shared state.
type commandContext struct {
	csvFile    string
	dbFile     string
	table      string
	configFile string
	debug      bool
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "archive2svg",
		Short:         "Render a newspaper archive as an interactive keyword timeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&ctx.csvFile, "csv", "", "CSV file with archive articles")
	flags.StringVar(&ctx.dbFile, "db", "", "SQLite database with archive articles (alternative to --csv)")
	flags.StringVar(&ctx.table, "table", dataset.DefaultTable, "Table to read from --db")
	flags.StringVarP(&ctx.configFile, "config", "c", "", "YAML configuration file (optional)")
	flags.BoolVar(&ctx.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&ctx.logFormat, "log-format", "", "Log format: console, json or auto (overrides config)")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newKeywordsCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))

	return rootCmd
}

// ensureConfig loads the configuration once and builds the logger from it.
func (c *commandContext) ensureConfig() (config.Config, error) {
	if c.cfg != nil {
		return *c.cfg, nil
	}
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading configuration: %w", err)
	}
	if c.debug {
		cfg.Log.Level = "debug"
	}
	if c.logFormat != "" {
		cfg.Log.Format = c.logFormat
	}
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return config.Config{}, err
	}
	c.cfg = &cfg
	c.logger = logger
	logger.Debug("configuration loaded",
		slog.String("path", c.configFile),
		slog.Int("width", cfg.Layout.Width),
		slog.Int("min_word_count", cfg.Filter.MinWordCount))
	return cfg, nil
}

// reloadConfig drops the cached configuration so the next ensureConfig reads
// the file again.
func (c *commandContext) reloadConfig() (config.Config, error) {
	c.cfg = nil
	return c.ensureConfig()
}

// inputPath returns the file the archive is read from.
func (c *commandContext) inputPath() (string, error) {
	switch {
	case c.csvFile != "" && c.dbFile != "":
		return "", errors.New("use either --csv or --db, not both")
	case c.csvFile != "":
		return c.csvFile, nil
	case c.dbFile != "":
		return c.dbFile, nil
	default:
		return "", errors.New("an archive is required. Use --csv or --db to specify it")
	}
}

// loadRecords reads raw records from the configured source.
func (c *commandContext) loadRecords(ctx context.Context) ([]dataset.Record, dataset.Schema, error) {
	if _, err := c.inputPath(); err != nil {
		return nil, dataset.Schema{}, err
	}
	if c.dbFile != "" {
		records, schema, err := dataset.LoadSQLite(ctx, c.dbFile, c.table)
		if err != nil {
			return nil, dataset.Schema{}, fmt.Errorf("reading archive database: %w", err)
		}
		return records, schema, nil
	}
	records, schema, err := dataset.LoadCSV(c.csvFile)
	if err != nil {
		return nil, dataset.Schema{}, fmt.Errorf("parsing CSV file: %w", err)
	}
	return records, schema, nil
}

// outputFilename returns outputFile if set, otherwise the input's base
// name with an .svg extension.
func outputFilename(inputFile, outputFile string) string {
	if outputFile != "" {
		return outputFile
	}
	base := filepath.Base(inputFile)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".svg"
}
