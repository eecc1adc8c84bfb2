package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"archive2svg/internal/chart"
	"archive2svg/internal/dataset"
	"archive2svg/internal/keywords"
	"archive2svg/internal/scale"
	"archive2svg/internal/server"
)

// loadDataset runs the shared load and normalize steps. An empty dataset is
// not an error here; ds is nil in that case.
func (c *commandContext) loadDataset(ctx context.Context) (*chart.Engine, *dataset.Dataset, dataset.Report, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, dataset.Report{}, err
	}
	records, schema, err := c.loadRecords(ctx)
	if err != nil {
		return nil, nil, dataset.Report{}, err
	}
	engine, err := chart.NewEngine(cfg, c.logger)
	if err != nil {
		return nil, nil, dataset.Report{}, fmt.Errorf("invalid configuration: %w", err)
	}
	ds, report, err := engine.Normalize(records, schema)
	if err != nil && !errors.Is(err, dataset.ErrEmptyDataset) {
		return nil, nil, report, err
	}
	return engine, ds, report, nil
}

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive chart over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, ds, _, err := ctx.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			if bind == "" {
				bind = engine.Config().Serve.Bind
			}
			return server.New(engine, ds, keywords.DefaultTable, ctx.logger).Run(cmd.Context(), bind)
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Address to listen on (defaults to serve.bind)")
	return cmd
}

func newKeywordsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the keywords tracked by the archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ds, _, err := ctx.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			if ds.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No valid articles in archive")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), keywordTable(ds, keywords.DefaultTable))
			return nil
		},
	}
}

func keywordTable(ds *dataset.Dataset, table keywords.Table) string {
	rows := make([][]string, 0, len(ds.Schema.Keywords))
	for _, kw := range ds.Schema.Keywords {
		matched := 0
		for _, a := range ds.Articles {
			if a.HasMatch(kw) {
				matched++
			}
		}
		rows = append(rows, []string{kw, table.Translate(kw), strconv.Itoa(matched)})
	}
	return renderTable([]column{left("Keyword"), left("Translation"), right("Articles")}, rows)
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show normalization counts and data domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ds, report, err := ctx.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), statsTable(ds, report))
			return nil
		},
	}
}

func statsTable(ds *dataset.Dataset, report dataset.Report) string {
	rows := [][]string{
		{"Rows read", strconv.Itoa(report.Total)},
		{"Articles kept", strconv.Itoa(report.Kept)},
		{"Missing id", strconv.Itoa(report.MissingID)},
		{"Malformed date", strconv.Itoa(report.MalformedDate)},
		{"Malformed word count", strconv.Itoa(report.MalformedWordCount)},
		{"Published too early", strconv.Itoa(report.TooOld)},
		{"Too short", strconv.Itoa(report.TooShort)},
	}
	if ext, err := scale.ExtentOf(ds); err == nil {
		rows = append(rows,
			[]string{"First published", ext.MinDate.Format("2006-01-02")},
			[]string{"Last published", ext.MaxDate.Format("2006-01-02")},
			[]string{"Fewest words", strconv.FormatFloat(ext.MinWords, 'f', 0, 64)},
			[]string{"Most words", strconv.FormatFloat(ext.MaxWords, 'f', 0, 64)},
		)
	}
	return renderTable([]column{left("Metric"), right("Value")}, rows)
}
