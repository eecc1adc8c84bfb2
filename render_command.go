package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"archive2svg/internal/chart"
	"archive2svg/internal/dataset"
	"archive2svg/internal/keywords"
	"archive2svg/internal/logging"
	"archive2svg/internal/watch"
)

type renderOptions struct {
	output     string
	keywordOne string
	keywordTwo string
	width      int
}

func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output SVG file (defaults to the input name with .svg)")
	cmd.Flags().StringVar(&opts.keywordOne, "keyword-one", "", "Keyword for the first filter slot")
	cmd.Flags().StringVar(&opts.keywordTwo, "keyword-two", "", "Keyword for the second filter slot")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Viewport width in pixels (defaults to layout.width)")
}

func (o renderOptions) selection() keywords.Selection {
	var sel keywords.Selection
	sel.SetOne(keywords.ParseOption(o.keywordOne))
	sel.SetTwo(keywords.ParseOption(o.keywordTwo))
	return sel
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the archive to a static SVG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.renderOnce(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SVG timeline generated: %s\n", path)
			return nil
		},
	}
	addRenderFlags(cmd, &opts)
	return cmd
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the SVG whenever the archive or configuration changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := ctx.inputPath()
			if err != nil {
				return err
			}
			path, err := ctx.renderOnce(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SVG timeline generated: %s\n", path)

			paths := []string{input}
			if ctx.configFile != "" {
				paths = append(paths, ctx.configFile)
			}
			ctx.logger.Info("watching for changes", slog.Any("paths", paths))
			err = watch.Files(cmd.Context(), paths, watch.DefaultDebounce, ctx.logger, func(c context.Context) error {
				if _, err := ctx.reloadConfig(); err != nil {
					ctx.logger.Warn("configuration reload failed, keeping previous output", logging.Error(err))
					return nil
				}
				path, err := ctx.renderOnce(c, opts)
				if err != nil {
					ctx.logger.Warn("render failed", logging.Error(err))
					return nil
				}
				ctx.logger.Info("SVG timeline regenerated", slog.String("output", path))
				return nil
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	addRenderFlags(cmd, &opts)
	return cmd
}

// renderOnce loads, normalizes and renders the archive, then writes the SVG.
// It returns the written path.
func (c *commandContext) renderOnce(ctx context.Context, opts renderOptions) (string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	input, err := c.inputPath()
	if err != nil {
		return "", err
	}
	records, schema, err := c.loadRecords(ctx)
	if err != nil {
		return "", err
	}
	engine, err := chart.NewEngine(cfg, c.logger)
	if err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}

	width := cfg.Layout.Width
	if opts.width > 0 {
		width = opts.width
	}

	var svg string
	ds, report, err := engine.Normalize(records, schema)
	switch {
	case errors.Is(err, dataset.ErrEmptyDataset):
		c.logger.Warn("no valid articles to display", slog.Int("total", report.Total))
		svg = engine.Placeholder()
	case err != nil:
		return "", err
	default:
		svg, err = engine.SVG(ds, width, opts.selection())
		if err != nil {
			return "", err
		}
	}

	path := outputFilename(input, opts.output)
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return "", fmt.Errorf("writing SVG file: %w", err)
	}
	c.logger.Debug("wrote svg", slog.String("output", path), slog.Int("bytes", len(svg)))
	return path, nil
}
