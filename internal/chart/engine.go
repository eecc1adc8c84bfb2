// Package chart wires the visual-encoding pipeline: normalized dataset to
// memoized scales, then classification and projection of every article.
package chart

import (
	"errors"
	"fmt"
	"log/slog"

	"archive2svg/internal/axis"
	"archive2svg/internal/band"
	"archive2svg/internal/config"
	"archive2svg/internal/dataset"
	"archive2svg/internal/keywords"
	"archive2svg/internal/logging"
	"archive2svg/internal/mark"
	"archive2svg/internal/render"
	"archive2svg/internal/scale"
)

// EmptyMessage is the placeholder text for an empty dataset.
const EmptyMessage = "No valid data to display"

// Engine renders charts for one configuration.
type Engine struct {
	cfg     config.Config
	cache   *scale.Cache
	opacity band.Opacity
	logger  *slog.Logger
}

// NewEngine creates an engine with a scale cache.
func NewEngine(cfg config.Config, logger *slog.Logger) (*Engine, error) {
	opts, err := cfg.ScaleOptions()
	if err != nil {
		return nil, err
	}
	logger = logging.NewComponentLogger(logger, "chart")
	cache, err := scale.NewCache(0, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("scale cache: %w", err)
	}
	return &Engine{
		cfg:   cfg,
		cache: cache,
		opacity: band.Opacity{
			Baseline:  cfg.Opacity.Baseline,
			Highlight: cfg.Opacity.Highlight,
			Dimmed:    cfg.Opacity.Dimmed,
		},
		logger: logger,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() config.Config { return e.cfg }

// NormalizeOptions returns the normalizer thresholds from the configuration.
func (e *Engine) NormalizeOptions() dataset.Options {
	return dataset.Options{MinYear: e.cfg.Filter.MinYear, MinWordCount: e.cfg.Filter.MinWordCount}
}

// Normalize runs the Dataset Normalizer with the configured thresholds.
func (e *Engine) Normalize(records []dataset.Record, schema dataset.Schema) (*dataset.Dataset, dataset.Report, error) {
	return dataset.Normalize(records, schema, e.NormalizeOptions(), e.logger)
}

// Build projects every article of ds for the given width and selection.
// Keywords unknown to the dataset are kept; they simply match nothing.
func (e *Engine) Build(ds *dataset.Dataset, width int, sel keywords.Selection) (render.Chart, error) {
	set, err := e.cache.Get(ds, width)
	if err != nil {
		return render.Chart{}, err
	}
	filters := sel.Filters()
	for _, kw := range []string{filters.KeywordOne, filters.KeywordTwo} {
		if kw != "" && !ds.Schema.Has(kw) {
			e.logger.Warn("selected keyword has no column in dataset", slog.String("keyword", kw))
		}
	}

	marks := mark.ProjectAll(ds, set, filters, e.opacity)
	counts := mark.Counts(marks)
	e.logger.Debug("projected marks",
		slog.Int("marks", len(marks)),
		slog.Int("highlighted", mark.Highlighted(marks)),
		slog.Int("both", counts[band.Both]),
		slog.Int("keyword_one", counts[band.KeywordOne]),
		slog.Int("keyword_two", counts[band.KeywordTwo]),
		slog.Int("dimmed", counts[band.Dimmed]))

	chart := render.Chart{
		Width: width,
		Marks: marks,
		Ticks: axis.Years(set.Time),
	}
	if sel.Both() {
		chart.Caption = render.IntersectionCaption(sel.One(), sel.Two())
	}
	if e.cfg.Legend.Show {
		legend := render.NewLegend(set, e.cfg)
		chart.Legend = &legend
	}
	return chart, nil
}

// SVG renders ds as an SVG document. An empty dataset yields the
// placeholder document rather than an error.
func (e *Engine) SVG(ds *dataset.Dataset, width int, sel keywords.Selection) (string, error) {
	chart, err := e.Build(ds, width, sel)
	if errors.Is(err, dataset.ErrEmptyDataset) {
		return render.Placeholder(EmptyMessage, e.cfg), nil
	}
	if err != nil {
		return "", err
	}
	return render.SVG(chart, e.cfg), nil
}

// Placeholder renders the empty-state document.
func (e *Engine) Placeholder() string {
	return render.Placeholder(EmptyMessage, e.cfg)
}
