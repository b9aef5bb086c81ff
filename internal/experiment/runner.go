// Package experiment - end-to-end run driver.
package experiment

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/spurcorr/dataset"
	"github.com/katalvlaran/spurcorr/highlight"
	"github.com/katalvlaran/spurcorr/render"
	"github.com/katalvlaran/spurcorr/transform"
	"go.uber.org/zap"
)

// Result summarizes one completed run.
type Result struct {
	RunID    string // UUID stamped on every log line of the run
	Records  int    // total records in the input corpus
	Matching int    // records carrying the target label
	Selected int    // records the proportion selected for poisoning
	Output   string // path the poisoned corpus was written to
}

// Runner executes experiment configs end to end. The zero value is
// usable: it logs nowhere and previews to stdout.
type Runner struct {
	Log     *zap.Logger // run log; nil stays silent
	Preview io.Writer   // preview destination; nil means os.Stdout
}

// Run loads the input corpus, builds the modifier pipeline, poisons the
// selected records, writes the output file and optionally previews it.
func (r *Runner) Run(cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("experiment: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Output == "" {
		return nil, ErrNoOutput
	}

	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.NewString()
	log = log.With(zap.String("run", runID), zap.String("experiment", cfg.Name))

	ds, err := dataset.LoadJSONL[dataset.Label](cfg.Input)
	if err != nil {
		return nil, err
	}
	target := dataset.Label(cfg.TargetLabel)
	matching := ds.CountLabel(target)
	log.Info("dataset loaded",
		zap.String("path", cfg.Input),
		zap.Int("records", ds.Len()),
		zap.Int("matching", matching))

	pipeline, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	log.Info("pipeline built",
		zap.Int("stages", len(cfg.Modifiers)),
		zap.Int64("seed", cfg.Seed))

	out, err := transform.Spurious(target, ds, pipeline, cfg.TextProportion, cfg.Seed)
	if err != nil {
		return nil, err
	}
	selected := transform.SelectionCount(matching, cfg.TextProportion)
	log.Info("records poisoned",
		zap.Int("selected", selected),
		zap.Float64("text_proportion", cfg.TextProportion))

	if err = dataset.SaveJSONL(cfg.Output, out); err != nil {
		return nil, err
	}
	log.Info("dataset written", zap.String("path", cfg.Output))

	if cfg.Preview.Enabled {
		if err = r.preview(cfg, target, out); err != nil {
			return nil, err
		}
	}

	return &Result{
		RunID:    runID,
		Records:  ds.Len(),
		Matching: matching,
		Selected: selected,
		Output:   cfg.Output,
	}, nil
}

// preview renders the head of the poisoned corpus, target records only.
func (r *Runner) preview(cfg *Config, target dataset.Label, ds dataset.Dataset[dataset.Label]) error {
	find, err := previewFinder(cfg.Preview)
	if err != nil {
		return err
	}

	w := r.Preview
	if w == nil {
		w = os.Stdout
	}
	return render.Dataset(w, ds, render.Options[dataset.Label]{
		Limit:     cfg.Preview.Limit,
		Target:    &target,
		Highlight: find,
	})
}

// previewFinder resolves the configured highlighter name.
func previewFinder(pc PreviewConfig) (highlight.Func, error) {
	switch pc.Highlight {
	case "":
		return nil, nil
	case HighlightDates:
		return highlight.Dates, nil
	case HighlightPatterns:
		return highlight.FromFile(pc.Path)
	case HighlightTags:
		return highlight.HTMLTagsFromFile(pc.Path)
	}
	return nil, fmt.Errorf("%w: %q", ErrBadHighlight, pc.Highlight)
}
