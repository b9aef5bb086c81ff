// Package experiment - pipeline assembly.
package experiment

import (
	"fmt"

	"github.com/katalvlaran/spurcorr/dataset"
	"github.com/katalvlaran/spurcorr/generator"
	"github.com/katalvlaran/spurcorr/modifier"
)

// Build assembles the configured stages into one modifier. A lone stage
// is returned as-is; several become a Composite applied in config order.
//
// Stage seeds left at zero are derived from the run seed with one stream
// per stage position, so rebuilding the same config always reproduces
// the same pipeline.
func (c *Config) Build() (modifier.Modifier[dataset.Label], error) {
	if len(c.Modifiers) == 0 {
		return nil, ErrNoModifiers
	}

	stages := make([]modifier.Modifier[dataset.Label], 0, len(c.Modifiers))
	for i, mc := range c.Modifiers {
		stage, err := c.buildStage(i, mc)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	if len(stages) == 1 {
		return stages[0], nil
	}
	return modifier.NewComposite(stages...), nil
}

// buildStage resolves one stage's location, seed, kind and source.
func (c *Config) buildStage(i int, mc ModifierConfig) (modifier.Modifier[dataset.Label], error) {
	loc := modifier.Random
	if mc.Location != "" {
		var err error
		if loc, err = modifier.ParseLocation(mc.Location); err != nil {
			return nil, fmt.Errorf("experiment: stage %d: %w", i, err)
		}
	}

	seed := mc.Seed
	if seed == 0 {
		seed = generator.DeriveSeed(c.Seed, uint64(i)+1)
	}

	var (
		stage modifier.Modifier[dataset.Label]
		err   error
	)
	switch mc.Kind {
	case KindItem:
		stage, err = buildItemStage(mc, loc, seed)
	case KindHTML:
		stage, err = buildHTMLStage(mc, loc, seed)
	default:
		err = fmt.Errorf("%w: %q", ErrBadKind, mc.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("experiment: stage %d: %w", i, err)
	}
	return stage, nil
}

func buildItemStage(mc ModifierConfig, loc modifier.Location, seed int64) (modifier.Modifier[dataset.Label], error) {
	opts := modifier.Options{
		Location:        loc,
		TokenProportion: mc.TokenProportion,
		Seed:            seed,
	}

	switch mc.Source.Kind {
	case SourceList:
		return modifier.ItemInjectionFromList[dataset.Label](mc.Source.Items, opts)
	case SourceFile:
		if mc.Source.WithReplacement != nil {
			gen, err := generator.NewFileItemGenerator(mc.Source.Path, generator.ItemOptions{
				WithReplacement: *mc.Source.WithReplacement,
				Seed:            seed,
			})
			if err != nil {
				return nil, err
			}
			return modifier.NewItemInjection[dataset.Label](gen, opts)
		}
		return modifier.ItemInjectionFromFile[dataset.Label](mc.Source.Path, opts)
	case SourceDates:
		gen, err := newDateSource(mc.Source, seed)
		if err != nil {
			return nil, err
		}
		return modifier.NewItemInjection[dataset.Label](gen, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrBadSource, mc.Source.Kind)
}

func buildHTMLStage(mc ModifierConfig, loc modifier.Location, seed int64) (modifier.Modifier[dataset.Label], error) {
	opts := modifier.DefaultHTMLOptions()
	opts.Location = loc
	opts.TokenProportion = mc.TokenProportion
	opts.Seed = seed
	if mc.Level != nil {
		opts.Level = *mc.Level
	}

	switch mc.Source.Kind {
	case SourceList:
		return modifier.HTMLInjectionFromList[dataset.Label](mc.Source.Items, opts)
	case SourceFile:
		return modifier.HTMLInjectionFromFile[dataset.Label](mc.Source.Path, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrBadSource, mc.Source.Kind)
}

// newDateSource builds the date generator for a dates source.
func newDateSource(src SourceConfig, seed int64) (generator.Generator, error) {
	opts := generator.DefaultDateOptions()
	opts.Seed = seed
	if src.YearMin != 0 || src.YearMax != 0 {
		opts.YearMin, opts.YearMax = src.YearMin, src.YearMax
	}
	if src.WithReplacement != nil {
		opts.WithReplacement = *src.WithReplacement
	}
	return generator.NewDateGenerator(opts)
}
