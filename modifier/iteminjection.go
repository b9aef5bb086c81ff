// Package modifier - token payload injection.
package modifier

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/spurcorr/generator"
)

// ItemInjection plants payload tokens into text.
//
// Each Modify call splits the text on whitespace, draws
// max(1, floor(tokens*TokenProportion)) payloads from the source in
// order, places them per the configured Location, and re-joins with
// single spaces. The label is returned unchanged.
type ItemInjection[L any] struct {
	source     generator.Generator
	loc        Location
	proportion float64
	rng        *rand.Rand
}

// NewItemInjection builds an injector over an arbitrary payload source.
// The injector owns a position stream seeded from opts.Seed; the source
// keeps whatever stream it was built with.
//
// Errors:
//   - ErrNilGenerator, ErrTokenProportion, ErrBadLocation.
func NewItemInjection[L any](source generator.Generator, opts Options) (*ItemInjection[L], error) {
	if source == nil {
		return nil, ErrNilGenerator
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &ItemInjection[L]{
		source:     source,
		loc:        opts.Location,
		proportion: opts.TokenProportion,
		rng:        generator.NewRNG(opts.Seed),
	}, nil
}

// ItemInjectionFromList builds an injector drawing uniformly from a fixed
// pool. The pool choice and the position draws share one seeded stream.
// Entries are trimmed; blank entries are dropped.
//
// Errors:
//   - ErrEmptyPool (from generator) when no usable entries remain;
//   - ErrTokenProportion, ErrBadLocation.
func ItemInjectionFromList[L any](items []string, opts Options) (*ItemInjection[L], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	pool := trimPool(items)
	if len(pool) == 0 {
		return nil, fmt.Errorf("modifier: injection list: %w", generator.ErrEmptyPool)
	}

	rng := generator.NewRNG(opts.Seed)
	return &ItemInjection[L]{
		source:     &listSource{items: pool, rng: rng},
		loc:        opts.Location,
		proportion: opts.TokenProportion,
		rng:        rng,
	}, nil
}

// ItemInjectionFromFile builds an injector over a newline-delimited pool
// file, with the same shared-stream semantics as ItemInjectionFromList.
//
// Errors:
//   - ErrEmptyPool (from generator), wrapped I/O errors;
//   - ErrTokenProportion, ErrBadLocation.
func ItemInjectionFromFile[L any](path string, opts Options) (*ItemInjection[L], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	pool, err := generator.ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("modifier: injection file %s: %w", path, generator.ErrEmptyPool)
	}

	rng := generator.NewRNG(opts.Seed)
	return &ItemInjection[L]{
		source:     &listSource{items: pool, rng: rng},
		loc:        opts.Location,
		proportion: opts.TokenProportion,
		rng:        rng,
	}, nil
}

// Modify implements Modifier.
//
// Errors:
//   - wrapped source errors (e.g. generator.ErrExhausted); the call is
//     aborted and no partial text is returned.
//
// Complexity: O(tokens + injected) per call for beginning/end,
// O(tokens * injected) worst case for random placement.
func (m *ItemInjection[L]) Modify(text string, label L) (string, L, error) {
	words := strings.Fields(text)

	injections := make([]string, numToInject(len(words), m.proportion))
	for i := range injections {
		item, err := m.source.Next()
		if err != nil {
			return "", label, fmt.Errorf("modifier: draw payload %d: %w", i, err)
		}
		injections[i] = item
	}

	switch m.loc {
	case Beginning:
		words = append(injections, words...)
	case End:
		words = append(words, injections...)
	case Random:
		for _, injection := range injections {
			words = insertAt(words, m.rng.Intn(len(words)+1), injection)
		}
	}
	return strings.Join(words, " "), label, nil
}

// listSource draws uniformly from a fixed in-memory pool. It shares the
// owning modifier's RNG so choice and position form one stream.
type listSource struct {
	items []string
	rng   *rand.Rand
}

// Next implements generator.Generator; it never fails.
func (s *listSource) Next() (string, error) {
	return s.items[s.rng.Intn(len(s.items))], nil
}

// numToInject applies the max(1, floor(tokens*proportion)) count rule.
func numToInject(tokens int, proportion float64) int {
	n := int(float64(tokens) * proportion)
	if n < 1 {
		n = 1
	}
	return n
}

// insertAt places tok at index pos in tokens, shifting the tail right.
// pos must be within [0, len(tokens)].
func insertAt(tokens []string, pos int, tok string) []string {
	tokens = append(tokens, "")
	copy(tokens[pos+1:], tokens[pos:])
	tokens[pos] = tok
	return tokens
}

// trimPool trims entries and drops blanks, preserving order.
func trimPool(items []string) []string {
	pool := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			pool = append(pool, trimmed)
		}
	}
	return pool
}
