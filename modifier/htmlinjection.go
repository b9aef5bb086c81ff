// Package modifier - HTML tag pair injection.
package modifier

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/spurcorr/generator"
)

// HTMLInjection plants HTML tag pairs into text.
//
// The tag pool holds one pair per line: the first whitespace field is the
// opening tag, the optional second field the closing tag. Placement
// follows the configured Location; Level optionally narrows injection to
// the first span at a given nesting depth, found by a shallow tag scan.
// The label is returned unchanged.
type HTMLInjection[L any] struct {
	tags       []string
	loc        Location
	level      int
	proportion float64
	rng        *rand.Rand
}

// HTMLInjectionFromList builds an injector over an in-memory tag pool.
// Entries are trimmed; blank entries are dropped.
//
// Errors:
//   - ErrEmptyTagPool when no usable entries remain;
//   - ErrTokenProportion, ErrBadLocation, ErrBadLevel.
func HTMLInjectionFromList[L any](tags []string, opts HTMLOptions) (*HTMLInjection[L], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	pool := trimPool(tags)
	if len(pool) == 0 {
		return nil, ErrEmptyTagPool
	}
	return &HTMLInjection[L]{
		tags:       pool,
		loc:        opts.Location,
		level:      opts.Level,
		proportion: opts.TokenProportion,
		rng:        generator.NewRNG(opts.Seed),
	}, nil
}

// HTMLInjectionFromFile builds an injector over a newline-delimited tag
// pool file.
//
// Errors:
//   - ErrEmptyTagPool, wrapped I/O errors;
//   - ErrTokenProportion, ErrBadLocation, ErrBadLevel.
func HTMLInjectionFromFile[L any](path string, opts HTMLOptions) (*HTMLInjection[L], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	pool, err := generator.ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTagPool, path)
	}
	return &HTMLInjection[L]{
		tags:       pool,
		loc:        opts.Location,
		level:      opts.Level,
		proportion: opts.TokenProportion,
		rng:        generator.NewRNG(opts.Seed),
	}, nil
}

// Modify implements Modifier. It never fails: the tag pool is finite and
// fixed, so there is nothing to exhaust.
//
// Level semantics:
//   - NoLevel: inject into the whole text;
//   - 0: wrap the entire text in one pair (opening doubles as closing
//     when the pair has no closing tag);
//   - L > 0: inject only into the first span at depth L; when the text
//     has no such span, fall back to whole-text injection.
func (m *HTMLInjection[L]) Modify(text string, label L) (string, L, error) {
	switch {
	case m.level == NoLevel:
		return m.injectText(text), label, nil

	case m.level == 0:
		opening, closing := m.chooseTag()
		if closing == "" {
			closing = opening
		}
		return opening + text + closing, label, nil

	default:
		start, end, ok := findLevelSpan(text, m.level)
		if !ok {
			return m.injectText(text), label, nil
		}
		return text[:start] + m.injectText(text[start:end]) + text[end:], label, nil
	}
}

// chooseTag picks one pool line and splits it into (opening, closing);
// closing is empty for single-tag lines.
func (m *HTMLInjection[L]) chooseTag() (string, string) {
	parts := strings.Fields(m.tags[m.rng.Intn(len(m.tags))])
	if len(parts) >= 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

// injectText tokenizes, places tag pairs and re-joins.
func (m *HTMLInjection[L]) injectText(text string) string {
	return strings.Join(m.injectTokens(strings.Fields(text)), " ")
}

// injectTokens performs one placement round per chosen pair. A zero
// proportion means a single pair; otherwise the pair count follows the
// max(1, floor(tokens*proportion)) rule against the pre-injection length.
func (m *HTMLInjection[L]) injectTokens(tokens []string) []string {
	if m.proportion == 0 {
		opening, closing := m.chooseTag()
		return m.placeTags(tokens, opening, closing)
	}

	rounds := numToInject(len(tokens), m.proportion)
	for i := 0; i < rounds; i++ {
		opening, closing := m.chooseTag()
		tokens = m.placeTags(tokens, opening, closing)
	}
	return tokens
}

// placeTags inserts one (opening, closing) pair into tokens.
//
// Placement contracts, with every index drawn uniformly and inclusively:
//   - Beginning: opening first, closing at [1, new length];
//   - End: opening at [0, length], closing appended last; a pair without
//     a closing tag is appended whole;
//   - Random: opening at [0, length], closing at [opening index + 1,
//     new length], so the pair always brackets at least zero tokens in
//     order.
func (m *HTMLInjection[L]) placeTags(tokens []string, opening, closing string) []string {
	switch m.loc {
	case Beginning:
		out := append([]string{opening}, tokens...)
		if closing != "" {
			out = insertAt(out, intBetween(m.rng, 1, len(out)), closing)
		}
		return out

	case End:
		if closing == "" {
			return append(tokens, opening)
		}
		out := insertAt(tokens, intBetween(m.rng, 0, len(tokens)), opening)
		return append(out, closing)

	case Random:
		posOpen := intBetween(m.rng, 0, len(tokens))
		out := insertAt(tokens, posOpen, opening)
		if closing != "" {
			out = insertAt(out, intBetween(m.rng, posOpen+1, len(out)), closing)
		}
		return out
	}
	return tokens
}

// intBetween returns a uniform integer in [lo, hi], both ends inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
