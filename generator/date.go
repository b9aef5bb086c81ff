// Package generator - synthetic date payloads.
package generator

import (
	"fmt"
	"math/rand"
)

// datesPerYear is the size of one year of the drawable space: 12 months
// of 28 days each, so every drawn triple is a valid calendar date.
const datesPerYear = 12 * 28

// DateGenerator emits uniformly random dates formatted as YYYY-MM-DD.
// Days are capped at 28 so no (year, month, day) triple is ever invalid.
//
// Without replacement the generator guarantees that no emitted triple
// repeats. Draws are rejected against a seen set; the rejection sequence
// itself is driven by the owned RNG, so the full emission order is a pure
// function of the seed.
type DateGenerator struct {
	rng             *rand.Rand
	yearMin         int
	yearMax         int
	withReplacement bool

	// seen holds encoded triples already emitted (without replacement only).
	seen  map[int]struct{}
	space int
}

// NewDateGenerator validates opts and returns a ready generator.
//
// Errors:
//   - ErrYearRange when YearMin < 0 or YearMin > YearMax.
//
// Complexity: O(1).
func NewDateGenerator(opts DateOptions) (*DateGenerator, error) {
	if opts.YearMin < 0 || opts.YearMin > opts.YearMax {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrYearRange, opts.YearMin, opts.YearMax)
	}

	g := &DateGenerator{
		rng:             NewRNG(opts.Seed),
		yearMin:         opts.YearMin,
		yearMax:         opts.YearMax,
		withReplacement: opts.WithReplacement,
		space:           (opts.YearMax - opts.YearMin + 1) * datesPerYear,
	}
	if !opts.WithReplacement {
		g.seen = make(map[int]struct{})
	}
	return g, nil
}

// Next returns one date string.
//
// Errors:
//   - ErrExhausted once every triple of the finite space has been emitted
//     (without replacement only).
//
// Complexity: O(1) amortized far from exhaustion.
func (g *DateGenerator) Next() (string, error) {
	if !g.withReplacement && len(g.seen) == g.space {
		return "", fmt.Errorf("%w: date space of %d is spent", ErrExhausted, g.space)
	}

	for {
		year := g.yearMin + g.rng.Intn(g.yearMax-g.yearMin+1)
		month := 1 + g.rng.Intn(12)
		day := 1 + g.rng.Intn(28)

		if !g.withReplacement {
			key := ((year-g.yearMin)*12+(month-1))*28 + (day - 1)
			if _, dup := g.seen[key]; dup {
				continue
			}
			g.seen[key] = struct{}{}
		}
		return fmt.Sprintf("%d-%02d-%02d", year, month, day), nil
	}
}
