// Package generator - item payloads from newline-delimited files.
package generator

import (
	"fmt"
	"math/rand"
)

// FileItemGenerator emits items loaded from a text file, one candidate
// per non-empty trimmed line. Duplicate lines are distinct pool entries.
//
// With replacement every call is an independent uniform draw. Without
// replacement the pool is walked in a seeded permutation order and a
// draw past the pool size fails with ErrExhausted.
type FileItemGenerator struct {
	rng             *rand.Rand
	items           []string
	withReplacement bool

	// order and cursor drive the without-replacement walk.
	order  []int
	cursor int
}

// NewFileItemGenerator loads the pool from path and validates it.
//
// Errors:
//   - ErrEmptyPool when the file holds no usable lines;
//   - wrapped I/O errors from reading path.
//
// Complexity: O(file size) construction, O(n) extra space without replacement.
func NewFileItemGenerator(path string, opts ItemOptions) (*FileItemGenerator, error) {
	items, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPool, path)
	}

	g := &FileItemGenerator{
		rng:             NewRNG(opts.Seed),
		items:           items,
		withReplacement: opts.WithReplacement,
	}
	if !opts.WithReplacement {
		g.order = Perm(len(items), g.rng)
	}
	return g, nil
}

// Next returns one pool item.
//
// Errors:
//   - ErrExhausted after all unique items have been generated
//     (without replacement only).
//
// Complexity: O(1).
func (g *FileItemGenerator) Next() (string, error) {
	if g.withReplacement {
		return g.items[g.rng.Intn(len(g.items))], nil
	}
	if g.cursor >= len(g.order) {
		return "", ErrExhausted
	}
	item := g.items[g.order[g.cursor]]
	g.cursor++
	return item, nil
}

// Remaining reports how many unique items are still available; -1 means
// the generator draws with replacement and never runs out.
func (g *FileItemGenerator) Remaining() int {
	if g.withReplacement {
		return -1
	}
	return len(g.order) - g.cursor
}
