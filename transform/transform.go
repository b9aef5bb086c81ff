// Package transform - the dataset-level injection pass.
package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spurcorr/dataset"
	"github.com/katalvlaran/spurcorr/generator"
	"github.com/katalvlaran/spurcorr/modifier"
)

// Spurious correlates the modifier's payload with target: it picks a
// textProportion share of the records labeled target, applies m to each
// picked record and returns a new dataset with every record in its
// original position.
//
// The subset is drawn from a seeded permutation of the matching records,
// so equal seeds pick equal subsets. The input dataset is never mutated.
// A modifier failure aborts the pass with the failing record's index.
//
// Complexity: O(n) over the dataset plus the modifier's cost per picked
// record.
func Spurious[L comparable](target L, ds dataset.Dataset[L], m modifier.Modifier[L], textProportion float64, seed int64) (dataset.Dataset[L], error) {
	if math.IsNaN(textProportion) || textProportion < 0 || textProportion > 1 {
		return dataset.Dataset[L]{}, fmt.Errorf("%w: %v", ErrTextProportion, textProportion)
	}
	if m == nil {
		return dataset.Dataset[L]{}, ErrNilModifier
	}

	matching := make([]int, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		if ds.At(i).Label == target {
			matching = append(matching, i)
		}
	}

	k := SelectionCount(len(matching), textProportion)
	if k == 0 {
		return ds, nil
	}

	order := generator.Perm(len(matching), generator.NewRNG(seed))
	picked := make(map[int]struct{}, k)
	for _, j := range order[:k] {
		picked[matching[j]] = struct{}{}
	}

	out := ds.Records()
	for i := range out {
		if _, ok := picked[i]; !ok {
			continue
		}
		text, label, err := m.Modify(out[i].Text, out[i].Label)
		if err != nil {
			return dataset.Dataset[L]{}, fmt.Errorf("transform: record %d: %w", i, err)
		}
		out[i].Text = text
		out[i].Label = label
	}
	return dataset.FromRecords(out), nil
}

// SelectionCount reports how many of matching records a proportion
// selects. Halves round to even: 0.5 of 5 selects 2, 0.5 of 7 selects 4.
func SelectionCount(matching int, textProportion float64) int {
	return int(math.RoundToEven(float64(matching) * textProportion))
}
