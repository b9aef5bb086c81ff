// Package transform plants spurious correlations across labeled datasets.
//
// Overview:
//
//   - A corpus-level pass: it selects a seeded share of the records
//     carrying one target label and runs a modifier.Modifier over just
//     that subset.
//   - Non-matching records and unselected matches pass through untouched
//     and keep their original positions, so the poisoned corpus stays
//     row-aligned with the clean one.
//
// Selection semantics:
//
//   - The share is textProportion in [0, 1], applied to the count of
//     matching records, with halves rounded to even (0.5 of 5 matches
//     selects 2 records; 0.5 of 7 selects 4).
//   - The subset is drawn from a seeded permutation of the matching
//     records. Equal (dataset, target, textProportion, seed) inputs
//     select the identical subset on every run.
//
// Errors:
//
//   - ErrTextProportion: textProportion outside [0, 1].
//   - ErrNilModifier: no modifier supplied.
//   - A modifier failure aborts the whole pass and reports the index of
//     the failing record.
//
// Quick start:
//
//	inject, err := modifier.ItemInjectionFromList[string](
//		[]string{"1970-01-01"}, modifier.DefaultOptions())
//	if err != nil {
//		// handle
//	}
//	poisoned, err := transform.Spurious("pos", ds, inject, 0.3, 42)
//
// See package dataset for JSONL loading and package modifier for the
// injection strategies themselves.
package transform
