// Package dataset holds labeled text records and the order-preserving
// operations the injection driver and the CLI are built on.
//
// A Dataset is an immutable ordered view over Record values: Filter, Map
// and Concat always return new datasets and never disturb document
// order, so position i of a derived dataset still corresponds to
// position i of its source wherever lengths match. That stability is
// what makes before/after comparisons of injected corpora trivial.
//
// JSONL is the interchange format: one {"text": ..., "label": ...}
// object per line. The Label type accepts JSON strings, numbers,
// booleans and null, comparing and re-encoding them by canonical scalar
// form, so corpora exported from different toolchains load without
// preprocessing.
//
// The package performs no injection itself; it is the surface the
// transform driver consumes.
package dataset
