// Package generator - contracts, options and error definitions for
// deterministic payload generation.
package generator

import "errors"

// Sentinel errors for generator construction and draws.
var (
	// ErrYearRange is returned when a date range is inverted or negative.
	ErrYearRange = errors.New("generator: invalid year range")

	// ErrEmptyPool is returned when an item pool contains no usable lines.
	ErrEmptyPool = errors.New("generator: item pool is empty")

	// ErrExhausted is returned by Next once a without-replacement
	// generator has emitted every element of its finite space.
	ErrExhausted = errors.New("generator: all unique items have been generated")
)

// Generator yields successive injection payloads.
//
// Implementations must be deterministic under their configured seed:
// the n-th call returns the same payload for the same seed and
// configuration, regardless of platform. Next reports ErrExhausted
// (possibly wrapped) when a finite without-replacement space runs out.
type Generator interface {
	Next() (string, error)
}

// Func adapts a plain function to the Generator interface.
type Func func() (string, error)

// Next calls f.
func (f Func) Next() (string, error) { return f() }

// DateOptions configures a DateGenerator.
//
// Fields:
//   - YearMin, YearMax — inclusive year bounds. Defaults 1900 and 2100.
//   - WithReplacement  — when false, no emitted (year, month, day) triple
//     repeats; the space holds years*12*28 dates, then draws fail with
//     ErrExhausted.
//   - Seed — RNG seed; 0 selects the fixed default stream.
type DateOptions struct {
	YearMin         int
	YearMax         int
	WithReplacement bool
	Seed            int64
}

// DefaultDateOptions returns the canonical date configuration:
// years 1900..2100, replacement enabled, default seed.
func DefaultDateOptions() DateOptions {
	return DateOptions{
		YearMin:         1900,
		YearMax:         2100,
		WithReplacement: true,
		Seed:            0,
	}
}

// ItemOptions configures a FileItemGenerator.
//
// Fields:
//   - WithReplacement — when false, items are served as a seeded
//     permutation of the pool and draws past the pool size fail with
//     ErrExhausted.
//   - Seed — RNG seed; 0 selects the fixed default stream.
type ItemOptions struct {
	WithReplacement bool
	Seed            int64
}

// DefaultItemOptions returns the canonical item configuration:
// replacement enabled, default seed.
func DefaultItemOptions() ItemOptions {
	return ItemOptions{
		WithReplacement: true,
		Seed:            0,
	}
}
