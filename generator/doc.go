// Package generator produces deterministic injection payloads for
// spurious-correlation experiments: synthetic dates and items drawn
// from newline-delimited pools.
//
// 🚀 What is a generator?
//
//	A generator is any source of injection payloads, one string per call.
//	Modifiers pull payloads from a generator and plant them into text,
//	so the statistical signal a classifier may latch onto is fully under
//	experimental control.
//
// ✨ Key features:
//   - DateGenerator: uniform YYYY-MM-DD dates over a configurable year range
//   - FileItemGenerator: items loaded from a file, one per line
//   - with/without-replacement semantics with a hard exhaustion error
//   - explicit seeding; seed 0 selects a fixed default stream
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spurcorr/generator"
//
//	opts := generator.DefaultDateOptions()
//	opts.Seed = 42
//	gen, err := generator.NewDateGenerator(opts)
//	if err != nil {
//	  // handle ErrYearRange
//	}
//	date, _ := gen.Next() // e.g. "1964-07-03"
//
// Determinism:
//
//	Every generator owns a private *rand.Rand built from its configured
//	seed. Identical seed and configuration reproduce the exact payload
//	sequence; no time-based or global randomness is consulted anywhere.
//
// See examples in example_test.go.
package generator
