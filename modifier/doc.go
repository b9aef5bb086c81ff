// Package modifier plants controlled spurious signals into labeled text:
// injected tokens, HTML tag pairs, and ordered compositions of both.
//
// 🚀 What is a modifier?
//
//	A modifier transforms one (text, label) pair into a new pair. The
//	built-in modifiers never touch the label; they exist to add content
//	a model could wrongly correlate with the label, which the dataset
//	driver plants only into records of a chosen class.
//
// ✨ Key features:
//   - ItemInjection: payloads from lists, files or any Generator, placed
//     at the beginning, the end, or uniformly random token positions
//   - HTMLInjection: tag pairs placed around or inside text, with
//     optional nesting-level targeting via a shallow tag scan
//   - Composite: sequential chains; the empty chain is the identity
//   - construction-time validation with sentinel errors
//   - explicit seeding; identical seed and configuration reproduce output
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spurcorr/modifier"
//
//	opts := modifier.DefaultOptions()
//	opts.Location = modifier.End
//	opts.TokenProportion = 0.25
//	opts.Seed = 42
//	inject, err := modifier.ItemInjectionFromList[string]([]string{"corp"}, opts)
//	if err != nil {
//	  // handle ErrTokenProportion, ErrBadLocation, ...
//	}
//	text, label, err := inject.Modify("quarterly report attached", "spam")
//
// Tokenization is whitespace splitting, nothing smarter: the package
// deliberately has no linguistic knowledge, and its HTML handling is a
// shallow regex tag scan rather than a parser.
//
// See examples in example_test.go.
package modifier
