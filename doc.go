// Package spurcorr plants controlled spurious correlations in labeled
// text datasets — seeded payload injection, dataset-level targeting and
// tooling to inspect the damage.
//
// 🚀 What is spurcorr?
//
//	A deterministic toolkit for dataset-poisoning experiments:
//		• Payload generators: random dates, pools from files, custom functions
//		• Modifiers: token injection, HTML tag injection (nesting-aware), pipelines
//		• Transform: poison a seeded share of one label class, order-preserving
//		• Dataset: JSONL corpora with flexible scalar labels
//		• Highlight & render: find planted payloads and preview them in color
//		• Experiments: YAML-configured end-to-end runs via the spurcorr CLI
//
// ✨ Why spurcorr?
//
//   - Reproducible – every random draw is seeded; one seed replays a whole run
//   - Surgical – only the targeted label class changes, row order never does
//   - Honest datasets – labels stay JSONL scalars, HTML survives verbatim
//   - Composable – stack modifiers, swap payload sources, reuse generators
//
// The packages, bottom up:
//
//	generator/           — payload sources (dates, file pools) + seeded RNG helpers
//	modifier/            — per-record text mutations and pipelines
//	dataset/             — records, immutable datasets, JSONL I/O
//	transform/           — the corpus-level poisoning pass
//	highlight/           — payload finders for inspection
//	render/              — colored previews of poisoned records
//	internal/experiment/ — YAML configs, pipeline assembly, run driver
//	cmd/spurcorr/        — the CLI (run, preview)
//
// Quick taste:
//
//	inject, _ := modifier.ItemInjectionFromList[string](
//		[]string{"1970-01-01"}, modifier.DefaultOptions())
//	poisoned, _ := transform.Spurious("pos", ds, inject, 0.3, 42)
//
//	go get github.com/katalvlaran/spurcorr
package spurcorr
