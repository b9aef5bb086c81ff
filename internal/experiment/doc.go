// Package experiment turns a YAML config into a full injection run.
//
// A config names the input and output JSONL files, the target label, the
// share of matching records to poison and an ordered list of modifier
// stages. Load parses and validates it, Config.Build assembles the
// modifier pipeline and Runner.Run drives the whole thing: load, poison,
// save, optional preview, one structured log line per phase.
//
// Stage seeds left at zero are derived from the run seed, one stream per
// stage, so a single seed in the file reproduces the entire run.
package experiment
