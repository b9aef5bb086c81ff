package main

import (
	"fmt"

	"github.com/katalvlaran/spurcorr/dataset"
	"github.com/katalvlaran/spurcorr/highlight"
	"github.com/katalvlaran/spurcorr/render"
	"github.com/spf13/cobra"
)

var (
	previewInput     string
	previewLimit     int
	previewLabel     string
	previewHighlight string
	previewPatterns  string
	previewTags      string
)

// previewCmd pretty-prints records with their payloads highlighted.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Pretty-print records of a JSONL dataset",
	Long: `Prints the first records of a dataset, optionally filtered to one label,
with planted payloads colored green.

Example:
  spurcorr preview --input poisoned.jsonl --limit 3 --label 1 --highlight dates
  spurcorr preview --input poisoned.jsonl --tags data/html_tags.txt`,
	RunE: previewDataset,
}

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "JSONL dataset to preview (required)")
	previewCmd.Flags().IntVarP(&previewLimit, "limit", "n", render.DefaultLimit, "Maximum records to print")
	previewCmd.Flags().StringVarP(&previewLabel, "label", "l", "", "Only print records with this label")
	previewCmd.Flags().StringVar(&previewHighlight, "highlight", "", `Built-in highlighter ("dates")`)
	previewCmd.Flags().StringVar(&previewPatterns, "patterns", "", "Highlight patterns read from this file")
	previewCmd.Flags().StringVar(&previewTags, "tags", "", "Highlight HTML tags read from this pool file")
	previewCmd.MarkFlagsMutuallyExclusive("highlight", "patterns", "tags")
	_ = previewCmd.MarkFlagRequired("input")
}

func previewDataset(cmd *cobra.Command, args []string) error {
	ds, err := dataset.LoadJSONL[dataset.Label](previewInput)
	if err != nil {
		return err
	}

	find, err := previewFinder()
	if err != nil {
		return err
	}

	opts := render.Options[dataset.Label]{Limit: previewLimit, Highlight: find}
	if cmd.Flags().Changed("label") {
		target := dataset.Label(previewLabel)
		opts.Target = &target
	}
	return render.Dataset(cmd.OutOrStdout(), ds, opts)
}

// previewFinder maps the highlight flags onto a payload finder.
func previewFinder() (highlight.Func, error) {
	switch {
	case previewPatterns != "":
		return highlight.FromFile(previewPatterns)
	case previewTags != "":
		return highlight.HTMLTagsFromFile(previewTags)
	case previewHighlight == "dates":
		return highlight.Dates, nil
	case previewHighlight != "":
		return nil, fmt.Errorf("unknown highlighter %q, only \"dates\" is built in", previewHighlight)
	}
	return nil, nil
}
