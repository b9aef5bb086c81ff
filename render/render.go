// Package render - preview printers.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/spurcorr/dataset"
	"github.com/katalvlaran/spurcorr/highlight"
)

// DefaultLimit caps a dataset preview when Options.Limit is unset.
const DefaultLimit = 5

// separatorWidth matches the classic 40-dash record divider.
const separatorWidth = 40

var (
	// PayloadColor is the ANSI green slot, so the terminal theme picks
	// the exact shade.
	PayloadColor = lipgloss.Color("2")

	payloadStyle = lipgloss.NewStyle().Foreground(PayloadColor)
	separator    = strings.Repeat("-", separatorWidth)
)

// Options controls a Dataset preview.
//
// Fields:
//   - Limit     - maximum records to print; non-positive means DefaultLimit.
//   - Target    - when set, only records with this label are printed.
//   - Highlight - payload finder used to color matches; nil prints plain.
type Options[L comparable] struct {
	Limit     int
	Target    *L
	Highlight highlight.Func
}

// DefaultOptions returns a five-record preview with no filter and no
// highlighting.
func DefaultOptions[L comparable]() Options[L] {
	return Options[L]{Limit: DefaultLimit}
}

// Text writes one document with every payload occurrence colored.
func Text(w io.Writer, text string, find highlight.Func) error {
	_, err := io.WriteString(w, colorize(text, find)+"\n")
	return err
}

// Dataset writes up to Limit records, each as a numbered block:
//
//	Text 1 (Label=pos)
//	<document with colored payloads>
//	----------------------------------------
//
// Numbering counts printed records, so a filtered preview still reads
// 1..n.
func Dataset[L comparable](w io.Writer, ds dataset.Dataset[L], opts Options[L]) error {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	printed := 0
	for i := 0; i < ds.Len() && printed < limit; i++ {
		rec := ds.At(i)
		if opts.Target != nil && rec.Label != *opts.Target {
			continue
		}
		printed++
		_, err := fmt.Fprintf(w, "Text %d (Label=%v)\n%s\n%s\n",
			printed, rec.Label, colorize(rec.Text, opts.Highlight), separator)
		if err != nil {
			return err
		}
	}
	return nil
}

// colorize wraps each distinct match once; duplicate finds would
// otherwise re-wrap the escape sequences themselves.
func colorize(text string, find highlight.Func) string {
	if find == nil {
		return text
	}

	seen := make(map[string]struct{})
	for _, m := range find(text) {
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		text = strings.ReplaceAll(text, m, payloadStyle.Render(m))
	}
	return text
}
