// Package highlight - payload finders.
package highlight

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/spurcorr/generator"
)

// Func reports the payload substrings present in text.
type Func func(text string) []string

// datePattern is the exact shape the date generator emits.
var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Dates returns every YYYY-MM-DD occurrence in order of appearance.
func Dates(text string) []string {
	return datePattern.FindAllString(text, -1)
}

// FromList returns a finder that reports, in pool order, each pattern
// contained in the text. A pattern is reported once no matter how many
// times it occurs.
func FromList(patterns []string) Func {
	pool := make([]string, len(patterns))
	copy(pool, patterns)

	return func(text string) []string {
		var matches []string
		for _, p := range pool {
			if p != "" && strings.Contains(text, p) {
				matches = append(matches, p)
			}
		}
		return matches
	}
}

// FromFile builds a FromList finder from one pattern per line. Blank
// lines are skipped.
func FromFile(path string) (Func, error) {
	lines, err := generator.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return FromList(lines), nil
}

// HTMLTags returns a finder over a tag pool in the injection format, one
// "<tag> </tag>" pair (or a lone "<tag>") per line. Every whitespace
// field of every line becomes a pattern, so opening and closing tags are
// reported independently.
func HTMLTags(lines []string) Func {
	var tags []string
	for _, line := range lines {
		tags = append(tags, strings.Fields(line)...)
	}
	return FromList(tags)
}

// HTMLTagsFromFile reads the tag pool from a file. Blank lines are
// skipped.
func HTMLTagsFromFile(path string) (Func, error) {
	lines, err := generator.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return HTMLTags(lines), nil
}
