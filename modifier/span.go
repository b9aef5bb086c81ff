// Package modifier - shallow nesting-level scan for HTML-ish text.
package modifier

import (
	"regexp"
	"strings"
)

// tagPattern matches one tag: optional slash, a letter-led name, then
// anything up to the closing bracket. Attributes are swallowed by the
// [^>]* tail. This is a tag matcher, not an HTML parser.
var tagPattern = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)[^>]*>`)

// findLevelSpan locates the first content region at the requested
// nesting depth. Tags are scanned left to right; an opening tag pushes
// the offset just past itself, a closing tag pops. When a pop returns
// the stack to depth level-1, the span between the popped offset and
// the closing tag's start is the target.
//
// Closing tags are matched by position only, never by name; mismatched
// markup therefore still yields a deterministic span. Scanning stops at
// the first hit.
//
// Complexity: O(len(text)).
func findLevelSpan(text string, level int) (start, end int, ok bool) {
	var stack []int
	for _, loc := range tagPattern.FindAllStringIndex(text, -1) {
		if !strings.HasPrefix(text[loc[0]:loc[1]], "</") {
			stack = append(stack, loc[1])
			continue
		}
		if len(stack) == 0 {
			continue
		}
		contentStart := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) == level-1 {
			return contentStart, loc[0], true
		}
	}
	return 0, 0, false
}
