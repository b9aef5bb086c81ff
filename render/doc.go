// Package render pretty-prints poisoned datasets for eyeball checks.
//
// The printers are deliberately small: Text writes one document with its
// planted payloads colored, Dataset writes a numbered preview of the
// first few records. Color comes from the terminal's ANSI palette via
// lipgloss, so piping the output to a file degrades to plain text.
//
// The payload finder is any highlight.Func; pass nil to skip coloring.
package render
