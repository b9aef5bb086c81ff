// Package generator - newline-delimited pool loading.
package generator

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines loads a UTF-8 text file as a pool: one entry per line,
// surrounding whitespace trimmed, blank lines skipped. The returned
// slice preserves file order. It is the shared loader for item pools,
// tag pools and highlight pattern files.
//
// Complexity: O(file size).
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("generator: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("generator: read %s: %w", path, err)
	}
	return lines, nil
}
