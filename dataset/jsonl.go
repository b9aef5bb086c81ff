// Package dataset - JSONL interchange.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single JSONL line; real-world reviews run long,
// HTML-injected ones longer still.
const maxLineBytes = 4 << 20

// ReadJSONL decodes one {"text", "label"} object per line. Blank lines
// are skipped; a malformed line fails the whole read with its line
// number. Document order is file order.
func ReadJSONL[L comparable](r io.Reader) (Dataset[L], error) {
	var records []Record[L]

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var rec Record[L]
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return Dataset[L]{}, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return Dataset[L]{}, fmt.Errorf("dataset: read: %w", err)
	}
	return Dataset[L]{records: records}, nil
}

// WriteJSONL encodes the dataset one object per line, in document order.
// HTML is written verbatim, not escaped; injected tags must survive a
// round trip byte for byte.
func WriteJSONL[L comparable](w io.Writer, ds Dataset[L]) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, rec := range ds.records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("dataset: write record %d: %w", i, err)
		}
	}
	return nil
}

// LoadJSONL reads a dataset from a file.
func LoadJSONL[L comparable](path string) (Dataset[L], error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset[L]{}, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := ReadJSONL[L](f)
	if err != nil {
		return Dataset[L]{}, fmt.Errorf("dataset: load %s: %w", path, err)
	}
	return ds, nil
}

// SaveJSONL writes a dataset to a file, replacing any previous content.
func SaveJSONL[L comparable](path string, ds Dataset[L]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err = WriteJSONL(w, ds); err != nil {
		f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("dataset: flush %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("dataset: close %s: %w", path, err)
	}
	return nil
}
