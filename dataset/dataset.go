// Package dataset - the ordered record collection.
package dataset

import "fmt"

// Dataset is an ordered, immutable collection of records. The zero value
// is an empty dataset. Every operation preserves document order and
// leaves its receiver untouched.
type Dataset[L comparable] struct {
	records []Record[L]
}

// FromRecords builds a dataset from a copy of records; later mutation of
// the argument slice does not affect the dataset.
func FromRecords[L comparable](records []Record[L]) Dataset[L] {
	owned := make([]Record[L], len(records))
	copy(owned, records)
	return Dataset[L]{records: owned}
}

// Len reports the number of records.
func (d Dataset[L]) Len() int { return len(d.records) }

// At returns the record at position i; i must be within [0, Len).
func (d Dataset[L]) At(i int) Record[L] { return d.records[i] }

// Records returns a copy of the underlying records in document order.
func (d Dataset[L]) Records() []Record[L] {
	out := make([]Record[L], len(d.records))
	copy(out, d.records)
	return out
}

// Filter returns the records for which keep is true, in document order.
// A nil keep returns a copy of the whole dataset.
func (d Dataset[L]) Filter(keep func(Record[L]) bool) Dataset[L] {
	if keep == nil {
		return FromRecords(d.records)
	}
	var out []Record[L]
	for _, rec := range d.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return Dataset[L]{records: out}
}

// Map applies fn to every record in document order and collects the
// results into a new dataset. The first error aborts and is wrapped with
// the record position; the receiver is never modified.
//
// Errors:
//   - ErrNilFunc for a nil fn;
//   - the first fn error, wrapped.
func (d Dataset[L]) Map(fn func(Record[L]) (Record[L], error)) (Dataset[L], error) {
	if fn == nil {
		return Dataset[L]{}, ErrNilFunc
	}
	out := make([]Record[L], len(d.records))
	for i, rec := range d.records {
		mapped, err := fn(rec)
		if err != nil {
			return Dataset[L]{}, fmt.Errorf("dataset: map record %d: %w", i, err)
		}
		out[i] = mapped
	}
	return Dataset[L]{records: out}, nil
}

// Concat returns this dataset followed by the others, in argument order.
func (d Dataset[L]) Concat(others ...Dataset[L]) Dataset[L] {
	total := len(d.records)
	for _, o := range others {
		total += len(o.records)
	}
	out := make([]Record[L], 0, total)
	out = append(out, d.records...)
	for _, o := range others {
		out = append(out, o.records...)
	}
	return Dataset[L]{records: out}
}

// CountLabel reports how many records carry the given label.
func (d Dataset[L]) CountLabel(label L) int {
	n := 0
	for _, rec := range d.records {
		if rec.Label == label {
			n++
		}
	}
	return n
}
