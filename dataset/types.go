// Package dataset - record and label definitions.
package dataset

import (
	"encoding/json"
	"errors"
)

// ErrNilFunc is returned when a transformation callback is nil.
var ErrNilFunc = errors.New("dataset: nil function")

// Record is one labeled document. The label type L is opaque to the
// engine and only ever compared for equality.
type Record[L comparable] struct {
	Text  string `json:"text"`
	Label L      `json:"label"`
}

// Label is a flexible JSONL label scalar. It decodes JSON strings by
// value and keeps the literal text of numbers, booleans and null, so
// {"label": 1} and {"label": "pos"} both load into a comparable string
// form. Marshalling re-encodes bare when the canonical form is itself a
// valid non-string JSON scalar, quoted otherwise; {"label": 1}
// round-trips as 1, {"label": "pos"} as "pos".
type Label string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Label) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Label(s)
		return nil
	}
	*l = Label(b)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Label) MarshalJSON() ([]byte, error) {
	raw := []byte(l)
	if len(raw) > 0 && raw[0] != '"' && raw[0] != '[' && raw[0] != '{' && json.Valid(raw) {
		return raw, nil
	}
	return json.Marshal(string(l))
}

// String returns the canonical form.
func (l Label) String() string { return string(l) }
