// Package transform - sentinel errors.
package transform

import "errors"

var (
	// ErrTextProportion is returned when the share of matching records to
	// modify falls outside [0, 1].
	ErrTextProportion = errors.New("transform: text proportion must be within [0, 1]")

	// ErrNilModifier is returned when no modifier is supplied.
	ErrNilModifier = errors.New("transform: nil modifier")
)
