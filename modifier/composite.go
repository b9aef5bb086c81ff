// Package modifier - sequential modifier chains.
package modifier

import "fmt"

// Composite applies an ordered chain of modifiers. Text and label thread
// through every stage; the empty chain is the identity. No stage is ever
// skipped.
type Composite[L any] struct {
	stages []Modifier[L]
}

// NewComposite builds a chain from the given stages, applied in order.
// Stages must be non-nil; a nil stage surfaces as ErrNilModifier when
// Modify reaches it.
func NewComposite[L any](stages ...Modifier[L]) *Composite[L] {
	chain := make([]Modifier[L], len(stages))
	copy(chain, stages)
	return &Composite[L]{stages: chain}
}

// Len reports the number of stages.
func (c *Composite[L]) Len() int { return len(c.stages) }

// Modify implements Modifier.
//
// Errors:
//   - ErrNilModifier for a nil stage;
//   - the first stage error, wrapped with the stage index; later stages
//     do not run.
func (c *Composite[L]) Modify(text string, label L) (string, L, error) {
	var err error
	for i, stage := range c.stages {
		if stage == nil {
			return "", label, fmt.Errorf("%w: stage %d", ErrNilModifier, i)
		}
		if text, label, err = stage.Modify(text, label); err != nil {
			return "", label, fmt.Errorf("modifier: stage %d: %w", i, err)
		}
	}
	return text, label, nil
}
