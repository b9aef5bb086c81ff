// Package modifier - contracts, options and error definitions for text
// injection.
package modifier

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for modifier construction and execution.
var (
	// ErrTokenProportion is returned when a proportion is outside [0, 1].
	ErrTokenProportion = errors.New("modifier: token proportion must be within [0, 1]")

	// ErrBadLocation is returned when an injection location is unknown.
	ErrBadLocation = errors.New("modifier: unknown injection location")

	// ErrBadLevel is returned when an HTML nesting level is below NoLevel.
	ErrBadLevel = errors.New("modifier: invalid nesting level")

	// ErrNilGenerator is returned when a payload source is nil.
	ErrNilGenerator = errors.New("modifier: payload generator is nil")

	// ErrEmptyTagPool is returned when a tag pool has no usable lines.
	ErrEmptyTagPool = errors.New("modifier: tag pool is empty")

	// ErrNilModifier is returned when a composite stage is nil.
	ErrNilModifier = errors.New("modifier: nil modifier")
)

// Modifier transforms one (text, label) pair into a new pair.
//
// Implementations must be deterministic under their configured seed and
// must not retain or mutate the inputs. The label type L is opaque to
// every built-in modifier and is passed through unchanged.
type Modifier[L any] interface {
	Modify(text string, label L) (string, L, error)
}

// Location selects where injected content lands within the token stream.
type Location int

const (
	// Beginning places all payloads before the original tokens.
	Beginning Location = iota

	// Random places each payload at an independent uniform token index.
	Random

	// End places all payloads after the original tokens.
	End
)

// locationNames maps Location values to their canonical config spelling.
var locationNames = map[Location]string{
	Beginning: "beginning",
	Random:    "random",
	End:       "end",
}

// String returns the canonical spelling ("beginning", "random", "end").
func (l Location) String() string {
	if name, ok := locationNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// valid reports whether l is one of the three defined placements.
func (l Location) valid() bool {
	_, ok := locationNames[l]
	return ok
}

// ParseLocation converts a config spelling into a Location.
//
// Errors:
//   - ErrBadLocation for anything but "beginning", "random" or "end".
func ParseLocation(s string) (Location, error) {
	for loc, name := range locationNames {
		if s == name {
			return loc, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadLocation, s)
}

// NoLevel disables nesting-level targeting for HTMLInjection.
const NoLevel = -1

// Options configures ItemInjection.
//
// Fields:
//   - Location        — where payloads land. Default Random.
//   - TokenProportion — fraction of the text's tokens to inject, in [0, 1].
//     The injected count is max(1, floor(tokens*TokenProportion)), so 0
//     still injects a single payload. Default 0.1.
//   - Seed            — RNG seed; 0 selects the fixed default stream.
type Options struct {
	Location        Location
	TokenProportion float64
	Seed            int64
}

// DefaultOptions returns the canonical injection configuration:
// random placement, proportion 0.1, default seed.
func DefaultOptions() Options {
	return Options{
		Location:        Random,
		TokenProportion: 0.1,
		Seed:            0,
	}
}

// validate rejects out-of-range proportions and unknown locations.
func (o Options) validate() error {
	if math.IsNaN(o.TokenProportion) || o.TokenProportion < 0 || o.TokenProportion > 1 {
		return fmt.Errorf("%w: %v", ErrTokenProportion, o.TokenProportion)
	}
	if !o.Location.valid() {
		return fmt.Errorf("%w: %d", ErrBadLocation, int(o.Location))
	}
	return nil
}

// HTMLOptions configures HTMLInjection.
//
// Fields:
//   - Location        — where tags land within the targeted token stream.
//     Default Random.
//   - Level           — nesting level to target. NoLevel operates on the
//     whole text; 0 wraps the entire text in one tag pair; L > 0 targets
//     the first span at depth L, falling back to the whole text when no
//     such span exists. Default NoLevel.
//   - TokenProportion — 0 places a single tag pair per call; a value in
//     (0, 1] places max(1, floor(tokens*TokenProportion)) pairs, each
//     freshly chosen from the pool.
//   - Seed            — RNG seed; 0 selects the fixed default stream.
type HTMLOptions struct {
	Location        Location
	Level           int
	TokenProportion float64
	Seed            int64
}

// DefaultHTMLOptions returns the canonical HTML configuration:
// random placement, no level targeting, one tag pair per call.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Location:        Random,
		Level:           NoLevel,
		TokenProportion: 0,
		Seed:            0,
	}
}

// validate rejects bad proportions, unknown locations and levels below
// NoLevel.
func (o HTMLOptions) validate() error {
	if math.IsNaN(o.TokenProportion) || o.TokenProportion < 0 || o.TokenProportion > 1 {
		return fmt.Errorf("%w: %v", ErrTokenProportion, o.TokenProportion)
	}
	if !o.Location.valid() {
		return fmt.Errorf("%w: %d", ErrBadLocation, int(o.Location))
	}
	if o.Level < NoLevel {
		return fmt.Errorf("%w: %d", ErrBadLevel, o.Level)
	}
	return nil
}
