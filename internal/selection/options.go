package selection

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the selection entry points. They are wrapped with
// context, so compare with errors.Is.
var (
	ErrNilSource        = errors.New("selection: source is nil")
	ErrEmptySource      = errors.New("selection: source has no pixels")
	ErrSeedOutOfBounds  = errors.New("selection: seed outside source bounds")
	ErrInvalidThreshold = errors.New("selection: threshold must be within [0,1]")
	ErrUnknownCriterion = errors.New("selection: unknown criterion")
	ErrMaskSize         = errors.New("selection: mask dimensions differ")
)

// Options configures a single selection call.
type Options struct {
	// Criterion picks the channel(s) compared. The zero value is Composite.
	Criterion Criterion

	// Antialias enables the soft edge ramp between threshold and 1.5×threshold.
	Antialias bool

	// Threshold is the tolerance in comparison-format units, within [0,1].
	// A threshold of 0 selects exact matches only.
	Threshold float32

	// SelectTransparent compares alpha instead of color. It only takes effect
	// when the source has alpha and the reference color is fully transparent.
	SelectTransparent bool
}

// validate rejects options that would make the evaluator undefined.
func (o Options) validate() error {
	t := float64(o.Threshold)
	if math.IsNaN(t) || t < 0 || t > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, o.Threshold)
	}
	if !o.Criterion.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownCriterion, o.Criterion)
	}
	return nil
}

// ThresholdFromLevel converts an 8-bit style tolerance (0-255, as shown in
// editor tool options) into comparison-format units.
func ThresholdFromLevel(level float64) float32 {
	if level <= 0 {
		return 0
	}
	if level >= 255 {
		return 1
	}
	return float32(level / 255.0)
}

// validateSource checks the common source preconditions.
func validateSource(src Source) error {
	if src == nil {
		return ErrNilSource
	}
	if src.Width() <= 0 || src.Height() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptySource, src.Width(), src.Height())
	}
	return nil
}
