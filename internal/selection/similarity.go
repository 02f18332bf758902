package selection

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Evaluate returns the degree, in [0,1], to which sample belongs to the same
// region as ref under opts. hasAlpha tells whether the alpha channel of the
// underlying source is meaningful.
//
// Rules, in order:
//  1. Without transparency selection, a fully transparent sample (alpha 0)
//     from a source with alpha is never selected.
//  2. With transparency selection on a source with alpha, the difference is
//     the absolute alpha delta and color is ignored.
//  3. Otherwise the difference depends on opts.Criterion.
//  4. With antialiasing and a positive threshold, aa = 1.5 - diff/threshold:
//     aa <= 0 gives 0, aa < 0.5 gives 2*aa, anything else gives 1.
//  5. Without antialiasing (or a zero threshold), diff <= threshold gives 1,
//     anything else gives 0.
//
// Evaluate has no side effects and assumes opts was already validated.
func Evaluate(ref, sample Pixel, opts Options, hasAlpha bool) float32 {
	if !opts.SelectTransparent && hasAlpha && sample[alphaIndex] == 0 {
		return 0
	}

	var diff float32
	if opts.SelectTransparent && hasAlpha {
		diff = absf(ref[alphaIndex] - sample[alphaIndex])
	} else {
		diff = colorDifference(ref, sample, opts.Criterion)
	}

	if opts.Antialias && opts.Threshold > 0 {
		aa := 1.5 - diff/opts.Threshold
		switch {
		case aa <= 0:
			return 0
		case aa < 0.5:
			return aa * 2
		default:
			return 1
		}
	}

	if diff > opts.Threshold {
		return 0
	}
	return 1
}

// colorDifference computes the raw, criterion-dependent difference between
// two colors. Alpha never participates.
func colorDifference(a, b Pixel, criterion Criterion) float32 {
	switch criterion {
	case Red:
		return absf(a[0] - b[0])
	case Green:
		return absf(a[1] - b[1])
	case Blue:
		return absf(a[2] - b[2])
	case Hue, Saturation, Value:
		return hsvDifference(a, b, criterion)
	}

	var maxDelta float32
	for c := 0; c < alphaIndex; c++ {
		if d := absf(a[c] - b[c]); d > maxDelta {
			maxDelta = d
		}
	}
	return maxDelta
}

// hsvDifference compares two colors in HSV space. Hue distance takes the
// shorter way around the color wheel and is scaled so that opposite hues
// differ by 1. Achromatic colors report hue 0.
func hsvDifference(a, b Pixel, criterion Criterion) float32 {
	h1, s1, v1 := a.colorful().Hsv()
	h2, s2, v2 := b.colorful().Hsv()

	switch criterion {
	case Hue:
		d := math.Abs(h1 - h2)
		if d > 180 {
			d = 360 - d
		}
		return float32(d / 180)
	case Saturation:
		return float32(math.Abs(s1 - s2))
	default:
		return float32(math.Abs(v1 - v2))
	}
}

func (p Pixel) colorful() colorful.Color {
	return colorful.Color{R: float64(p[0]), G: float64(p[1]), B: float64(p[2])}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
