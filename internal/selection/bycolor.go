package selection

import "fmt"

// SelectByColor marks every pixel of src whose similarity to ref is non-zero,
// independently of connectivity. ref must already be in the comparison
// format (see PixelFromColor).
//
// Transparency selection is dropped up front when src has no alpha channel or
// when ref is not fully transparent: selecting "transparent" only makes sense
// for a transparent reference.
//
// The returned mask has src's dimensions and belongs to the caller. Invalid
// arguments are rejected before any work is done.
func SelectByColor(src Source, ref Pixel, opts Options) (*Mask, error) {
	if err := validateSource(src); err != nil {
		return nil, fmt.Errorf("select by color: %w", err)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("select by color: %w", err)
	}

	hasAlpha := src.HasAlpha()
	if !hasAlpha || ref[alphaIndex] > 0 {
		opts.SelectTransparent = false
	}

	width, height := src.Width(), src.Height()
	mask := NewMask(width, height)
	row := make([]Pixel, width)

	for y := 0; y < height; y++ {
		src.ReadRow(y, row)
		dst := mask.Row(y)
		for x, px := range row {
			dst[x] = Evaluate(ref, px, opts, hasAlpha)
		}
	}

	Logger().Debug("select by color",
		"width", width,
		"height", height,
		"criterion", opts.Criterion.String(),
		"threshold", opts.Threshold,
		"select_transparent", opts.SelectTransparent)

	return mask, nil
}
