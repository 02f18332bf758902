package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// ExtractResult contains the selected pixels cut out of an image.
type ExtractResult struct {
	ImageResult

	// OffsetX and OffsetY locate the cut-out's top-left corner in the source
	// image, before scaling.
	OffsetX int `json:"offset_x"`
	OffsetY int `json:"offset_y"`

	Stats selection.Stats `json:"stats"`
}

// ExtractSelection copies the selected pixels of img into a new image,
// cropped to the selection's bounding box. Each pixel's alpha is multiplied
// by its mask value, so antialiased and feathered edges stay soft.
//
// A scale other than 1 (and greater than 0) resizes the cut-out with the
// Lanczos filter.
func ExtractSelection(img image.Image, mask *selection.Mask, scale float64) (*ExtractResult, error) {
	if err := checkMaskSize(img, mask); err != nil {
		return nil, err
	}
	st := mask.Stats()
	if st.Empty {
		return nil, fmt.Errorf("selection is empty")
	}

	cut := imaging.Crop(imaging.Clone(img), st.Bounds)
	for y := 0; y < st.Bounds.Dy(); y++ {
		row := mask.Row(y + st.Bounds.Min.Y)[st.Bounds.Min.X:st.Bounds.Max.X]
		for x, v := range row {
			i := cut.PixOffset(x, y) + 3
			cut.Pix[i] = uint8(float32(cut.Pix[i])*v + 0.5)
		}
	}

	var out image.Image = cut
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cut.Bounds().Dx()) * scale)
		newHeight := int(float64(cut.Bounds().Dy()) * scale)
		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}
		out = imaging.Resize(cut, newWidth, newHeight, imaging.Lanczos)
	}

	res, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{
		ImageResult: *res,
		OffsetX:     st.Bounds.Min.X,
		OffsetY:     st.Bounds.Min.Y,
		Stats:       st,
	}, nil
}

// checkMaskSize verifies that mask covers img exactly.
func checkMaskSize(img image.Image, mask *selection.Mask) error {
	if mask == nil {
		return fmt.Errorf("no selection")
	}
	b := img.Bounds()
	if b.Dx() != mask.Width() || b.Dy() != mask.Height() {
		return fmt.Errorf("%w: image %dx%d, mask %dx%d",
			selection.ErrMaskSize, b.Dx(), b.Dy(), mask.Width(), mask.Height())
	}
	return nil
}
