package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// OverlayResult contains the image with the selection highlighted.
type OverlayResult struct {
	ImageResult

	// Scale is the factor applied to fit MaxSize (1 when not downscaled).
	Scale float64         `json:"scale"`
	Stats selection.Stats `json:"stats"`
}

// defaultTint is used when the tint string cannot be parsed.
var defaultTint = color.NRGBA{255, 0, 0, 128}

// SelectionOverlay tints the selected area of img, quick-mask style. Each
// pixel is blended towards the tint color by the tint's alpha times the mask
// value. With outline set, the selection boundary (cells at or above 0.5 with
// a 4-neighbor below 0.5) is drawn in the opaque tint color.
//
// If maxSize > 0 and the image is larger in either dimension, the preview is
// downscaled to fit.
func SelectionOverlay(img image.Image, mask *selection.Mask, tintHex string, outline bool, maxSize int) (*OverlayResult, error) {
	if err := checkMaskSize(img, mask); err != nil {
		return nil, err
	}

	tint, err := ParseColor(tintHex)
	if err != nil {
		tint = defaultTint
	}

	result := imaging.Clone(img)
	tintA := float32(tint.A) / 0xff
	tr, tg, tb := float32(tint.R), float32(tint.G), float32(tint.B)

	for y := 0; y < mask.Height(); y++ {
		for x, v := range mask.Row(y) {
			if v <= 0 {
				continue
			}
			i := result.PixOffset(x, y)
			p := result.Pix[i : i+4 : i+4]
			w := v * tintA
			p[0] = blend(p[0], tr, w)
			p[1] = blend(p[1], tg, w)
			p[2] = blend(p[2], tb, w)
			if a := uint8(w*0xff + 0.5); p[3] < a {
				p[3] = a
			}
		}
	}

	if outline {
		edge := color.NRGBA{tint.R, tint.G, tint.B, 255}
		for y := 0; y < mask.Height(); y++ {
			for x := 0; x < mask.Width(); x++ {
				if isBoundary(mask, x, y) {
					result.SetNRGBA(x, y, edge)
				}
			}
		}
	}

	var out image.Image = result
	scale := 1.0
	b := result.Bounds()
	if maxSize > 0 && (b.Dx() > maxSize || b.Dy() > maxSize) {
		scale = float64(maxSize) / float64(max(b.Dx(), b.Dy()))
		w := max(1, int(float64(b.Dx())*scale))
		h := max(1, int(float64(b.Dy())*scale))
		scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), result, b, draw.Src, nil)
		out = scaled
	}

	res, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &OverlayResult{ImageResult: *res, Scale: scale, Stats: mask.Stats()}, nil
}

func blend(c uint8, t, w float32) uint8 {
	return uint8(float32(c)*(1-w) + t*w + 0.5)
}

// isBoundary reports whether (x, y) is inside the selection and touches a
// cell outside it. The image border does not count as outside.
func isBoundary(mask *selection.Mask, x, y int) bool {
	const half = 0.5
	if mask.At(x, y) < half {
		return false
	}
	w, h := mask.Width(), mask.Height()
	return (x > 0 && mask.At(x-1, y) < half) ||
		(x < w-1 && mask.At(x+1, y) < half) ||
		(y > 0 && mask.At(x, y-1) < half) ||
		(y < h-1 && mask.At(x, y+1) < half)
}
