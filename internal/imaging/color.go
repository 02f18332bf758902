package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// RGBAColor represents an RGBA color with 8-bit straight (non-premultiplied)
// components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSVColor represents a color in HSV (Hue, Saturation, Value) color space,
// the space used by the hue, saturation and value selection criteria.
type HSVColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	V float64 `json:"v"` // Value: 0-100 percent (0=black, 100=full brightness)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex      string    `json:"hex"`       // "#RRGGBB" (no alpha)
	HexAlpha string    `json:"hex_alpha"` // "#RRGGBBAA", accepted by the select-by-color tool
	RGBA     RGBAColor `json:"rgba"`      // RGBA components
	HSV      HSVColor  `json:"hsv"`       // HSV representation

	// Comparison is the color as seen by the selection engine: straight
	// R, G, B, A in [0,1] at the source's native precision.
	Comparison selection.Pixel `json:"comparison"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, relative to the image's top-left corner).
//   - y: Y coordinate (0-based, relative to the image's top-left corner).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// 8-bit components are straight alpha, so a half-transparent red reports
// R=255, A=128. They are derived from Comparison, so HexAlpha passed back to
// ParseColor reproduces Comparison exactly for 8-bit images. Comparison
// keeps 16-bit precision for 16-bit images.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	px := selection.PixelFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
	n := color.NRGBA{to8(px[0]), to8(px[1]), to8(px[2]), to8(px[3])}

	return &ColorResult{
		Hex:        fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B),
		HexAlpha:   fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A),
		RGBA:       RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		HSV:        pixelToHSV(px),
		Comparison: px,
	}, nil
}

// pixelToHSV converts a comparison-format pixel to HSV with go-colorful,
// rounded to two decimals.
func pixelToHSV(px selection.Pixel) HSVColor {
	h, s, v := colorful.Color{R: float64(px[0]), G: float64(px[1]), B: float64(px[2])}.Hsv()
	return HSVColor{
		H: round2(h),
		S: round2(s * 100),
		V: round2(v * 100),
	}
}

func to8(v float32) uint8 {
	return uint8(v*0xff + 0.5)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ParseColor parses a hex color string: "#RGB", "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional. Colors without an alpha byte are opaque.
func ParseColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}

	alpha := uint8(255)
	switch len(s) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		s = s[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length in %q", hex)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
