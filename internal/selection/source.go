package selection

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// alphaIndex is the position of the alpha channel within a Pixel.
const alphaIndex = 3

// Pixel is one sample in the comparison format: straight (non-premultiplied)
// red, green, blue and alpha, each in [0,1].
type Pixel [4]float32

// Alpha returns the alpha component of p.
func (p Pixel) Alpha() float32 { return p[alphaIndex] }

// PixelFromColor converts any color.Color into the comparison format.
//
// The result equals what NewImageSource yields for an image holding c:
// 16-bit colors keep 16-bit precision, every other color is reduced to
// 8-bit straight alpha first. A translucent color therefore matches itself
// at threshold 0.
func PixelFromColor(c color.Color) Pixel {
	switch c := c.(type) {
	case color.NRGBA:
		return pixel8(c.R, c.G, c.B, c.A)
	case color.RGBA:
		return pixel8(unpremultiply8(c))
	case color.NRGBA64:
		return pixel16(c)
	case color.RGBA64, color.Gray16, color.Alpha16:
		return pixel16(color.NRGBA64Model.Convert(c).(color.NRGBA64))
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return pixel8(n.R, n.G, n.B, n.A)
}

func pixel8(r, g, b, a uint8) Pixel {
	return Pixel{float32(r) / 0xff, float32(g) / 0xff, float32(b) / 0xff, float32(a) / 0xff}
}

func pixel16(n color.NRGBA64) Pixel {
	return Pixel{
		float32(n.R) / 0xffff,
		float32(n.G) / 0xffff,
		float32(n.B) / 0xffff,
		float32(n.A) / 0xffff,
	}
}

// unpremultiply8 converts premultiplied 8-bit RGBA to straight alpha with
// the same truncating arithmetic imaging.Clone applies to *image.RGBA.
func unpremultiply8(c color.RGBA) (r, g, b, a uint8) {
	switch c.A {
	case 0:
		return 0, 0, 0, 0
	case 0xff:
		return c.R, c.G, c.B, c.A
	}
	a16 := uint16(c.A)
	return uint8(uint16(c.R) * 0xff / a16),
		uint8(uint16(c.G) * 0xff / a16),
		uint8(uint16(c.B) * 0xff / a16),
		c.A
}

// Source is a read-only grid of pixels delivered in the comparison format.
//
// Coordinates are 0-based: x in [0, Width()), y in [0, Height()). Callers
// guarantee coordinates are in range; implementations need not check.
type Source interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// HasAlpha reports whether the alpha channel carries information. Sources
	// without alpha must report alpha 1 for every pixel.
	HasAlpha() bool

	// Sample returns the pixel at (x, y).
	Sample(x, y int) Pixel

	// ReadRow fills dst[:Width()] with row y. dst must hold at least Width()
	// pixels.
	ReadRow(y int, dst []Pixel)
}

// NewImageSource adapts img to a Source.
//
// Images with 16 bits per channel keep their precision; every other image
// type (8-bit, paletted, YCbCr, CMYK, gray) is normalized to 8-bit NRGBA.
// Coordinates of the returned Source are relative to img.Bounds().Min.
//
// The pixels are copied, so later changes to img are not observed.
func NewImageSource(img image.Image) Source {
	hasAlpha := hasAlphaChannel(img)

	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16, *image.Alpha16:
		b := img.Bounds()
		dst := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return &nrgba64Source{img: dst, hasAlpha: hasAlpha}
	}

	return &nrgbaSource{img: imaging.Clone(img), hasAlpha: hasAlpha}
}

// hasAlphaChannel decides from the concrete image type whether alpha is part
// of the stored data. Paletted images count as having alpha because palette
// entries may be transparent.
func hasAlphaChannel(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64,
		*image.Alpha, *image.Alpha16, *image.Paletted, *image.NYCbCrA:
		return true
	}
	return false
}

// nrgbaSource serves 8-bit straight-alpha pixels.
type nrgbaSource struct {
	img      *image.NRGBA
	hasAlpha bool
}

func (s *nrgbaSource) Width() int     { return s.img.Rect.Dx() }
func (s *nrgbaSource) Height() int    { return s.img.Rect.Dy() }
func (s *nrgbaSource) HasAlpha() bool { return s.hasAlpha }

func (s *nrgbaSource) Sample(x, y int) Pixel {
	i := s.img.PixOffset(x+s.img.Rect.Min.X, y+s.img.Rect.Min.Y)
	return s.pixelAt(i)
}

func (s *nrgbaSource) ReadRow(y int, dst []Pixel) {
	i := s.img.PixOffset(s.img.Rect.Min.X, y+s.img.Rect.Min.Y)
	for x := range dst[:s.Width()] {
		dst[x] = s.pixelAt(i)
		i += 4
	}
}

func (s *nrgbaSource) pixelAt(i int) Pixel {
	p := s.img.Pix[i : i+4 : i+4]
	a := float32(1)
	if s.hasAlpha {
		a = float32(p[3]) / 0xff
	}
	return Pixel{float32(p[0]) / 0xff, float32(p[1]) / 0xff, float32(p[2]) / 0xff, a}
}

// nrgba64Source serves 16-bit straight-alpha pixels.
type nrgba64Source struct {
	img      *image.NRGBA64
	hasAlpha bool
}

func (s *nrgba64Source) Width() int     { return s.img.Rect.Dx() }
func (s *nrgba64Source) Height() int    { return s.img.Rect.Dy() }
func (s *nrgba64Source) HasAlpha() bool { return s.hasAlpha }

func (s *nrgba64Source) Sample(x, y int) Pixel {
	i := s.img.PixOffset(x+s.img.Rect.Min.X, y+s.img.Rect.Min.Y)
	return s.pixelAt(i)
}

func (s *nrgba64Source) ReadRow(y int, dst []Pixel) {
	i := s.img.PixOffset(s.img.Rect.Min.X, y+s.img.Rect.Min.Y)
	for x := range dst[:s.Width()] {
		dst[x] = s.pixelAt(i)
		i += 8
	}
}

func (s *nrgba64Source) pixelAt(i int) Pixel {
	p := s.img.Pix[i : i+8 : i+8]
	var px Pixel
	for c := 0; c < 4; c++ {
		px[c] = float32(uint16(p[2*c])<<8|uint16(p[2*c+1])) / 0xffff
	}
	if !s.hasAlpha {
		px[alphaIndex] = 1
	}
	return px
}
