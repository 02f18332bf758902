package selection

import (
	"image"
	"math"
)

// Mask is a single-channel selection buffer with float32 cells in [0,1].
// 0 is unselected, 1 is fully selected, values in between are partial.
type Mask struct {
	width  int
	height int
	data   []float32
}

// NewMask creates a zero-initialized (fully unselected) mask.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle anchored at (0,0).
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the value at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set stores v at (x, y). Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, v float32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = v
}

// SetRun writes values into row y starting at column x, in one copy.
// The part of the run outside the mask is dropped.
func (m *Mask) SetRun(x, y int, values []float32) {
	if y < 0 || y >= m.height {
		return
	}
	if x < 0 {
		if -x >= len(values) {
			return
		}
		values = values[-x:]
		x = 0
	}
	if x >= m.width {
		return
	}
	if n := m.width - x; len(values) > n {
		values = values[:n]
	}
	copy(m.data[y*m.width+x:], values)
}

// Row returns row y as a slice aliasing the mask data.
func (m *Mask) Row(y int) []float32 {
	return m.data[y*m.width : (y+1)*m.width : (y+1)*m.width]
}

// Data returns the underlying row-major cells.
func (m *Mask) Data() []float32 {
	return m.data
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Gray renders the mask as an 8-bit grayscale image, 255 = fully selected.
func (m *Mask) Gray() *image.Gray {
	img := image.NewGray(m.Bounds())
	for i, v := range m.data {
		img.Pix[i] = toByte(v)
	}
	return img
}

// Alpha renders the mask as an alpha image, usable with image/draw as a
// compositing mask.
func (m *Mask) Alpha() *image.Alpha {
	img := image.NewAlpha(m.Bounds())
	for i, v := range m.data {
		img.Pix[i] = toByte(v)
	}
	return img
}

// MaskFromGray builds a mask from a grayscale image, mapping 0-255 to [0,1].
func MaskFromGray(img *image.Gray) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.data[y*m.width+x] = float32(img.GrayAt(x+b.Min.X, y+b.Min.Y).Y) / 0xff
		}
	}
	return m
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 0xff))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
