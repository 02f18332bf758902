package selection

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/blur"
)

// Operation describes how a new mask combines with an existing selection.
type Operation int

const (
	// Replace discards the existing selection.
	Replace Operation = iota
	// Add keeps the larger of both values (union).
	Add
	// Subtract removes the new selection from the existing one.
	Subtract
	// Intersect keeps the smaller of both values.
	Intersect
)

// String returns the lowercase operation name.
func (op Operation) String() string {
	switch op {
	case Replace:
		return "replace"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Intersect:
		return "intersect"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ParseOperation converts "replace", "add", "subtract" or "intersect" into an
// Operation. An empty string yields Replace.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "replace":
		return Replace, nil
	case "add", "union":
		return Add, nil
	case "subtract":
		return Subtract, nil
	case "intersect":
		return Intersect, nil
	}
	return Replace, fmt.Errorf("unknown selection mode %q", name)
}

// Combine merges other into m in place according to op.
func (m *Mask) Combine(other *Mask, op Operation) error {
	if other.width != m.width || other.height != m.height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrMaskSize, m.width, m.height, other.width, other.height)
	}

	switch op {
	case Replace:
		copy(m.data, other.data)
	case Add:
		for i, v := range other.data {
			if v > m.data[i] {
				m.data[i] = v
			}
		}
	case Subtract:
		for i, v := range other.data {
			d := m.data[i] - v
			if d < 0 {
				d = 0
			}
			m.data[i] = d
		}
	case Intersect:
		for i, v := range other.data {
			if v < m.data[i] {
				m.data[i] = v
			}
		}
	default:
		return fmt.Errorf("unknown selection operation %v", op)
	}
	return nil
}

// Invert flips every cell (1 - v).
func (m *Mask) Invert() {
	for i, v := range m.data {
		m.data[i] = 1 - v
	}
}

// Feather returns a copy of m with its edges softened by a Gaussian blur of
// the given radius. A radius <= 0 returns an unmodified clone.
//
// The blur runs on an 8-bit rendering of the mask, so intermediate values are
// quantized to 1/255 steps.
func (m *Mask) Feather(radius float64) *Mask {
	if radius <= 0 || len(m.data) == 0 {
		return m.Clone()
	}

	blurred := blur.Gaussian(m.Gray(), radius)

	out := NewMask(m.width, m.height)
	b := blurred.Bounds()
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := blurred.PixOffset(x+b.Min.X, y+b.Min.Y)
			out.data[y*m.width+x] = float32(blurred.Pix[i]) / 0xff
		}
	}
	return out
}

// Stats summarizes a mask.
type Stats struct {
	// SelectedPixels counts cells with a non-zero value.
	SelectedPixels int `json:"selected_pixels"`

	// FullPixels counts cells equal to 1.
	FullPixels int `json:"full_pixels"`

	// PartialPixels counts cells strictly between 0 and 1 (antialiased edge).
	PartialPixels int `json:"partial_pixels"`

	// TotalPixels is width × height.
	TotalPixels int `json:"total_pixels"`

	// CoveragePercent is the sum of all cell values relative to TotalPixels,
	// in percent.
	CoveragePercent float64 `json:"coverage_percent"`

	// Bounds is the smallest rectangle containing every selected cell.
	// It is empty when nothing is selected.
	Bounds image.Rectangle `json:"-"`

	// Empty reports whether no cell is selected.
	Empty bool `json:"empty"`
}

// Stats computes selection statistics in a single pass.
func (m *Mask) Stats() Stats {
	st := Stats{TotalPixels: m.width * m.height}
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	var sum float64

	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v <= 0 {
				continue
			}
			st.SelectedPixels++
			if v >= 1 {
				st.FullPixels++
			} else {
				st.PartialPixels++
			}
			sum += float64(v)
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if st.SelectedPixels == 0 {
		st.Empty = true
		return st
	}
	st.Bounds = image.Rect(minX, minY, maxX+1, maxY+1)
	if st.TotalPixels > 0 {
		st.CoveragePercent = sum / float64(st.TotalPixels) * 100
	}
	return st
}
