package selection

import (
	"fmt"

	"github.com/gammazero/deque"
)

// span is a pending work-list entry: row y, to be scanned over the columns
// strictly between start and end.
type span struct {
	y, start, end int
}

// grower holds the per-call state of a seeded selection.
type grower struct {
	src      Source
	mask     *Mask
	ref      Pixel
	opts     Options
	hasAlpha bool
	width    int

	// scratch receives evaluated values of the run being expanded before they
	// are written to the mask in one call.
	scratch []float32
}

// SelectBySeed grows a 4-connected region from the seed pixel (x, y) and
// returns it as a mask. The seed's own color is the reference.
//
// If src has alpha and transparency selection is requested but the seed is
// not fully transparent, transparency selection is dropped for this call.
//
// The search is a scanline fill driven by an explicit work list of row
// intervals: each matching run is resolved horizontally in one pass, then
// the rows above and below are queued over the run's extent. Memory use does
// not depend on call-stack depth, so large uniform areas are safe.
func SelectBySeed(src Source, x, y int, opts Options) (*Mask, error) {
	if err := validateSource(src); err != nil {
		return nil, fmt.Errorf("select by seed: %w", err)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("select by seed: %w", err)
	}
	width, height := src.Width(), src.Height()
	if x < 0 || x >= width || y < 0 || y >= height {
		return nil, fmt.Errorf("select by seed: %w: (%d,%d) not in %dx%d",
			ErrSeedOutOfBounds, x, y, width, height)
	}

	ref := src.Sample(x, y)
	hasAlpha := src.HasAlpha()
	if !hasAlpha || ref[alphaIndex] > 0 {
		opts.SelectTransparent = false
	}

	g := &grower{
		src:      src,
		mask:     NewMask(width, height),
		ref:      ref,
		opts:     opts,
		hasAlpha: hasAlpha,
		width:    width,
		scratch:  make([]float32, width),
	}

	var work deque.Deque[span]
	work.PushBack(span{y: y, start: x - 1, end: x + 1})

	pops, segments := 0, 0
	for work.Len() > 0 {
		s := work.PopFront()
		pops++

		for cx := s.start + 1; cx < s.end; cx++ {
			if g.mask.At(cx, s.y) != 0 {
				continue
			}

			start, end, ok := g.findSegment(cx, s.y)
			if !ok {
				continue
			}
			segments++

			if s.y+1 < height {
				work.PushBack(span{y: s.y + 1, start: start, end: end})
			}
			if s.y-1 >= 0 {
				work.PushBack(span{y: s.y - 1, start: start, end: end})
			}
		}
	}

	Logger().Debug("select by seed",
		"seed_x", x,
		"seed_y", y,
		"criterion", opts.Criterion.String(),
		"threshold", opts.Threshold,
		"select_transparent", opts.SelectTransparent,
		"work_items", pops,
		"segments", segments)

	return g.mask, nil
}

// findSegment probes (x, y) and, if it matches, expands left and right along
// the row while pixels keep matching. The run is written to the mask over
// [start+1, end); start and end are the columns where expansion stopped
// (possibly -1 or width).
//
// A failed probe leaves the mask untouched.
func (g *grower) findSegment(x, y int) (start, end int, ok bool) {
	v := g.evaluate(x, y)
	if v == 0 {
		return 0, 0, false
	}
	g.scratch[x] = v

	start = x - 1
	for start >= 0 {
		v = g.evaluate(start, y)
		if v == 0 {
			break
		}
		g.scratch[start] = v
		start--
	}

	end = x + 1
	for end < g.width {
		v = g.evaluate(end, y)
		if v == 0 {
			break
		}
		g.scratch[end] = v
		end++
	}

	g.mask.SetRun(start+1, y, g.scratch[start+1:end])
	return start, end, true
}

func (g *grower) evaluate(x, y int) float32 {
	return Evaluate(g.ref, g.src.Sample(x, y), g.opts, g.hasAlpha)
}
