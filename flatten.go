package pathmetrics

// FlattenSegment approximates seg, which starts at current, with a polyline. It
// returns the polyline's points, excluding current. The last point is always exactly
// the segment's end point.
//
// Quadratic and cubic Béziers are bisected recursively, using de Casteljau's
// algorithm, until the control points are within the options' tolerance of the chord
// or the options' maximum depth is reached. Moves and lines produce their end point.
// Close segments and segments of invalid kinds produce no points, as their end point
// isn't a property of the segment.
func FlattenSegment(seg Segment, current Point, opts Options) []Point {
	f := newFlattener(opts)
	return f.segment(nil, seg, current)
}

type flattener struct {
	tolerance float64
	maxDepth  int

	// Number of curve pieces that were still not flat at maxDepth.
	limited int
}

func newFlattener(opts Options) *flattener {
	opts = opts.normalize()
	return &flattener{
		tolerance: opts.Tolerance,
		maxDepth:  opts.MaxDepth,
	}
}

// segment appends the flattened points of seg to pts.
func (f *flattener) segment(pts []Point, seg Segment, current Point) []Point {
	switch seg.Kind {
	case MoveKind, LineKind:
		return append(pts, seg.P0)
	case QuadKind:
		return f.quad(pts, QuadBez{current, seg.P0, seg.P1}, 0)
	case CubicKind:
		return f.cubic(pts, CubicBez{current, seg.P0, seg.P1, seg.P2}, 0)
	default:
		return pts
	}
}

func (f *flattener) quad(pts []Point, q QuadBez, depth int) []Point {
	if q.deviation() <= f.tolerance {
		return append(pts, q.P2)
	}
	if depth >= f.maxDepth {
		f.limited++
		return append(pts, q.P2)
	}
	q0, q1 := q.Subdivide()
	pts = f.quad(pts, q0, depth+1)
	return f.quad(pts, q1, depth+1)
}

func (f *flattener) cubic(pts []Point, c CubicBez, depth int) []Point {
	if c.deviation() <= f.tolerance {
		return append(pts, c.P3)
	}
	if depth >= f.maxDepth {
		f.limited++
		return append(pts, c.P3)
	}
	c0, c1 := c.Subdivide()
	pts = f.cubic(pts, c0, depth+1)
	return f.cubic(pts, c1, depth+1)
}
