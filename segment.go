package pathmetrics

import "fmt"

// SegmentKind describes the kind of a [Segment].
type SegmentKind int

const (
	// Move directly to the point without drawing anything, starting a new subpath.
	MoveKind SegmentKind = iota + 1
	// Draw a line from the current point to P0.
	LineKind
	// Draw a quadratic Bézier from the current point, with control point P0, to P1.
	QuadKind
	// Draw a cubic Bézier from the current point, with control points P0 and P1, to P2.
	CubicKind
	// Draw a line back to the start of the subpath.
	CloseKind
)

func (k SegmentKind) String() string {
	switch k {
	case MoveKind:
		return "MoveTo"
	case LineKind:
		return "LineTo"
	case QuadKind:
		return "QuadTo"
	case CubicKind:
		return "CubicTo"
	case CloseKind:
		return "Close"
	default:
		return "InvalidSegment"
	}
}

// Segment is a single drawing instruction of a [Path]. It is a tagged union
// over the segment kinds; which of P0, P1 and P2 are meaningful depends on Kind.
//
// Every segment other than a move implicitly starts at the current point, which
// is the end point of the previous segment.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
}

// MoveTo returns a segment that starts a new subpath at pt.
func MoveTo(pt Point) Segment {
	return Segment{Kind: MoveKind, P0: pt}
}

// LineTo returns a segment drawing a line to pt.
func LineTo(pt Point) Segment {
	return Segment{Kind: LineKind, P0: pt}
}

// QuadTo returns a segment drawing a quadratic Bézier with control point ctrl to pt.
func QuadTo(ctrl, pt Point) Segment {
	return Segment{Kind: QuadKind, P0: ctrl, P1: pt}
}

// CubicTo returns a segment drawing a cubic Bézier with control points ctrl1 and
// ctrl2 to pt.
func CubicTo(ctrl1, ctrl2, pt Point) Segment {
	return Segment{Kind: CubicKind, P0: ctrl1, P1: ctrl2, P2: pt}
}

// Close returns a segment drawing a line back to the start of the subpath.
func Close() Segment {
	return Segment{Kind: CloseKind}
}

func (seg Segment) String() string {
	switch seg.Kind {
	case MoveKind, LineKind:
		return fmt.Sprintf("%s(%s)", seg.Kind, seg.P0)
	case QuadKind:
		return fmt.Sprintf("%s(%s, %s)", seg.Kind, seg.P0, seg.P1)
	case CubicKind:
		return fmt.Sprintf("%s(%s, %s, %s)", seg.Kind, seg.P0, seg.P1, seg.P2)
	default:
		return seg.Kind.String()
	}
}

// EndPoint returns the end point of the segment, or false if none exists. It exists
// for all kinds except for [CloseKind], whose end point depends on the subpath.
func (seg Segment) EndPoint() (Point, bool) {
	switch seg.Kind {
	case MoveKind, LineKind:
		return seg.P0, true
	case QuadKind:
		return seg.P1, true
	case CubicKind:
		return seg.P2, true
	default:
		return Point{}, false
	}
}

// isFinite reports whether all of the segment's meaningful points are finite.
func (seg Segment) isFinite() bool {
	switch seg.Kind {
	case MoveKind, LineKind:
		return seg.P0.isFinite()
	case QuadKind:
		return seg.P0.isFinite() && seg.P1.isFinite()
	case CubicKind:
		return seg.P0.isFinite() && seg.P1.isFinite() && seg.P2.isFinite()
	default:
		return true
	}
}
