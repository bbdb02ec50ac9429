package pathmetrics

import (
	"iter"
	"slices"
)

// Source is implemented by path representations that can enumerate their segments
// in drawing order. Measuring a path only reads from the source; implementations must
// not be modified while a query is running.
type Source interface {
	Segments() iter.Seq[Segment]
}

// Path is a sequence of segments in drawing order. Each [MoveKind] segment starts a
// new subpath. A path may be empty.
type Path []Segment

var _ Source = Path{}

// Segments returns an iterator over the path's segments.
func (p Path) Segments() iter.Seq[Segment] { return slices.Values(p) }

// Push adds a segment to the path.
func (p *Path) Push(seg Segment) { *p = append(*p, seg) }

// MoveTo pushes a "move to" segment onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" segment onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" segment onto the path.
func (p *Path) QuadTo(ctrl, pt Point) { p.Push(QuadTo(ctrl, pt)) }

// CubicTo pushes a "cubic to" segment onto the path.
func (p *Path) CubicTo(ctrl1, ctrl2, pt Point) { p.Push(CubicTo(ctrl1, ctrl2, pt)) }

// Close pushes a "close" segment onto the path.
func (p *Path) Close() { p.Push(Close()) }

// Subpaths returns an iterator over the path's subpaths. Each subpath starts at a
// move, except possibly the first one if the path doesn't start with a move.
func (p Path) Subpaths() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		start := 0
		for i, seg := range p {
			if seg.Kind == MoveKind && i > start {
				if !yield(p[start:i:i]) {
					return
				}
				start = i
			}
		}
		if start < len(p) {
			yield(p[start:len(p):len(p)])
		}
	}
}

// Closed reports whether the path's last segment is a [CloseKind] segment.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == CloseKind
}
