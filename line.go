package pathmetrics

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Distance returns the distance between pt and the nearest point on the line. For a
// degenerate line whose end points coincide, that is the distance to P0.
func (l Line) Distance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Distance(l.P0)
	} else if dotp >= dSquared {
		return pt.Distance(l.P1)
	} else {
		return math.Abs(d.Cross(pt.Sub(l.P0))) / math.Sqrt(dSquared)
	}
}
