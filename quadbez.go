package pathmetrics

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Subdivide subdivides the quadratic into halves, using de Casteljau.
//
// The outer end points are copied unchanged, so the second half ends exactly at P2.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	p01 := q.P0.Midpoint(q.P1)
	p12 := q.P1.Midpoint(q.P2)
	pm := p01.Midpoint(p12)
	return QuadBez{q.P0, p01, pm},
		QuadBez{pm, p12, q.P2}
}

// Raise returns the cubic Bézier that describes the same curve as q.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// deviation returns how far the control point strays from the chord.
func (q QuadBez) deviation() float64 {
	return Line{q.P0, q.P2}.Distance(q.P1)
}
