package pathmetrics

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
//
// The outer end points are copied unchanged, so the second half ends exactly at P3.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Midpoint(c.P1)
	p12 := c.P1.Midpoint(c.P2)
	p23 := c.P2.Midpoint(c.P3)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	pm := p012.Midpoint(p123)
	return CubicBez{c.P0, p01, p012, pm},
		CubicBez{pm, p123, p23, c.P3}
}

// deviation returns how far the control polygon strays from the chord. The curve
// lies in the convex hull of its control points, so this bounds the distance
// between the curve and the chord.
func (c CubicBez) deviation() float64 {
	chord := Line{c.P0, c.P3}
	return max(chord.Distance(c.P1), chord.Distance(c.P2))
}
