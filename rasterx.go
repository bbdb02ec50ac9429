package pathmetrics

import (
	"iter"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// RasterxPath adapts a [rasterx.Path] to [Source]. The path is decoded by replaying
// it through [rasterx.Path.AddTo], so it sees the same segments a rasterx scanner or
// dasher would.
type RasterxPath rasterx.Path

var _ Source = RasterxPath{}

// Segments implements [Source].
func (p RasterxPath) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		rp := rasterx.Path(p)
		rp.AddTo(&segmentAdder{yield: yield})
	}
}

// segmentAdder turns rasterx.Adder calls into segments. AddTo can't be stopped early,
// so once yield has returned false all further calls are dropped.
type segmentAdder struct {
	yield func(Segment) bool
	done  bool
}

var _ rasterx.Adder = (*segmentAdder)(nil)

func (a *segmentAdder) push(seg Segment) {
	if a.done {
		return
	}
	if !a.yield(seg) {
		a.done = true
	}
}

func (a *segmentAdder) Start(p fixed.Point26_6) { a.push(MoveTo(fixedPoint(p))) }
func (a *segmentAdder) Line(b fixed.Point26_6)  { a.push(LineTo(fixedPoint(b))) }

func (a *segmentAdder) QuadBezier(b, c fixed.Point26_6) {
	a.push(QuadTo(fixedPoint(b), fixedPoint(c)))
}

func (a *segmentAdder) CubeBezier(b, c, d fixed.Point26_6) {
	a.push(CubicTo(fixedPoint(b), fixedPoint(c), fixedPoint(d)))
}

// Stop is called with closeLoop == false before every move and at the end of the
// path; only explicit closes become segments.
func (a *segmentAdder) Stop(closeLoop bool) {
	if closeLoop {
		a.push(Close())
	}
}
