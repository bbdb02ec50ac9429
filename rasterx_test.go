package pathmetrics

import (
	"slices"
	"testing"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

func fpt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func TestRasterxPath(t *testing.T) {
	var rp rasterx.Path
	rp.Start(fpt(0, 0))
	rp.Line(fpt(10, 0))
	rp.Line(fpt(10, 10))
	rp.Line(fpt(0, 10))
	rp.Stop(true)
	rp.Start(fpt(20, 20))
	rp.QuadBezier(fpt(25, 30), fpt(30, 20))
	rp.CubeBezier(fpt(35, 10), fpt(40, 30), fpt(45.5, 20.25))
	rp.Stop(false)

	want := []Segment{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		LineTo(Pt(10, 10)),
		LineTo(Pt(0, 10)),
		Close(),
		MoveTo(Pt(20, 20)),
		QuadTo(Pt(25, 30), Pt(30, 20)),
		CubicTo(Pt(35, 10), Pt(40, 30), Pt(45.5, 20.25)),
	}
	got := slices.Collect(RasterxPath(rp).Segments())
	diff(t, want, got)

	tbl := Measure(RasterxPath(rp), DefaultOptions)
	if l := Length(Path(want)); tbl.Length() != l {
		t.Errorf("got length %v, want %v", tbl.Length(), l)
	}
	if got := tbl.PointAtPercent(1); got != Pt(45.5, 20.25) {
		t.Errorf("got last point %v, want (45.5, 20.25)", got)
	}
}

func TestRasterxPathStopEarly(t *testing.T) {
	var rp rasterx.Path
	rp.Start(fpt(0, 0))
	rp.Line(fpt(3, 4))
	rp.Line(fpt(6, 8))
	rp.Stop(true)

	var n int
	for range RasterxPath(rp).Segments() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated over %d segments, want 2", n)
	}

	if l := Length(RasterxPath(rp)); l != 20 {
		t.Errorf("got length %v, want 20", l)
	}
}
