package pathmetrics

import (
	"math"
	"slices"
	"testing"
)

func TestDivide(t *testing.T) {
	p := Path{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), LineTo(Pt(10, 10)), LineTo(Pt(0, 10)), Close()}
	tbl := Measure(p, DefaultOptions)

	want := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	diff(t, want, slices.Collect(tbl.Divide(4)))

	want = []Point{Pt(0, 0), Pt(10, 10), Pt(0, 0)}
	diff(t, want, slices.Collect(tbl.Divide(2)))

	for _, n := range []int{0, -1} {
		if pts := slices.Collect(tbl.Divide(n)); len(pts) != 0 {
			t.Errorf("Divide(%d) yielded %v, want nothing", n, pts)
		}
	}
	if pts := slices.Collect(Measure(Path{}, DefaultOptions).Divide(3)); len(pts) != 0 {
		t.Errorf("Divide on empty path yielded %v, want nothing", pts)
	}
}

func TestEvery(t *testing.T) {
	p := Path{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), MoveTo(Pt(20, 0)), LineTo(Pt(20, 5))}
	tbl := Measure(p, DefaultOptions)

	want := []Point{Pt(0, 0), Pt(4, 0), Pt(8, 0), Pt(20, 2)}
	diff(t, want, slices.Collect(tbl.Every(4)), approx(1e-12))

	want = []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(20, 5)}
	diff(t, want, slices.Collect(tbl.Every(5)))

	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if pts := slices.Collect(tbl.Every(step)); len(pts) != 0 {
			t.Errorf("Every(%v) yielded %v, want nothing", step, pts)
		}
	}

	// Stopping early works.
	var n int
	for range tbl.Every(0.001) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d points, want 3", n)
	}
}
