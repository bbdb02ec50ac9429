package pathmetrics_test

import (
	"fmt"

	"honnef.co/go/pathmetrics"
)

func ExampleLength() {
	var p pathmetrics.Path
	p.MoveTo(pathmetrics.Pt(0, 0))
	p.LineTo(pathmetrics.Pt(10, 0))

	fmt.Println(pathmetrics.Length(p))
	fmt.Println(pathmetrics.PointAtPercent(p, 0.5))
	// Output:
	// 10
	// (5, 0)
}

func ExampleMeasure() {
	// A closed square with sides of length 10.
	var p pathmetrics.Path
	p.MoveTo(pathmetrics.Pt(0, 0))
	p.LineTo(pathmetrics.Pt(10, 0))
	p.LineTo(pathmetrics.Pt(10, 10))
	p.LineTo(pathmetrics.Pt(0, 10))
	p.Close()

	// Measure the path once and run several queries against it.
	tbl := pathmetrics.Measure(p, pathmetrics.DefaultOptions)
	fmt.Println(tbl.Length())
	for _, percent := range []float64{0, 0.25, 0.375, 0.875, 1} {
		fmt.Println(percent, tbl.PointAtPercent(percent))
	}
	fmt.Println(tbl.PointAtLength(25))
	// Output:
	// 40
	// 0 (0, 0)
	// 0.25 (10, 0)
	// 0.375 (10, 5)
	// 0.875 (0, 5)
	// 1 (0, 0)
	// (5, 10)
}

func ExampleMeasure_empty() {
	tbl := pathmetrics.Measure(pathmetrics.Path{}, pathmetrics.DefaultOptions)
	fmt.Println(tbl.Length(), tbl.Empty(), tbl.PointAtPercent(0.5))
	// Output:
	// 0 true (0, 0)
}

func ExampleOptions() {
	// A quarter circle of radius 100, approximated by a cubic Bézier.
	const k = 55.22847498
	var p pathmetrics.Path
	p.MoveTo(pathmetrics.Pt(100, 0))
	p.CubicTo(pathmetrics.Pt(100, k), pathmetrics.Pt(k, 100), pathmetrics.Pt(0, 100))

	coarse := pathmetrics.Measure(p, pathmetrics.DefaultOptions.WithTolerance(1))
	fine := pathmetrics.Measure(p, pathmetrics.DefaultOptions.WithTolerance(1e-4))
	fmt.Printf("%.1f %.3f\n", coarse.Length(), fine.Length())
	// Output:
	// 156.8 157.102
}
