package pathmetrics

// Length returns the arc length of the path described by src, using
// [DefaultOptions]. An empty path has length 0.
//
// To use other options, or to run several queries against the same path, use
// [Measure].
func Length(src Source) float64 {
	return Measure(src, DefaultOptions).Length()
}

// PointAtPercent returns the point that lies at the given fraction of the total
// length of the path described by src, using [DefaultOptions]. See
// [LengthTable.PointAtPercent] for the handling of edge cases; notably, the origin
// is returned for empty paths.
func PointAtPercent(src Source, percent float64) Point {
	return Measure(src, DefaultOptions).PointAtPercent(percent)
}
