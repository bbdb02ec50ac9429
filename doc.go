// Package pathmetrics measures 2D Bézier paths. It computes the arc length of a path
// made of lines and quadratic and cubic Béziers, and finds the point that lies at a
// given fraction of that length.
//
// # Paths
//
// Paths are read through the [Source] interface, which enumerates [Segment] values
// in drawing order. Segments are akin to drawing commands in graphics APIs like
// PostScript: a move ([MoveTo]) starts a new subpath, and lines ([LineTo]), curves
// ([QuadTo], [CubicTo]) and closes ([Close]) continue from the current point, which
// is the end point of the previous segment.
//
// [Path] is a plain slice of segments and implements Source. [SFNTSegments] and
// [RasterxPath] adapt the path types of golang.org/x/image/font/sfnt and
// github.com/srwiley/rasterx, so that glyph outlines and rasterizer paths can be
// measured without converting them first.
//
// # Measuring
//
// [Measure] flattens a path into a [LengthTable]: a list of points on the path,
// each paired with the length of the path up to that point. Curves are flattened by
// recursive de Casteljau bisection until their control points are within
// [Options.Tolerance] of the chord, or until [Options.MaxDepth] is reached. The table
// answers [LengthTable.Length], [LengthTable.PointAtPercent] and
// [LengthTable.PointAtLength]. The functions [Length] and [PointAtPercent] measure a
// path with [DefaultOptions] and answer a single query.
//
// Only drawn segments count towards the length. The gaps between subpaths don't,
// while a close contributes the distance back to the start of its subpath.
//
// Measurements don't fail. Percentages outside [0, 1] are clamped, zero-length spans
// are handled without dividing by zero, and malformed paths are measured
// deterministically, as described by [Measure]. An empty path has length 0, and
// querying a point on it returns the origin.
//
// # Concurrency
//
// All functions are safe for concurrent use, as long as the measured path isn't
// modified during a call. A [LengthTable] is immutable and can be shared between
// goroutines and cached by callers.
package pathmetrics
