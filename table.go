package pathmetrics

import (
	"iter"
	"log/slog"
	"slices"
)

// Sample is a point on a flattened path, together with the length of the path from
// its start up to the point.
type Sample struct {
	Point  Point
	Length float64
}

// LengthTable is the flattened form of a path, mapping cumulative lengths to points.
// Its samples are ordered as in the path, and their lengths never decrease. The first
// sample has length 0 and the last sample has the path's total length.
//
// A LengthTable is immutable and safe for concurrent use. Callers that query the same
// path repeatedly may keep the table around instead of measuring the path again.
type LengthTable struct {
	samples []Sample
	limited int
}

// Measure flattens the path described by src and accumulates its length.
//
// Every drawing segment contributes the length of its flattened polyline. Close
// segments contribute the distance back to the start of their subpath. Moves
// contribute nothing: the gap between two subpaths doesn't count towards the
// length of the path.
//
// Measure doesn't fail on malformed paths. A drawing segment that has no current
// point to start from is treated as a move to its end point, a close without a
// current point is ignored, and segments with infinite or NaN coordinates are
// skipped.
func Measure(src Source, opts Options) *LengthTable {
	f := newFlattener(opts)
	t := &LengthTable{}

	var (
		total      float64
		start      Point
		current    Point
		hasCurrent bool
		skipped    int
		buf        []Point
	)
	for seg := range src.Segments() {
		if !seg.isFinite() {
			skipped++
			continue
		}

		switch seg.Kind {
		case MoveKind:
			start, current, hasCurrent = seg.P0, seg.P0, true
			t.samples = append(t.samples, Sample{seg.P0, total})
		case CloseKind:
			if !hasCurrent {
				continue
			}
			total += current.Distance(start)
			current = start
			t.samples = append(t.samples, Sample{start, total})
		case LineKind, QuadKind, CubicKind:
			end, _ := seg.EndPoint()
			if !hasCurrent {
				start, current, hasCurrent = end, end, true
				t.samples = append(t.samples, Sample{end, total})
				continue
			}
			buf = f.segment(buf[:0], seg, current)
			prev := current
			for _, pt := range buf {
				total += prev.Distance(pt)
				t.samples = append(t.samples, Sample{pt, total})
				prev = pt
			}
			current = end
		}
	}
	t.limited = f.limited

	if f.limited > 0 {
		Logger().Debug("curve subdivision reached depth limit",
			slog.Int("pieces", f.limited),
			slog.Int("max_depth", f.maxDepth),
			slog.Float64("tolerance", f.tolerance))
	}
	if skipped > 0 {
		Logger().Debug("skipped segments with non-finite coordinates", slog.Int("segments", skipped))
	}
	return t
}

// Length returns the total length of the path.
func (t *LengthTable) Length() float64 {
	if len(t.samples) == 0 {
		return 0
	}
	return t.samples[len(t.samples)-1].Length
}

// Len returns the number of samples in the table.
func (t *LengthTable) Len() int { return len(t.samples) }

// Empty reports whether the measured path had no points at all.
func (t *LengthTable) Empty() bool { return len(t.samples) == 0 }

// Samples returns an iterator over the table's samples, in path order.
func (t *LengthTable) Samples() iter.Seq[Sample] { return slices.Values(t.samples) }

// DepthLimited returns the number of curve pieces that were approximated by their
// chords because they reached the maximum subdivision depth before becoming flat.
// If it is non-zero, the measured length may be less accurate than the tolerance
// asked for.
func (t *LengthTable) DepthLimited() int { return t.limited }
