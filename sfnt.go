package pathmetrics

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrNoGlyph is returned by [GlyphPath] when a font has no glyph for a rune.
var ErrNoGlyph = errors.New("font has no glyph for rune")

// SFNTSegments adapts glyph outlines, as returned by [sfnt.Font.LoadGlyph], to
// [Source]. Coordinates are converted from 26.6 fixed point. Like sfnt itself, the
// outlines use a y-down coordinate system.
type SFNTSegments sfnt.Segments

var _ Source = SFNTSegments{}

// Segments implements [Source].
func (s SFNTSegments) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, seg := range s {
			var out Segment
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				out = MoveTo(fixedPoint(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				out = LineTo(fixedPoint(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				out = QuadTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				out = CubicTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]), fixedPoint(seg.Args[2]))
			default:
				continue
			}
			if !yield(out) {
				return
			}
		}
	}
}

// GlyphPath loads the outline of the glyph that f maps r to, scaled to ppem pixels
// per em. b may be nil. The returned segments don't share memory with b.
func GlyphPath(f *sfnt.Font, b *sfnt.Buffer, r rune, ppem fixed.Int26_6) (SFNTSegments, error) {
	if b == nil {
		b = new(sfnt.Buffer)
	}
	x, err := f.GlyphIndex(b, r)
	if err != nil {
		return nil, fmt.Errorf("looking up glyph for %q: %w", r, err)
	}
	if x == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}
	segs, err := f.LoadGlyph(b, x, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("loading glyph for %q: %w", r, err)
	}
	return SFNTSegments(slices.Clone(segs)), nil
}

func fixedPoint(p fixed.Point26_6) Point {
	return Point{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}
