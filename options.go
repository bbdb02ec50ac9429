package pathmetrics

const (
	// DefaultTolerance is the flatness tolerance used when none is specified.
	DefaultTolerance = 0.01
	// DefaultMaxDepth is the subdivision depth limit used when none is specified.
	DefaultMaxDepth = 16
	// MaxSubdivisionDepth is the hard limit on subdivision depth. A single curve
	// never flattens to more than 2^MaxSubdivisionDepth lines.
	MaxSubdivisionDepth = 24
)

// Options controls how curves are flattened for measurement.
type Options struct {
	// Tolerance is the flatness tolerance: the maximum distance allowed between a
	// curve and the chord approximating it before the curve gets subdivided further.
	// Values that aren't positive select DefaultTolerance.
	Tolerance float64
	// MaxDepth bounds how many times a curve may be bisected. Curves that are still
	// not flat at this depth are approximated by their chords, trading accuracy for
	// guaranteed termination. Values that aren't positive select DefaultMaxDepth;
	// values above MaxSubdivisionDepth are clamped.
	MaxDepth int
}

// DefaultOptions are the options used by [Length] and [PointAtPercent].
var DefaultOptions = Options{
	Tolerance: DefaultTolerance,
	MaxDepth:  DefaultMaxDepth,
}

// WithTolerance returns a copy of o with the tolerance set to tolerance.
func (o Options) WithTolerance(tolerance float64) Options { o.Tolerance = tolerance; return o }

// WithMaxDepth returns a copy of o with the maximum subdivision depth set to depth.
func (o Options) WithMaxDepth(depth int) Options { o.MaxDepth = depth; return o }

// normalize returns o with out-of-range fields replaced by their defaults.
func (o Options) normalize() Options {
	// Written as a negated comparison so that NaN selects the default, too.
	if !(o.Tolerance > 0) {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	o.MaxDepth = min(o.MaxDepth, MaxSubdivisionDepth)
	return o
}
