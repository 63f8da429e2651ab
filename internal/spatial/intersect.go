package spatial

// Default expanding-search parameters, in model units.
const (
	DefaultStartRadius = 0.2
	DefaultStep        = 0.2
	DefaultMaxRadius   = 10.0
)

// radiusEpsilon absorbs float error when the last step lands on MaxRadius.
const radiusEpsilon = 1e-9

// SearchOptions controls FindIntersecting.
type SearchOptions struct {
	StartRadius float64
	Step        float64
	MaxRadius   float64
}

// DefaultSearch returns the 0.2 / 0.2 / 10.0 search.
func DefaultSearch() SearchOptions {
	return SearchOptions{
		StartRadius: DefaultStartRadius,
		Step:        DefaultStep,
		MaxRadius:   DefaultMaxRadius,
	}
}

// Intersection is the outcome of an expanding search.
type Intersection[L Bounded] struct {
	// Labels holds every hit at the first radius that produced one, in input order.
	Labels []L
	// Radius is the radius that produced the hits, zero when nothing was found.
	Radius float64
	// Reach is the largest center distance among the hits.
	Reach float64
}

// Found reports whether the search produced any label.
func (in Intersection[L]) Found() bool { return len(in.Labels) > 0 }

// FindIntersecting grows a search radius around container until at least one
// label qualifies, then stops.
//
// A label qualifies at radius r when the distance between the two box centers
// is at most r, or when the two boxes overlap on all three axes. The first
// radius with any hit is final even if a closer label sits just past it.
// The radius is StartRadius + i*Step for i = 0, 1, ... up to MaxRadius.
func FindIntersecting[C, L Bounded](container C, labels []L, opts SearchOptions) Intersection[L] {
	box := container.Extents()
	center := box.Center()

	for i := 0; ; i++ {
		radius := opts.StartRadius + float64(i)*opts.Step
		if radius > opts.MaxRadius+radiusEpsilon {
			break
		}

		var res Intersection[L]

		for _, l := range labels {
			lb := l.Extents()
			d := center.Distance(lb.Center())

			if d <= radius || box.Overlaps(lb) {
				res.Labels = append(res.Labels, l)
				res.Reach = max(res.Reach, d)
			}
		}

		if res.Found() {
			res.Radius = radius
			return res
		}

		// A non-positive step would never grow the radius.
		if opts.Step <= 0 {
			break
		}
	}

	return Intersection[L]{}
}
