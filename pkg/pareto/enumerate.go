// Package pareto enumerates complete Pareto fronts of multi-objective
// optimization problems whose objective values are integers drawn from
// bounded ranges.
//
// The caller supplies a feasibility oracle: a predicate over integer points
// that is monotone under the componentwise order: whenever the oracle
// accepts p and p ≤ q in every coordinate, it accepts q as well. Enumerate
// returns the set of minimal feasible points of the domain, which is the
// Pareto front when every objective is minimized.
//
// The enumeration keeps three working sets: the front discovered so far, a
// cover of upper witnesses that still dominate every undiscovered front
// point, and a buffer of maximal known-infeasible points. Feasible witnesses
// are localized to front points by per-coordinate binary search. The oracle
// is never asked about the same point twice, and never asked about a point
// whose answer follows from an earlier answer and monotonicity.
package pareto

import "time"

// Oracle classifies an integer point of the domain as feasible or
// infeasible. It must be monotone (accepting p forces accepting every q with
// p ≤ q) and must answer consistently if asked about the same point over the
// duration of one Enumerate call; violating either contract yields a
// meaningless result rather than a crash. Any error it returns is propagated
// unchanged to the Enumerate caller and aborts the run with no partial
// front.
type Oracle func(p Point) (bool, error)

// Option configures an Enumerate call. Use helpers like WithStats.
type Option func(*config)

type config struct {
	stats *Stats
}

// WithStats records oracle-call accounting for the run into the given
// struct. The struct is reset when the call starts and is fully written by
// the time Enumerate returns.
func WithStats(s *Stats) Option {
	return func(c *config) { c.stats = s }
}

// Enumerate returns the complete Pareto front of the domain described by
// bounds under the feasibility oracle f: every point x inside the bounds
// with f(x) true such that no point strictly below x is feasible.
//
// The returned points are in discovery order, which is deterministic for a
// deterministic oracle; callers that need a canonical order should sort. An
// empty bounds slice describes the zero-dimensional domain whose only point
// is the empty tuple: the result is that single point or nothing, depending
// on one oracle probe.
//
// Enumerate fails with an error wrapping ErrInvalidBounds if any coordinate
// range is empty, and with the oracle's own error if a probe fails. In both
// cases no front is returned.
func Enumerate(f Oracle, bounds []Interval, opts ...Option) ([]Point, error) {
	cfg := &config{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	stats := cfg.stats
	if stats == nil {
		stats = &Stats{}
	} else {
		*stats = Stats{}
	}
	start := time.Now()
	defer func() { stats.Elapsed = time.Since(start) }()

	if err := validateBounds(bounds); err != nil {
		return nil, err
	}

	if len(bounds) == 0 {
		ok, err := f(Point{})
		stats.OracleCalls++
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		stats.PointsFound = 1
		return []Point{{}}, nil
	}

	var (
		front []Point
		cover = []Point{top(bounds)}
		neg   negativeBuffer
	)

	for len(cover) > 0 {
		t := cover[0]
		if neg.contains(t) {
			stats.DeducedSkips++
			cover = cover[1:]
			continue
		}
		ok, err := f(t)
		stats.OracleCalls++
		if err != nil {
			return nil, err
		}
		if !ok {
			neg.add(t)
			cover = cover[1:]
			continue
		}
		// A front point is missing somewhere below t. Localize it.
		x, err := descend(f, bounds, &neg, stats, t)
		if err != nil {
			return nil, err
		}
		front = append(front, x)
		cover = refineCover(cover, bounds, x)
	}

	stats.PointsFound = len(front)
	stats.NegativeWitnesses = neg.size()
	return front, nil
}

// refineCover rebuilds the cover after x joined the front. A witness s not
// above x still covers a region disjoint from x's upward cone and is kept
// unchanged. A witness with x ≤ s covers nothing new inside that cone, so it
// is replaced by one shrunk copy per coordinate, with that coordinate pulled
// to just below x; copies for coordinates already at their lower bound would
// leave the domain and are skipped. The union of the copies is exactly the
// part of s's downward cone not above x. The result is reduced back to its
// maximal elements.
func refineCover(cover []Point, bounds []Interval, x Point) []Point {
	next := make([]Point, 0, len(cover))
	for _, s := range cover {
		if !Leq(x, s) {
			next = append(next, s)
			continue
		}
		for i := range x {
			if x[i] > bounds[i].Lo {
				shrunk := s.Clone()
				shrunk[i] = x[i] - 1
				next = append(next, shrunk)
			}
		}
	}
	return cleanCover(next)
}
