package pareto

// descend localizes a feasible witness t to a componentwise-minimal feasible
// point below it. Coordinates are minimized one at a time in ascending index
// order: a binary search over [lo_i, x_i] finds the smallest value that keeps
// the point feasible with all other coordinates held fixed. Once every
// coordinate has been processed, no coordinate can be lowered any further, so
// the result is a point of the Pareto front.
//
// Negative answers discovered along the way are recorded in the buffer, and
// the buffer is consulted before every probe, so no answer deducible from an
// earlier one reaches the oracle. At most width-of-coordinate log-many probes
// are spent per coordinate, minus whatever the buffer prunes.
func descend(f Oracle, bounds []Interval, neg *negativeBuffer, stats *Stats, t Point) (Point, error) {
	x := t.Clone()
	for i := range x {
		// Half-open window [min, max) of candidate values for x[i].
		min, max := bounds[i].Lo, x[i]+1
		for max-min > 1 {
			mid := min + (max-min-1)/2 // floored midpoint in subtract-first form
			x[i] = mid
			if neg.contains(x) {
				// Infeasible by monotonicity; the witness that proves it
				// already subsumes x, so nothing new to record.
				stats.DeducedSkips++
				min = mid + 1
				continue
			}
			ok, err := f(x)
			stats.OracleCalls++
			if err != nil {
				return nil, err
			}
			if ok {
				max = mid + 1
			} else {
				neg.add(x)
				min = mid + 1
			}
		}
		x[i] = min
	}
	stats.Descents++
	return x, nil
}
