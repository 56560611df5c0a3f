package pareto

// cleanCover reduces a set of upper witnesses to its maximal elements: every
// point strictly below another input point is dropped. Duplicates are
// incomparable under the strict order and survive; the cover never produces
// them because each shrunk witness differs from its siblings in the lowered
// coordinate. Quadratic in the input size, which stays small relative to the
// objective space.
func cleanCover(points []Point) []Point {
	kept := make([]Point, 0, len(points))
	for _, p := range points {
		dominated := false
		for _, q := range points {
			if Less(p, q) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, p)
		}
	}
	return kept
}

// CleanFront reduces a set of points to its minimal elements: every point
// with another input point strictly below it is dropped. Duplicate points are
// incomparable under the strict order and all survive. Useful for building
// expected fronts from hand-assembled candidate sets, for instance in tests
// that compare an enumeration result against a known generator set.
func CleanFront(points []Point) []Point {
	kept := make([]Point, 0, len(points))
	for _, p := range points {
		dominated := false
		for _, q := range points {
			if Less(q, p) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, p)
		}
	}
	return kept
}
