package pareto

// negativeBuffer memoizes infeasible oracle answers. Only the maximal
// known-infeasible witnesses are stored: monotonicity makes every point below
// a stored witness infeasible as well, so smaller witnesses carry no extra
// information and are removed on insert. The stored points therefore stay
// pairwise incomparable under the componentwise order.
type negativeBuffer struct {
	points []Point
}

// contains reports whether the infeasibility of p follows from a stored
// witness. A true answer means the oracle must not be asked about p.
func (b *negativeBuffer) contains(p Point) bool {
	for _, n := range b.points {
		if Leq(p, n) {
			return true
		}
	}
	return false
}

// add installs p as a known-infeasible witness, dropping every stored
// witness that p subsumes. The point is copied, so callers may keep mutating
// their own slice afterwards.
func (b *negativeBuffer) add(p Point) {
	kept := b.points[:0]
	for _, n := range b.points {
		if !Leq(n, p) {
			kept = append(kept, n)
		}
	}
	b.points = append(kept, p.Clone())
}

// size returns the number of stored witnesses.
func (b *negativeBuffer) size() int {
	return len(b.points)
}
