package pareto

import "fmt"

// Minimize finds the smallest k in [lo, hi] for which the one-dimensional
// predicate f reports feasibility. f must be monotone: f(k) true implies
// f(k') true for every k' ≥ k. This is the single-objective special case of
// Enumerate, exposed separately because threshold searches over one scalar
// are common enough to deserve the direct form.
//
// Returns feasible = false (with min = hi) when even hi is infeasible.
// Errors from f propagate unchanged. Fails with an error wrapping
// ErrInvalidBounds when lo > hi.
func Minimize(f func(k int) (bool, error), lo, hi int) (min int, feasible bool, err error) {
	if lo > hi {
		return 0, false, fmt.Errorf("%w: lo %d > hi %d", ErrInvalidBounds, lo, hi)
	}
	ok, err := f(hi)
	if err != nil || !ok {
		return hi, false, err
	}
	for hi > lo {
		k := lo + (hi-lo)/2 // subtract-first midpoint, same as sort.Search
		ok, err := f(k)
		if err != nil {
			return 0, false, err
		}
		if ok {
			hi = k
		} else {
			lo = k + 1
		}
	}
	return hi, true, nil
}
