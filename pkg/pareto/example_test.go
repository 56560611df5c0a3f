package pareto

import (
	"fmt"
)

// ExampleEnumerate enumerates the trade-off front of a two-objective
// feasibility predicate: any split of at least 4 units across the two
// coordinates is feasible, so the front is the diagonal of exact splits.
func ExampleEnumerate() {
	oracle := func(p Point) (bool, error) {
		return p[0]+p[1] >= 4, nil
	}

	front, err := Enumerate(oracle, []Interval{{Lo: 0, Hi: 3}, {Lo: 0, Hi: 3}})
	if err != nil {
		panic(err)
	}

	for _, p := range sortedFront(front) {
		fmt.Println(p)
	}
	// Output:
	// (1, 3)
	// (2, 2)
	// (3, 1)
}

// ExampleEnumerate_stats shows oracle-call accounting for a run.
func ExampleEnumerate_stats() {
	oracle := func(p Point) (bool, error) {
		return p[0] >= 7, nil
	}

	stats := &Stats{}
	front, err := Enumerate(oracle, []Interval{{Lo: 0, Hi: 15}}, WithStats(stats))
	if err != nil {
		panic(err)
	}

	fmt.Printf("front: %v\n", front[0])
	fmt.Printf("oracle calls: %d\n", stats.OracleCalls)
	// Output:
	// front: (7)
	// oracle calls: 5
}

// ExampleMinimize finds the smallest integer whose square reaches a target.
func ExampleMinimize() {
	first, feasible, err := Minimize(func(k int) (bool, error) {
		return k*k >= 50, nil
	}, 0, 100)
	if err != nil {
		panic(err)
	}

	fmt.Println(first, feasible)
	// Output:
	// 8 true
}
