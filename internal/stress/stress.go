// Package stress exercises the enumeration library against randomly
// generated fronts. Each round builds a random generator antichain, asks the
// enumerator to rediscover it through a checking oracle, and fails if a
// redundant oracle call is made or the recovered front differs from the
// generators. The CLI harness and long-running soak tests share this code.
package stress

import (
	"fmt"
	"math/rand"

	"github.com/gitrdm/gopareto/pkg/pareto"
)

// checkingOracle answers membership in the upward closure of a generator
// antichain. Every call is validated against the answers given so far: a
// question whose answer is implied by an earlier positive or negative answer
// (exact repeats included) means the enumeration asked something it could
// have deduced, and the round fails.
type checkingOracle struct {
	generators []pareto.Point
	positive   []pareto.Point
	negative   []pareto.Point
}

func (o *checkingOracle) query(p pareto.Point) (bool, error) {
	for _, q := range o.positive {
		if pareto.Leq(q, p) {
			return false, fmt.Errorf("redundant call: %v already implied true by %v", p, q)
		}
	}
	for _, q := range o.negative {
		if pareto.Leq(p, q) {
			return false, fmt.Errorf("redundant call: %v already implied false by %v", p, q)
		}
	}
	for _, g := range o.generators {
		if pareto.Leq(g, p) {
			o.positive = append(o.positive, p.Clone())
			return true, nil
		}
	}
	o.negative = append(o.negative, p.Clone())
	return false, nil
}

// Round runs one randomized self-check with the given seed: 5 to 11
// dimensions, up to 15 generator points before cleaning, coordinate ranges
// of width at least 2 placed anywhere in [-50, 149]. A nil return means the
// enumeration recovered exactly the generator antichain without a single
// redundant oracle call.
func Round(seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	dims := 5 + rng.Intn(7)
	nofPoints := 1 + rng.Intn(15)

	bounds := make([]pareto.Interval, dims)
	for i := range bounds {
		lo := rng.Intn(100) - 50
		bounds[i] = pareto.Interval{Lo: lo, Hi: lo + 1 + rng.Intn(100)}
	}

	points := make([]pareto.Point, nofPoints)
	for i := range points {
		p := make(pareto.Point, dims)
		for j, iv := range bounds {
			p[j] = iv.Lo + rng.Intn(iv.Hi-iv.Lo)
		}
		points[i] = p
	}
	generators := pareto.CleanFront(points)

	oracle := &checkingOracle{generators: generators}
	front, err := pareto.Enumerate(oracle.query, bounds)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}

	want := make(map[string]bool, len(generators))
	for _, g := range generators {
		want[g.String()] = true
	}
	seen := make(map[string]bool, len(front))
	for _, x := range front {
		if !want[x.String()] {
			return fmt.Errorf("seed %d: front point %v is not a generator", seed, x)
		}
		if seen[x.String()] {
			return fmt.Errorf("seed %d: front point %v returned twice", seed, x)
		}
		seen[x.String()] = true
	}
	if len(seen) != len(want) {
		return fmt.Errorf("seed %d: recovered %d of %d generators", seed, len(seen), len(want))
	}
	return nil
}

// RunMany executes rounds with consecutive seeds starting at seed, spread
// over the given number of workers (defaulting to the number of CPU cores
// when workers <= 0). Each round is one complete, single-threaded
// enumeration; rounds share no state. progress, if non-nil, is called after
// every finished round with the number of rounds completed so far. The
// first failure is returned after all submitted rounds have drained.
func RunMany(seed int64, rounds, workers int, progress func(done int)) error {
	pool := NewWorkerPool(workers)

	collector := newFailureCollector(progress)
	for i := 0; i < rounds; i++ {
		s := seed + int64(i)
		pool.Submit(func() {
			collector.record(Round(s))
		})
	}
	pool.Shutdown()
	return collector.first()
}
