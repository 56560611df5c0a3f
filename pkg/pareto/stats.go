package pareto

import "time"

// Stats holds counters describing one enumeration run. Pass a Stats to
// Enumerate via WithStats to have it filled in; the struct is reset at the
// start of the call. The counters are written synchronously by the single
// enumeration goroutine, so no locking is involved.
type Stats struct {
	// OracleCalls is the number of answers obtained from the oracle.
	OracleCalls int

	// DeducedSkips is the number of oracle calls avoided because the
	// negative buffer already subsumed the candidate point.
	DeducedSkips int

	// Descents is the number of feasible witnesses localized down to a
	// front point. In a zero-dimensional domain the single candidate needs
	// no localization, so this stays 0 there.
	Descents int

	// PointsFound is the size of the returned front.
	PointsFound int

	// NegativeWitnesses is the number of maximal infeasible witnesses
	// retained at the end of the run.
	NegativeWitnesses int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
