package lp

import "context"

// Backend is the capability set a solving backend must provide. The
// formulation engine depends only on this interface; choosing a concrete
// backend is a wiring concern of the caller.
//
// Solve reports terminal failures through the ErrInfeasible and ErrUnbounded
// sentinels (possibly wrapped). Any other error is an opaque backend failure
// and is surfaced as-is.
type Backend interface {
	// AddVariable creates a decision variable bounded below by lowerBound
	// and unbounded above.
	AddVariable(lowerBound float64) (Var, error)

	// AddConstraint adds a constraint to the formulation.
	AddConstraint(c Constraint) error

	// SetObjective sets the objective. Calling it again replaces the
	// previous objective.
	SetObjective(obj Objective) error

	// Solve runs the backend's algorithm. It may block; cancellation
	// support is backend-specific.
	Solve(ctx context.Context) (*Result, error)
}

// Result is the outcome of a successful solve: an assignment for every
// variable the backend created, and the achieved objective value. A Result is
// read-only.
type Result struct {
	Values    map[Var]float64
	Objective float64
}

// Value returns the assigned value of v, or 0 when v is not in the result.
func (r *Result) Value(v Var) float64 {
	return r.Values[v]
}
