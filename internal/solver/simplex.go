// Package solver provides lp.Backend implementations. The only backend today
// is Simplex, built on gonum's phase-1/phase-2 simplex method.
package solver

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	glp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/nutriplan/diet-optimizer/internal/lp"
)

// Simplex solves formulations with gonum's
// optimize/convex/lp.Simplex. The general formulation is rewritten into
// standard form (minimize c'y subject to Ay = b, y >= 0): variables are
// shifted by their lower bounds and every inequality gets a slack or surplus
// column.
//
// A Simplex is owned by a single formulation session and must not be shared.
type Simplex struct {
	lower []float64
	cons  []lp.Constraint
	obj   *lp.Objective
}

// NewSimplex creates an empty backend.
func NewSimplex() *Simplex {
	return &Simplex{}
}

// AddVariable creates a variable bounded below by lowerBound.
func (s *Simplex) AddVariable(lowerBound float64) (lp.Var, error) {
	s.lower = append(s.lower, lowerBound)
	return lp.Var(len(s.lower) - 1), nil
}

// AddConstraint records a constraint for the solve. A constraint referencing
// a variable this backend never created is rejected.
func (s *Simplex) AddConstraint(c lp.Constraint) error {
	for _, v := range c.Expr.Vars() {
		if int(v) < 0 || int(v) >= len(s.lower) {
			return fmt.Errorf("constraint references unknown variable %d", v)
		}
	}
	s.cons = append(s.cons, c)
	return nil
}

// SetObjective records the objective, replacing any previous one.
func (s *Simplex) SetObjective(obj lp.Objective) error {
	for _, v := range obj.Expr.Vars() {
		if int(v) < 0 || int(v) >= len(s.lower) {
			return fmt.Errorf("objective references unknown variable %d", v)
		}
	}
	s.obj = &obj
	return nil
}

// Solve runs the simplex algorithm. Infeasible and unbounded formulations are
// reported through lp.ErrInfeasible and lp.ErrUnbounded; any other gonum
// failure is wrapped as an opaque backend error. The context is checked
// before the algorithm starts; a running solve is not interrupted.
func (s *Simplex) Solve(ctx context.Context) (*lp.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("solve aborted: %w", err)
	}
	if s.obj == nil {
		return nil, errors.New("no objective set")
	}

	n := len(s.lower)
	m := len(s.cons)

	// Minimization cost vector over the shifted variables y = x - lower.
	sign := 1.0
	if s.obj.Dir == lp.Maximize {
		sign = -1.0
	}
	cost := make([]float64, n)
	for j := 0; j < n; j++ {
		cost[j] = sign * s.obj.Expr.Coefficient(lp.Var(j))
	}

	// Shifting x by its lower bounds moves a constant into the objective.
	offset := s.obj.Expr.Const()
	for j := 0; j < n; j++ {
		offset += s.obj.Expr.Coefficient(lp.Var(j)) * s.lower[j]
	}

	if n == 0 {
		return &lp.Result{Values: map[lp.Var]float64{}, Objective: offset}, nil
	}
	if m == 0 {
		return s.solveUnconstrained(cost, offset)
	}

	// One slack or surplus column per inequality row.
	ineq := 0
	for _, c := range s.cons {
		if c.Rel != lp.Equal {
			ineq++
		}
	}

	cols := n + ineq
	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	slack := n
	for i, c := range s.cons {
		rhs := c.Bound - c.Expr.Const()
		for j := 0; j < n; j++ {
			coef := c.Expr.Coefficient(lp.Var(j))
			a.Set(i, j, coef)
			rhs -= coef * s.lower[j]
		}
		switch c.Rel {
		case lp.LessEqual:
			a.Set(i, slack, 1)
			slack++
		case lp.GreaterEqual:
			a.Set(i, slack, -1)
			slack++
		}
		b[i] = rhs
	}

	fullCost := make([]float64, cols)
	copy(fullCost, cost)

	opt, y, err := glp.Simplex(fullCost, a, b, 0, nil)
	if err != nil {
		switch {
		case errors.Is(err, glp.ErrInfeasible):
			return nil, fmt.Errorf("simplex: %w", lp.ErrInfeasible)
		case errors.Is(err, glp.ErrUnbounded):
			return nil, fmt.Errorf("simplex: %w", lp.ErrUnbounded)
		default:
			return nil, fmt.Errorf("simplex: %w", err)
		}
	}

	values := make(map[lp.Var]float64, n)
	for j := 0; j < n; j++ {
		values[lp.Var(j)] = y[j] + s.lower[j]
	}
	return &lp.Result{Values: values, Objective: sign*opt + offset}, nil
}

// solveUnconstrained handles the degenerate constraint-free formulation,
// which gonum's matrix types cannot represent. With every variable bounded
// below and nothing pushing it up, the optimum sits at the lower bounds; a
// negative cost coefficient means the objective recedes without limit.
func (s *Simplex) solveUnconstrained(cost []float64, offset float64) (*lp.Result, error) {
	for _, c := range cost {
		if c < 0 {
			return nil, fmt.Errorf("simplex: %w", lp.ErrUnbounded)
		}
	}
	values := make(map[lp.Var]float64, len(s.lower))
	for j, lb := range s.lower {
		values[lp.Var(j)] = lb
	}
	return &lp.Result{Values: values, Objective: offset}, nil
}
