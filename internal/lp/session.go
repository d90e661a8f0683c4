package lp

import (
	"context"
	"errors"
	"fmt"
)

// BoundKind classifies how a guideline bound is applied.
type BoundKind int

const (
	// Minimum generates an expression >= bound constraint.
	Minimum BoundKind = iota
	// Maximum generates an expression <= bound constraint.
	Maximum
	// Informational carries no constraint and is skipped by translation.
	Informational
)

// Guideline bounds a category's aggregated total. A Minimum or Maximum
// guideline produces exactly one constraint; an Informational one produces
// none.
type Guideline struct {
	Category string
	Bound    float64
	Kind     BoundKind
}

// State is the lifecycle phase of a formulation session.
type State int

const (
	// Setup is the initial state, in which items are registered.
	Setup State = iota
	// Formulating is entered once categories have been aggregated;
	// guidelines and the objective are applied here.
	Formulating
	// Solving is the transient state while the backend runs.
	Solving
	// Solved is terminal; solution values may be read.
	Solved
	// Failed is terminal; the formulation could not be solved.
	Failed
)

// DefaultMinTolerance is the offset added to Minimum guideline bounds so that
// a total exactly on the bound does not count as strictly above it.
const DefaultMinTolerance = 0.0001

// Session owns one linear-program formulation from item registration through
// solving. It is exclusively owned by a single caller; it is not safe for
// concurrent use. A session moves Setup -> Formulating -> Solving and then
// terminally to Solved or Failed; no transition skips a phase or leaves a
// terminal state.
type Session struct {
	backend  Backend
	registry *Registry
	totals   CategoryTotals
	state    State
	minTol   float64
	result   *Result
}

// Option configures a session.
type Option func(*Session)

// WithMinTolerance overrides the offset added to Minimum guideline bounds.
// The reference behavior applies the offset to Minimum bounds only; pass 0
// for exact minimum constraints.
func WithMinTolerance(eps float64) Option {
	return func(s *Session) {
		s.minTol = eps
	}
}

// NewSession creates a session formulating onto the given backend.
func NewSession(b Backend, opts ...Option) *Session {
	s := &Session{
		backend:  b,
		registry: NewRegistry(b),
		state:    Setup,
		minTol:   DefaultMinTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the session's current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Registry exposes the session's variable registry for lookups.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Register creates the decision variable for an item. Only permitted during
// Setup.
func (s *Session) Register(item string) (Var, error) {
	if s.state != Setup {
		return 0, fmt.Errorf("register after setup: %w", ErrSessionState)
	}
	return s.registry.Register(item)
}

// Aggregate sums per-category contributions and moves the session from Setup
// to Formulating.
func (s *Session) Aggregate(props []ItemProperty) error {
	if s.state != Setup {
		return fmt.Errorf("aggregate: %w", ErrSessionState)
	}

	totals, err := AggregateCategories(s.registry, props)
	if err != nil {
		return err
	}

	s.totals = totals
	s.state = Formulating
	return nil
}

// Totals exposes the aggregated category expressions. Only valid once the
// session has left Setup.
func (s *Session) Totals() (CategoryTotals, error) {
	if s.state == Setup {
		return CategoryTotals{}, fmt.Errorf("totals before aggregation: %w", ErrSessionState)
	}
	return s.totals, nil
}

// ApplyGuidelines translates guidelines into constraints against the
// aggregated category expressions. Informational guidelines are skipped.
// A Minimum bound gets the session's tolerance added; a Maximum bound is
// applied exactly.
func (s *Session) ApplyGuidelines(guidelines []Guideline) error {
	if s.state != Formulating {
		return fmt.Errorf("apply guidelines: %w", ErrSessionState)
	}

	for _, g := range guidelines {
		if g.Kind == Informational {
			continue
		}

		total, ok := s.totals.Expr(g.Category)
		if !ok {
			return fmt.Errorf("guideline on %q: %w", g.Category, ErrUnknownCategory)
		}

		var c Constraint
		switch g.Kind {
		case Minimum:
			c = Constraint{Expr: total, Rel: GreaterEqual, Bound: g.Bound + s.minTol}
		case Maximum:
			c = Constraint{Expr: total, Rel: LessEqual, Bound: g.Bound}
		default:
			return fmt.Errorf("guideline on %q: unknown bound kind %d", g.Category, g.Kind)
		}

		if err := s.backend.AddConstraint(c); err != nil {
			return fmt.Errorf("guideline on %q: %w", g.Category, err)
		}
	}

	return nil
}

// ItemCost pairs an item with its per-unit cost.
type ItemCost struct {
	Item string
	Cost float64
}

// MinimizeCost sets the objective to minimize the summed cost of all items.
// An entry naming an unregistered item fails with ErrUnknownItem.
func (s *Session) MinimizeCost(costs []ItemCost) error {
	if s.state != Formulating {
		return fmt.Errorf("set objective: %w", ErrSessionState)
	}

	terms := make([]Expr, 0, len(costs))
	for _, ic := range costs {
		v, err := s.registry.Lookup(ic.Item)
		if err != nil {
			return fmt.Errorf("objective: %w", err)
		}
		terms = append(terms, Term(v, ic.Cost))
	}

	obj := Objective{Expr: Sum(terms...), Dir: Minimize}
	if err := s.backend.SetObjective(obj); err != nil {
		return fmt.Errorf("objective: %w", err)
	}
	return nil
}

// Solve hands the formulation to the backend. On success the session becomes
// Solved and values may be read; on any failure the session becomes Failed
// and stays there. Infeasible and unbounded outcomes are reported through the
// ErrInfeasible and ErrUnbounded sentinels; other backend errors are wrapped.
func (s *Session) Solve(ctx context.Context) error {
	if s.state != Formulating {
		return fmt.Errorf("solve: %w", ErrSessionState)
	}

	s.state = Solving
	result, err := s.backend.Solve(ctx)
	if err != nil {
		s.state = Failed
		if errors.Is(err, ErrInfeasible) || errors.Is(err, ErrUnbounded) {
			return err
		}
		return fmt.Errorf("solver backend: %w", err)
	}

	s.result = result
	s.state = Solved
	return nil
}

// Value returns the solved quantity for an item. It fails with ErrNotSolved
// unless the session is in the Solved state, and with ErrUnknownItem for an
// unregistered item.
func (s *Session) Value(item string) (float64, error) {
	if s.state != Solved {
		return 0, fmt.Errorf("value of %q: %w", item, ErrNotSolved)
	}

	v, err := s.registry.Lookup(item)
	if err != nil {
		return 0, err
	}
	return s.result.Value(v), nil
}

// Objective returns the achieved objective value, or ErrNotSolved before a
// successful solve.
func (s *Session) Objective() (float64, error) {
	if s.state != Solved {
		return 0, ErrNotSolved
	}
	return s.result.Objective, nil
}
