// Package lp implements a linear-program formulation engine: decision
// variables, a small expression algebra, category aggregation, guideline
// translation and a solver-backend contract. The numeric solving algorithm
// itself lives behind the Backend interface; see internal/solver for the
// gonum-based implementation.
package lp

import "sort"

// Var is an opaque handle to a decision variable. Variables are created by a
// Backend through the Registry and are only ever read afterwards.
type Var int

// Expr is a linear combination of variables plus a constant term. Expr values
// are immutable; all operations return a new expression and never modify their
// receivers or arguments.
type Expr struct {
	terms    map[Var]float64
	constant float64
}

// Term builds the single-term expression coef*v.
func Term(v Var, coef float64) Expr {
	return Expr{terms: map[Var]float64{v: coef}}
}

// Constant builds a variable-free expression with the given constant value.
func Constant(c float64) Expr {
	return Expr{constant: c}
}

// Plus returns the sum of e and other. Coefficients for variables appearing
// in both expressions are added; a coefficient that sums to zero is kept, not
// dropped, so the variable remains part of the expression.
func (e Expr) Plus(other Expr) Expr {
	terms := make(map[Var]float64, len(e.terms)+len(other.terms))
	for v, c := range e.terms {
		terms[v] = c
	}
	for v, c := range other.terms {
		terms[v] += c
	}
	return Expr{terms: terms, constant: e.constant + other.constant}
}

// Scale returns the expression with every coefficient and the constant term
// multiplied by f.
func (e Expr) Scale(f float64) Expr {
	terms := make(map[Var]float64, len(e.terms))
	for v, c := range e.terms {
		terms[v] = c * f
	}
	return Expr{terms: terms, constant: e.constant * f}
}

// Sum adds a sequence of expressions into one.
func Sum(exprs ...Expr) Expr {
	total := Expr{terms: make(map[Var]float64)}
	for _, e := range exprs {
		for v, c := range e.terms {
			total.terms[v] += c
		}
		total.constant += e.constant
	}
	return total
}

// Coefficient returns the coefficient of v, or 0 when v does not appear.
func (e Expr) Coefficient(v Var) float64 {
	return e.terms[v]
}

// Const returns the constant term.
func (e Expr) Const() float64 {
	return e.constant
}

// Vars returns the variables appearing in the expression in ascending handle
// order, so callers iterating an expression see a stable order.
func (e Expr) Vars() []Var {
	vars := make([]Var, 0, len(e.terms))
	for v := range e.terms {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}

// Eval computes the value of the expression under the given assignment.
func (e Expr) Eval(value func(Var) float64) float64 {
	total := e.constant
	for v, c := range e.terms {
		total += c * value(v)
	}
	return total
}
