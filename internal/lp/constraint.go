package lp

// Relation is the comparison between a constraint's expression and its bound.
type Relation int

const (
	GreaterEqual Relation = iota
	LessEqual
	Equal
)

// String returns the mathematical symbol for the relation.
func (r Relation) String() string {
	switch r {
	case GreaterEqual:
		return ">="
	case LessEqual:
		return "<="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// Constraint bounds an expression's value. Constraints are immutable once
// handed to a backend.
type Constraint struct {
	Expr  Expr
	Rel   Relation
	Bound float64
}

// Direction selects between minimization and maximization of an objective.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Objective is the expression a backend optimizes, with its direction.
type Objective struct {
	Expr Expr
	Dir  Direction
}
