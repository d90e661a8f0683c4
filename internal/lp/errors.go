package lp

import "errors"

var (
	// ErrDuplicateItem is returned when an item is registered twice.
	ErrDuplicateItem = errors.New("item already registered")

	// ErrUnknownItem is returned when an item has no registered variable.
	ErrUnknownItem = errors.New("unknown item")

	// ErrUnknownCategory is returned when a guideline references a category
	// no registered item contributes to.
	ErrUnknownCategory = errors.New("no item contributes to category")

	// ErrNotSolved is returned when solution values are read before a
	// successful solve.
	ErrNotSolved = errors.New("formulation not solved")

	// ErrSessionState is returned when an operation is invoked in a session
	// state that does not permit it.
	ErrSessionState = errors.New("operation not valid in current session state")

	// ErrInfeasible is reported by a backend when the constraints admit no
	// assignment.
	ErrInfeasible = errors.New("formulation is infeasible")

	// ErrUnbounded is reported by a backend when the objective has no finite
	// optimum.
	ErrUnbounded = errors.New("objective is unbounded")
)
