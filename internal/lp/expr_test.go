package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm(t *testing.T) {
	e := Term(Var(3), 2.5)

	assert.Equal(t, 2.5, e.Coefficient(Var(3)))
	assert.Equal(t, 0.0, e.Coefficient(Var(0)))
	assert.Equal(t, 0.0, e.Const())
	assert.Equal(t, []Var{3}, e.Vars())
}

func TestExprPlus_SharedVariablesSum(t *testing.T) {
	a := Term(Var(0), 1.5).Plus(Term(Var(1), 2))
	b := Term(Var(1), 3).Plus(Constant(4))

	sum := a.Plus(b)

	assert.Equal(t, 1.5, sum.Coefficient(Var(0)))
	assert.Equal(t, 5.0, sum.Coefficient(Var(1)))
	assert.Equal(t, 4.0, sum.Const())
}

func TestExprPlus_DoesNotMutateOperands(t *testing.T) {
	a := Term(Var(0), 1)
	b := Term(Var(0), 2)

	_ = a.Plus(b)

	assert.Equal(t, 1.0, a.Coefficient(Var(0)))
	assert.Equal(t, 2.0, b.Coefficient(Var(0)))
}

func TestExprPlus_Commutative(t *testing.T) {
	a := Term(Var(0), 1.25).Plus(Term(Var(2), -3))
	b := Term(Var(1), 0.5).Plus(Constant(7))

	ab := a.Plus(b)
	ba := b.Plus(a)

	assert.Equal(t, ab.Const(), ba.Const())
	for _, v := range ab.Vars() {
		assert.Equal(t, ab.Coefficient(v), ba.Coefficient(v))
	}
	assert.Equal(t, ab.Vars(), ba.Vars())
}

func TestExprPlus_ZeroSumCoefficientKept(t *testing.T) {
	sum := Term(Var(0), 1).Plus(Term(Var(0), -1))

	assert.Equal(t, 0.0, sum.Coefficient(Var(0)))
	assert.Equal(t, []Var{0}, sum.Vars(), "cancelled variable must remain part of the expression")
}

func TestExprScale(t *testing.T) {
	e := Term(Var(0), 2).Plus(Constant(3)).Scale(-2)

	assert.Equal(t, -4.0, e.Coefficient(Var(0)))
	assert.Equal(t, -6.0, e.Const())
}

func TestSum(t *testing.T) {
	total := Sum(
		Term(Var(0), 1),
		Term(Var(1), 2),
		Term(Var(0), 3),
		Constant(0.5),
	)

	assert.Equal(t, 4.0, total.Coefficient(Var(0)))
	assert.Equal(t, 2.0, total.Coefficient(Var(1)))
	assert.Equal(t, 0.5, total.Const())
}

func TestSum_Empty(t *testing.T) {
	total := Sum()

	assert.Empty(t, total.Vars())
	assert.Equal(t, 0.0, total.Const())
}

func TestExprVars_Sorted(t *testing.T) {
	e := Term(Var(5), 1).Plus(Term(Var(1), 1)).Plus(Term(Var(3), 1))

	assert.Equal(t, []Var{1, 3, 5}, e.Vars())
}

func TestExprEval(t *testing.T) {
	e := Term(Var(0), 2).Plus(Term(Var(1), 3)).Plus(Constant(1))

	values := map[Var]float64{0: 4, 1: 5}
	got := e.Eval(func(v Var) float64 { return values[v] })

	assert.InDelta(t, 2*4+3*5+1, got, 1e-12)
}
