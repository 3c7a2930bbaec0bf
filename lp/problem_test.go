package lp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVariables checks the first-seen collection order: objective
// before constraints, each expression left to right.
func TestVariables(t *testing.T) {
	x := NewInteger("x", 0, Inf())
	y := NewInteger("y", 0, Inf())
	z := NewContinuous("z", NegInf(), Inf())
	b := NewBinary("b")

	p := NewProblem("test", Minimize)
	p.Objective = Add(Mul(Num(2), y), x)
	p.AddLeConstraint(Add(z, x), 4)
	p.AddGeConstraint(b, 0)

	names := make([]string, 0, 4)
	for _, v := range p.Variables() {
		names = append(names, v.Name())
	}
	require.Equal(t, []string{"y", "x", "z", "b"}, names)
}

func TestVariablesDeduplicatesByName(t *testing.T) {
	first := NewInteger("x", 0, 5)
	second := NewInteger("x", 0, 99)

	p := NewProblem("test", Minimize)
	p.Objective = Add(first, second)

	vars := p.Variables()
	require.Len(t, vars, 1)
	require.Same(t, first, vars[0])
}

func TestVariablesNoObjective(t *testing.T) {
	p := NewProblem("test", Minimize)
	require.Empty(t, p.Variables())

	p.AddLeConstraint(NewBinary("b"), 1)
	require.Len(t, p.Variables(), 1)
}

func TestUniqueName(t *testing.T) {
	p := NewProblem("diet", Minimize)

	name := p.UniqueName()
	require.True(t, strings.HasPrefix(name, "diet_"))
	require.Equal(t, name, p.UniqueName())

	other := NewProblem("diet", Minimize)
	require.NotEqual(t, name, other.UniqueName())
}

// A zero-value Problem works too; the unique name is then generated on
// first use.
func TestUniqueNameZeroValue(t *testing.T) {
	p := &Problem{Name: "adhoc"}

	name := p.UniqueName()
	require.True(t, strings.HasPrefix(name, "adhoc_"))
	require.Equal(t, name, p.UniqueName())
}

func TestAddConstraintHelpers(t *testing.T) {
	x := NewInteger("x", 0, Inf())
	y := NewInteger("y", 0, Inf())

	p := NewProblem("test", Minimize)
	p.AddLeConstraint(Add(x, y), 10)
	p.AddGeConstraint(x, 1)
	p.AddEqConstraint(y, 2.5)

	require.Len(t, p.Constraints, 3)
	require.Equal(t, "x + y <= 10", p.Constraints[0].String())
	require.Equal(t, "x >= 1", p.Constraints[1].String())
	require.Equal(t, "y = 2.5", p.Constraints[2].String())
}

func TestEvaluate(t *testing.T) {
	x := NewInteger("x", 0, Inf())
	y := NewInteger("y", 0, Inf())

	values := map[string]float64{"x": 3, "y": 4}

	require.InDelta(t, 10, Evaluate(Add(Mul(Num(2), x), y), values), 1e-9)
	require.InDelta(t, -1, Evaluate(Sub(x, y), values), 1e-9)
	require.InDelta(t, 12, Evaluate(Mul(x, y), values), 1e-9)
	require.InDelta(t, 7, Evaluate(Sum(x, y), values), 1e-9)
	require.InDelta(t, 5, Evaluate(Num(5), nil), 1e-9)

	// Unknown names read as 0.
	require.InDelta(t, 3, Evaluate(Add(x, NewInteger("other", 0, 1)), values), 1e-9)
}

func TestEvaluateNilPanics(t *testing.T) {
	require.Panics(t, func() {
		Evaluate(nil, nil)
	})
}
