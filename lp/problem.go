package lp

import (
	"fmt"

	"github.com/google/uuid"
)

// Sense selects the optimization direction.
type Sense int

const (
	// Minimize searches for the smallest objective value.
	Minimize Sense = iota
	// Maximize searches for the largest objective value.
	Maximize
)

// String returns the LP-format keyword for the sense.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "Unknown"
	}
}

// Problem is a symbolic optimization problem: an optional objective, a
// list of constraints, and the variables reachable from them.
//
// Problems are plain data. Build one with NewProblem and the Add*
// methods, or fill the fields directly:
//
//	p := lp.NewProblem("diet", lp.Minimize)
//	p.Objective = lp.Add(lp.Mul(lp.Num(2), x), y)
//	p.AddLeConstraint(lp.Add(x, y), 10)
type Problem struct {
	// Name labels the problem; it appears in the LP file's comment
	// header.
	Name string

	// Sense selects minimization or maximization.
	Sense Sense

	// Objective is the objective expression. When nil the rendered file
	// has no objective section at all, not even the sense keyword.
	Objective Expression

	// Constraints are rendered in insertion order and labeled c1, c2,
	// ... by position.
	Constraints []Constraint

	uniqueName string
}

// NewProblem creates an empty problem with the given name and sense.
func NewProblem(name string, sense Sense) *Problem {
	return &Problem{
		Name:       name,
		Sense:      sense,
		uniqueName: fmt.Sprintf("%s_%s", name, uuid.NewString()),
	}
}

// UniqueName returns the problem's unique name, its name joined with a
// random UUID. Solvers derive their temporary filenames from it so that
// concurrent solves of different problems do not collide. The unique
// name is generated once and stays stable for the life of the problem.
func (p *Problem) UniqueName() string {
	if p.uniqueName == "" {
		p.uniqueName = fmt.Sprintf("%s_%s", p.Name, uuid.NewString())
	}
	return p.uniqueName
}

// AddConstraint appends a constraint.
func (p *Problem) AddConstraint(c Constraint) {
	p.Constraints = append(p.Constraints, c)
}

// AddLeConstraint appends the constraint left <= rhs.
func (p *Problem) AddLeConstraint(left Expression, rhs float64) {
	p.AddConstraint(Constraint{Left: left, Op: LessOrEqual, Right: Num(rhs)})
}

// AddGeConstraint appends the constraint left >= rhs.
func (p *Problem) AddGeConstraint(left Expression, rhs float64) {
	p.AddConstraint(Constraint{Left: left, Op: GreaterOrEqual, Right: Num(rhs)})
}

// AddEqConstraint appends the constraint left = rhs.
func (p *Problem) AddEqConstraint(left Expression, rhs float64) {
	p.AddConstraint(Constraint{Left: left, Op: Equal, Right: Num(rhs)})
}

// Variables returns the problem's variables in first-seen order: the
// objective is walked before the constraints, each expression left to
// right. Duplicate names are returned once, keeping the first
// occurrence. The order is deterministic, so renderings of the same
// problem are byte-for-byte identical.
func (p *Problem) Variables() []Variable {
	var vars []Variable
	seen := make(map[string]struct{})

	var walk func(e Expression)
	walk = func(e Expression) {
		switch n := e.(type) {
		case literal:
		case addExpr:
			walk(n.left)
			walk(n.right)
		case subExpr:
			walk(n.left)
			walk(n.right)
		case mulExpr:
			walk(n.left)
			walk(n.right)
		case Variable:
			if _, ok := seen[n.Name()]; !ok {
				seen[n.Name()] = struct{}{}
				vars = append(vars, n)
			}
		default:
			panic(unknownExpression(e))
		}
	}

	if p.Objective != nil {
		walk(p.Objective)
	}
	for _, c := range p.Constraints {
		walk(c.Left)
		walk(c.Right)
	}
	return vars
}
