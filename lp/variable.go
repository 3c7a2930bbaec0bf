package lp

import "math"

// VariableKind discriminates the three variable families of the LP
// format.
type VariableKind int

const (
	// Binary indicates a 0/1 variable, listed in the Binary section.
	Binary VariableKind = iota
	// Integer indicates an integer variable, listed in the Generals section.
	Integer
	// Continuous indicates a real-valued variable.
	Continuous
)

// String returns a human-readable representation of the variable kind.
func (k VariableKind) String() string {
	switch k {
	case Binary:
		return "Binary"
	case Integer:
		return "Integer"
	case Continuous:
		return "Continuous"
	default:
		return "Unknown"
	}
}

// Variable is a named decision variable. A variable is itself an
// Expression and can be used directly when composing trees. Identity is
// by name: two variables with the same name refer to the same column.
type Variable interface {
	Expression

	// Name returns the variable's name, written verbatim to LP files.
	Name() string

	// Kind returns the variable family.
	Kind() VariableKind
}

// Inf returns positive infinity, suitable for an unbounded upper bound.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for an unbounded lower bound.
func NegInf() float64 {
	return math.Inf(-1)
}

type binaryVar struct {
	name string
}

type integerVar struct {
	name  string
	lower float64
	upper float64
}

type continuousVar struct {
	name  string
	lower float64
	upper float64
}

func (*binaryVar) isExpression()     {}
func (*integerVar) isExpression()    {}
func (*continuousVar) isExpression() {}

func (v *binaryVar) Name() string     { return v.name }
func (v *integerVar) Name() string    { return v.name }
func (v *continuousVar) Name() string { return v.name }

func (*binaryVar) Kind() VariableKind     { return Binary }
func (*integerVar) Kind() VariableKind    { return Integer }
func (*continuousVar) Kind() VariableKind { return Continuous }

func (v *binaryVar) String() string     { return v.name }
func (v *integerVar) String() string    { return v.name }
func (v *continuousVar) String() string { return v.name }

// NewBinary creates a 0/1 variable.
func NewBinary(name string) Variable {
	return &binaryVar{name: name}
}

// NewInteger creates an integer variable with the given bounds.
// Use NegInf() and Inf() to leave a side unbounded.
func NewInteger(name string, lower, upper float64) Variable {
	return &integerVar{name: name, lower: lower, upper: upper}
}

// NewContinuous creates a real-valued variable with the given bounds.
// Use NegInf() and Inf() to leave a side unbounded.
func NewContinuous(name string, lower, upper float64) Variable {
	return &continuousVar{name: name, lower: lower, upper: upper}
}
