package lp

import "strings"

// Comparison is a constraint relation.
type Comparison int

const (
	// LessOrEqual renders as "<=".
	LessOrEqual Comparison = iota
	// GreaterOrEqual renders as ">=".
	GreaterOrEqual
	// Equal renders as "=".
	Equal
)

// String returns the LP-format operator.
func (c Comparison) String() string {
	switch c {
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	case Equal:
		return "="
	default:
		return "Unknown"
	}
}

// Constraint relates two expressions. Constraints are rendered exactly
// as written; nothing is moved across the operator or simplified.
type Constraint struct {
	Left  Expression
	Op    Comparison
	Right Expression
}

// NewConstraint creates a constraint relating left and right.
func NewConstraint(left Expression, op Comparison, right Expression) Constraint {
	return Constraint{Left: left, Op: op, Right: right}
}

// String returns the constraint as it appears in an LP file body,
// without the label prefix.
func (c Constraint) String() string {
	var b strings.Builder
	writeConstraint(&b, c)
	return b.String()
}
