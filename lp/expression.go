package lp

import "fmt"

// Expression is a node in a symbolic linear expression tree.
//
// Expressions are immutable: composing them allocates new nodes and
// never rewrites the operands. The set of implementations is closed;
// build expressions with Num, Add, Sub, Mul, Sum and the variable
// constructors.
type Expression interface {
	isExpression()
}

type literal struct {
	value float64
}

type addExpr struct {
	left, right Expression
}

type subExpr struct {
	left, right Expression
}

type mulExpr struct {
	left, right Expression
}

func (literal) isExpression() {}
func (addExpr) isExpression() {}
func (subExpr) isExpression() {}
func (mulExpr) isExpression() {}

func (e literal) String() string { return FormatExpression(e, false) }
func (e addExpr) String() string { return FormatExpression(e, false) }
func (e subExpr) String() string { return FormatExpression(e, false) }
func (e mulExpr) String() string { return FormatExpression(e, false) }

// Num returns a literal constant expression.
func Num(v float64) Expression {
	return literal{value: v}
}

// Add returns the sum of two expressions.
func Add(left, right Expression) Expression {
	return addExpr{left: left, right: right}
}

// Sub returns the difference of two expressions.
func Sub(left, right Expression) Expression {
	return subExpr{left: left, right: right}
}

// Mul returns the product of two expressions. A literal 1 or -1 on the
// left stays in the tree; it only disappears when rendering.
func Mul(left, right Expression) Expression {
	return mulExpr{left: left, right: right}
}

// Sum folds terms into a chain of additions, left to right.
// The sum of no terms is the literal 0.
func Sum(terms ...Expression) Expression {
	if len(terms) == 0 {
		return Num(0)
	}
	e := terms[0]
	for _, t := range terms[1:] {
		e = Add(e, t)
	}
	return e
}

// Evaluate computes the numeric value of an expression, reading
// variables from values by name. Names missing from the map count as 0,
// so a Solution's VarValues map can be passed directly, for example to
// recompute the objective value after a solve.
func Evaluate(e Expression, values map[string]float64) float64 {
	switch n := e.(type) {
	case literal:
		return n.value
	case addExpr:
		return Evaluate(n.left, values) + Evaluate(n.right, values)
	case subExpr:
		return Evaluate(n.left, values) - Evaluate(n.right, values)
	case mulExpr:
		return Evaluate(n.left, values) * Evaluate(n.right, values)
	case Variable:
		return values[n.Name()]
	default:
		panic(unknownExpression(e))
	}
}

func unknownExpression(e Expression) string {
	return fmt.Sprintf("lp: unknown expression type %T", e)
}
