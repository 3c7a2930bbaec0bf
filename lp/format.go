package lp

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// formatNum renders a number the way LP files expect: no exponent, no
// trailing zeros, integral values without a decimal part.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatExpression renders an expression as an LP file fragment.
//
// Multiplication simplifies while rendering: a literal 1 on the left
// disappears and a literal -1 becomes a leading minus, so Mul(Num(1), x)
// renders byte-identically to x. With parenthesized set, every compound
// node is wrapped in parentheses and products use an explicit " * "
// operator; otherwise products separate their factors with a single
// space, the implicit multiplication of the LP format.
//
// Rendering a nil expression panics.
func FormatExpression(e Expression, parenthesized bool) string {
	var b strings.Builder
	writeExpression(&b, e, parenthesized)
	return b.String()
}

func writeExpression(b *strings.Builder, e Expression, parenthesized bool) {
	switch n := e.(type) {
	case literal:
		b.WriteString(formatNum(n.value))
	case addExpr:
		if parenthesized {
			b.WriteByte('(')
		}
		writeExpression(b, n.left, parenthesized)
		b.WriteString(" + ")
		writeExpression(b, n.right, parenthesized)
		if parenthesized {
			b.WriteByte(')')
		}
	case subExpr:
		if parenthesized {
			b.WriteByte('(')
		}
		writeExpression(b, n.left, parenthesized)
		b.WriteString(" - ")
		writeExpression(b, n.right, parenthesized)
		if parenthesized {
			b.WriteByte(')')
		}
	case mulExpr:
		if parenthesized {
			b.WriteByte('(')
		}
		lit, isLit := n.left.(literal)
		switch {
		case isLit && lit.value == 1:
			writeExpression(b, n.right, parenthesized)
		case isLit && lit.value == -1:
			b.WriteByte('-')
			writeExpression(b, n.right, parenthesized)
		default:
			writeExpression(b, n.left, parenthesized)
			if parenthesized {
				b.WriteString(" * ")
			} else {
				b.WriteByte(' ')
			}
			writeExpression(b, n.right, parenthesized)
		}
		if parenthesized {
			b.WriteByte(')')
		}
	case Variable:
		b.WriteString(n.Name())
	default:
		panic(unknownExpression(e))
	}
}

func writeConstraint(b *strings.Builder, c Constraint) {
	writeExpression(b, c.Left, false)
	b.WriteByte(' ')
	b.WriteString(c.Op.String())
	b.WriteByte(' ')
	writeExpression(b, c.Right, false)
}

// LPString renders the problem in CPLEX LP format.
//
// The output always carries every section, in order: a comment header
// with the problem name, the objective (omitted entirely when the
// objective expression is nil), Subject To, Bounds, Generals, Binary,
// and End. Section headers appear even when their body is empty.
//
// Bounds lines cover integer and continuous variables. A variable with
// a lower bound renders as "l <= name" with an optional " <= u"; one
// with only an upper bound as "name <= u". An unbounded continuous
// variable renders as "name free"; an unbounded integer variable gets
// no line and is left to the solver's default.
func (p *Problem) LPString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\\ %s\n\n", p.Name)

	if p.Objective != nil {
		b.WriteString(p.Sense.String())
		b.WriteString("\n  obj: ")
		writeExpression(&b, p.Objective, false)
	}

	b.WriteString("\n\nSubject To\n")
	for i, c := range p.Constraints {
		fmt.Fprintf(&b, "  c%d: ", i+1)
		writeConstraint(&b, c)
		b.WriteByte('\n')
	}

	vars := p.Variables()

	b.WriteString("\nBounds\n")
	for _, v := range vars {
		writeBound(&b, v)
	}

	b.WriteString("\nGenerals\n  ")
	for _, v := range vars {
		if v.Kind() == Integer {
			b.WriteString(v.Name())
			b.WriteByte(' ')
		}
	}

	b.WriteString("\nBinary\n  ")
	for _, v := range vars {
		if v.Kind() == Binary {
			b.WriteString(v.Name())
			b.WriteByte(' ')
		}
	}

	b.WriteString("\nEnd")
	return b.String()
}

func writeBound(b *strings.Builder, v Variable) {
	var lower, upper float64
	switch t := v.(type) {
	case *integerVar:
		lower, upper = t.lower, t.upper
	case *continuousVar:
		lower, upper = t.lower, t.upper
	default:
		return
	}

	switch {
	case !math.IsInf(lower, -1):
		fmt.Fprintf(b, "  %s <= %s", formatNum(lower), v.Name())
		if !math.IsInf(upper, 1) {
			fmt.Fprintf(b, " <= %s", formatNum(upper))
		}
		b.WriteByte('\n')
	case !math.IsInf(upper, 1):
		fmt.Fprintf(b, "  %s <= %s\n", v.Name(), formatNum(upper))
	case v.Kind() == Continuous:
		fmt.Fprintf(b, "  %s free\n", v.Name())
	}
}

// WriteLP renders the problem to w in CPLEX LP format.
func (p *Problem) WriteLP(w io.Writer) error {
	_, err := io.WriteString(w, p.LPString())
	return err
}

// WriteLPFile renders the problem to the file at path, replacing any
// existing content.
func (p *Problem) WriteLPFile(path string) error {
	return os.WriteFile(path, []byte(p.LPString()), 0o644)
}
