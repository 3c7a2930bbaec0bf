package main

import (
	"fmt"
	"log"

	"github.com/bartolsthoorn/golp/lp"
)

func main() {
	// Maximize:   10a + 6b + 4c
	// Subject to:   a +  b +  c <= 100
	//             10a + 4b + 5c <= 600
	//              2a + 2b + 6c <= 300
	// a, b, c integer >= 0
	a := lp.NewInteger("a", 0, lp.Inf())
	b := lp.NewInteger("b", 0, lp.Inf())
	c := lp.NewInteger("c", 0, lp.Inf())

	p := lp.NewProblem("production", lp.Maximize)
	p.Objective = lp.Sum(
		lp.Mul(lp.Num(10), a),
		lp.Mul(lp.Num(6), b),
		lp.Mul(lp.Num(4), c),
	)
	p.AddLeConstraint(lp.Sum(a, b, c), 100)
	p.AddLeConstraint(lp.Sum(lp.Mul(lp.Num(10), a), lp.Mul(lp.Num(4), b), lp.Mul(lp.Num(5), c)), 600)
	p.AddLeConstraint(lp.Sum(lp.Mul(lp.Num(2), a), lp.Mul(lp.Num(2), b), lp.Mul(lp.Num(6), c)), 300)

	fmt.Println(p.LPString())
	fmt.Println()

	solution, err := lp.NewCbcSolver().Run(p)
	if err != nil {
		log.Fatal(err)
	}

	if solution.IsOptimal() {
		fmt.Printf("a = %.0f, b = %.0f, c = %.0f\n",
			solution.Value("a"), solution.Value("b"), solution.Value("c"))
		fmt.Printf("Objective = %.2f\n", lp.Evaluate(p.Objective, solution.VarValues))
	}
}
