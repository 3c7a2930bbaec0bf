// Package lp models linear and mixed-integer optimization problems and
// solves them through external solver executables.
//
// Problems are built from symbolic expressions over named variables,
// serialized to the CPLEX LP text format, and handed to a solver binary
// as a subprocess. The solver's solution file is parsed back into a
// Solution holding a status and the variable values keyed by name.
//
// # Example
//
//	x := lp.NewInteger("x", 0, lp.Inf())
//	y := lp.NewInteger("y", 0, lp.Inf())
//
//	p := lp.NewProblem("knapsack", lp.Maximize)
//	p.Objective = lp.Add(lp.Mul(lp.Num(10), x), lp.Mul(lp.Num(6), y))
//	p.AddLeConstraint(lp.Add(x, y), 10)
//
//	solution, err := lp.NewGurobiSolver().Run(p)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("x =", solution.Value("x"))
//
// Running a solver requires its binary to be installed; building a
// problem and rendering it with LPString does not.
package lp
