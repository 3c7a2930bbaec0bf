package lp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Status classifies how conclusively a solve completed.
type Status int

const (
	// StatusOptimal indicates the solver proved optimality.
	StatusOptimal Status = iota
	// StatusSubOptimal indicates a solution without a proof of
	// optimality.
	StatusSubOptimal
	// StatusInfeasible indicates the problem admits no solution.
	StatusInfeasible
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusSubOptimal:
		return "SubOptimal"
	case StatusInfeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

// Solution contains the results of running a solver on a problem.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status Status

	// VarValues maps variable names to their solved values.
	VarValues map[string]float64

	// Problem points back to the solved problem when known. It may be
	// nil; a solution never owns its problem.
	Problem *Problem
}

// IsOptimal returns true if the solver proved optimality.
func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// IsInfeasible returns true if the problem was reported infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.Status == StatusInfeasible
}

// Value returns the solved value for a variable by name.
// Returns 0 if the name is not part of the solution.
func (s *Solution) Value(name string) float64 {
	return s.VarValues[name]
}

// ParseSolution reads a solution file of the common header-then-pairs
// shape shared by LP solvers: the first line is a header and is
// discarded, lines starting with '#' are skipped, and every other line
// must hold exactly a variable name and a numeric value. Duplicate
// names keep the last value read. Parsing stops at the first malformed
// line; an empty input is malformed, since the header is mandatory.
//
// The returned solution carries StatusOptimal, the only status the file
// itself can justify. Adapters that can infer more from their solver's
// console output adjust the status afterwards. p may be nil when no
// back-reference is wanted.
func ParseSolution(r io.Reader, p *Problem) (*Solution, error) {
	const op = "ParseSolution"

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &Error{Op: op, Err: err}
		}
		return nil, newFormatError(op, "", "empty solution file")
	}

	values := make(map[string]float64)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, newFormatError(op, "", fmt.Sprintf("want 2 fields, got %d", len(fields)))
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &Error{Op: op, Msg: "bad value for " + fields[0], Err: err}
		}
		values[fields[0]] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Op: op, Err: err}
	}

	return &Solution{Status: StatusOptimal, VarValues: values, Problem: p}, nil
}
