package lp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bartolsthoorn/golp/logger"
)

// CbcSolver solves problems with the COIN-OR branch-and-cut command
// line tool.
//
// Run follows the same temp-file protocol as GurobiSolver, invoking
// "cbc <model> solve solution <result>". Unlike Gurobi, cbc records the
// solve status in the solution file itself, so no console scanning is
// needed.
type CbcSolver struct {
	name    string
	command string
}

// CbcOption configures a CbcSolver.
type CbcOption func(*CbcSolver)

// WithCbcCommand overrides the executable to invoke, "cbc" by default.
func WithCbcCommand(command string) CbcOption {
	return func(s *CbcSolver) {
		s.command = command
	}
}

// NewCbcSolver creates a solver that invokes cbc.
func NewCbcSolver(opts ...CbcOption) *CbcSolver {
	s := &CbcSolver{name: "Cbc", command: "cbc"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run solves p, blocking until cbc exits.
func (s *CbcSolver) Run(p *Problem) (*Solution, error) {
	log := logger.Logger()

	modelFile := p.UniqueName() + ".lp"
	solutionFile := p.UniqueName() + ".sol"

	if err := p.WriteLPFile(modelFile); err != nil {
		return nil, err
	}
	defer os.Remove(modelFile)

	cmd := exec.Command(s.command, modelFile, "solve", "solution", solutionFile)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Str("solver", s.name).Str("model", modelFile).Msg("invoking solver")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			writeArtifact(p.UniqueName()+".stdout", stdout.Bytes())
			writeArtifact(p.UniqueName()+".stderr", stderr.Bytes())
			return nil, &Error{Op: "Run", Solver: s.name, Err: err}
		}
		return nil, &Error{Op: "Run", Solver: s.name, Msg: "error running the solver", Err: err}
	}

	solution, err := ReadSolutionFile(s, solutionFile, p)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("solver", s.name).Stringer("status", solution.Status).
		Int("vars", len(solution.VarValues)).Msg("solved")

	return solution, nil
}

// ReadSolution parses a cbc solution file. The first word of the header
// line carries the status: "Optimal" and "Infeasible" map directly,
// anything else is reported as SubOptimal. Each remaining line holds
// "<index> <name> <value> <reduced cost>"; only the name and value are
// kept.
func (s *CbcSolver) ReadSolution(r io.Reader, p *Problem) (*Solution, error) {
	const op = "ReadSolution"

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &Error{Op: op, Solver: s.name, Err: err}
		}
		return nil, newFormatError(op, s.name, "empty solution file")
	}

	status := StatusSubOptimal
	if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
		switch fields[0] {
		case "Optimal":
			status = StatusOptimal
		case "Infeasible":
			status = StatusInfeasible
		}
	}

	values := make(map[string]float64)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			return nil, newFormatError(op, s.name, fmt.Sprintf("want 4 fields, got %d", len(fields)))
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &Error{Op: op, Solver: s.name, Msg: "bad value for " + fields[1], Err: err}
		}
		values[fields[1]] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Op: op, Solver: s.name, Err: err}
	}

	return &Solution{Status: status, VarValues: values, Problem: p}, nil
}
