package lp

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/bartolsthoorn/golp/logger"
)

// GurobiSolver solves problems with Gurobi's command line tool.
//
// Run writes the problem to "<unique name>.lp" in the working
// directory, invokes gurobi_cl with a ResultFile argument pointing at
// "<unique name>.sol", and parses that file. The model file is removed
// afterwards; the solution file is left in place. On a non-zero exit
// the solver's output is kept in "<unique name>.stdout" and
// "<unique name>.stderr" for inspection.
type GurobiSolver struct {
	name     string
	command  string
	patterns []StatusPattern
}

// GurobiOption configures a GurobiSolver.
type GurobiOption func(*GurobiSolver)

// WithGurobiCommand overrides the executable to invoke, "gurobi_cl" by
// default. Useful when the tool is not on PATH.
func WithGurobiCommand(command string) GurobiOption {
	return func(s *GurobiSolver) {
		s.command = command
	}
}

// WithGurobiStatusPatterns replaces the patterns used to infer the
// solve status from console output.
func WithGurobiStatusPatterns(patterns []StatusPattern) GurobiOption {
	return func(s *GurobiSolver) {
		s.patterns = patterns
	}
}

// NewGurobiSolver creates a solver that invokes gurobi_cl.
func NewGurobiSolver(opts ...GurobiOption) *GurobiSolver {
	s := &GurobiSolver{
		name:    "Gurobi",
		command: "gurobi_cl",
		patterns: []StatusPattern{
			{Substring: "Optimal objective", Status: StatusOptimal},
			{Substring: "infesible", Status: StatusInfeasible}, // sic
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run solves p, blocking until gurobi_cl exits.
//
// The status of the returned solution comes from scanning the solver's
// console output against the configured patterns; when nothing matches,
// the parser's default stands.
func (s *GurobiSolver) Run(p *Problem) (*Solution, error) {
	log := logger.Logger()

	modelFile := p.UniqueName() + ".lp"
	solutionFile := p.UniqueName() + ".sol"

	if err := p.WriteLPFile(modelFile); err != nil {
		return nil, err
	}
	defer os.Remove(modelFile)

	cmd := exec.Command(s.command, "ResultFile="+solutionFile, modelFile)
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

	if status, ok := inferStatus(stdout.String(), s.patterns); ok {
		adjusted := *solution
		adjusted.Status = status
		solution = &adjusted
	}

	log.Debug().Str("solver", s.name).Stringer("status", solution.Status).
		Int("vars", len(solution.VarValues)).Msg("solved")

	return solution, nil
}

// ReadSolution parses a Gurobi solution file: a header line followed by
// "name value" pairs, with '#' comment lines skipped.
func (s *GurobiSolver) ReadSolution(r io.Reader, p *Problem) (*Solution, error) {
	return ParseSolution(r, p)
}
