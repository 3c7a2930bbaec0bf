package lp

import (
	"io"
	"os"
	"strings"

	"github.com/bartolsthoorn/golp/logger"
)

// Solver runs a problem through a solving backend and reports the
// result. Run blocks until the backend finishes.
type Solver interface {
	Run(p *Problem) (*Solution, error)
}

// SolutionParsingSolver is a Solver that can also read its backend's
// solution file format. Backends differ in how they invoke their
// external process and how they infer status; the file parsing is
// exposed separately so it can be reused on files produced outside
// Run, for example ones kept from an earlier solve.
type SolutionParsingSolver interface {
	Solver

	// ReadSolution parses a solution from r for problem p. p may be
	// nil when no back-reference is wanted.
	ReadSolution(r io.Reader, p *Problem) (*Solution, error)
}

// ReadSolutionFile opens the file at path and parses it with s.
func ReadSolutionFile(s SolutionParsingSolver, path string, p *Problem) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.ReadSolution(f, p)
}

// StatusPattern maps a substring of solver console output to a solve
// status. Backends hold an ordered pattern list; the first match wins.
// Replacing a backend's patterns adapts it to a solver version with
// different banner text without touching the invocation protocol.
type StatusPattern struct {
	Substring string
	Status    Status
}

// inferStatus scans console output for the first matching pattern.
func inferStatus(output string, patterns []StatusPattern) (Status, bool) {
	for _, p := range patterns {
		if strings.Contains(output, p.Substring) {
			return p.Status, true
		}
	}
	return StatusSubOptimal, false
}

// writeArtifact keeps solver output next to the model file after a
// failed run. A failure to write is logged and otherwise ignored.
func writeArtifact(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Str("path", path).Msg("could not keep solver output")
	}
}
