package lp

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSolution(t *testing.T) {
	type tc struct {
		Name   string
		Input  string
		Values map[string]float64
	}

	for _, tt := range []tc{
		{
			Name:   "header and pairs",
			Input:  "header\nx1 1.5\nx2 2.0\n",
			Values: map[string]float64{"x1": 1.5, "x2": 2},
		},
		{
			Name:   "header only",
			Input:  "# Solution for model test\n",
			Values: map[string]float64{},
		},
		{
			Name:   "comment lines skipped",
			Input:  "header\n# Objective value = 3\nx 1\n",
			Values: map[string]float64{"x": 1},
		},
		{
			Name:   "duplicate names keep the last value",
			Input:  "header\nx 1\nx 2\n",
			Values: map[string]float64{"x": 2},
		},
		{
			Name:   "no trailing newline",
			Input:  "header\nx 4",
			Values: map[string]float64{"x": 4},
		},
		{
			Name:   "scientific notation",
			Input:  "header\nx 1.5e2\n",
			Values: map[string]float64{"x": 150},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			sol, err := ParseSolution(strings.NewReader(tt.Input), nil)
			require.NoError(t, err)
			require.Equal(t, StatusOptimal, sol.Status)
			require.Equal(t, tt.Values, sol.VarValues)
		})
	}
}

func TestParseSolutionMalformed(t *testing.T) {
	type tc struct {
		Name   string
		Input  string
		Format bool // expect ErrSolutionFormat
	}

	for _, tt := range []tc{
		{
			Name:   "empty input",
			Input:  "",
			Format: true,
		},
		{
			Name:   "three fields",
			Input:  "header\nx 1 2\n",
			Format: true,
		},
		{
			Name:   "one field",
			Input:  "header\nx\n",
			Format: true,
		},
		{
			Name:   "blank body line",
			Input:  "header\n\nx 1\n",
			Format: true,
		},
		{
			Name:  "value is not a number",
			Input: "header\nx abc\n",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := ParseSolution(strings.NewReader(tt.Input), nil)
			require.Error(t, err)
			require.Equal(t, tt.Format, errors.Is(err, ErrSolutionFormat))

			if !tt.Format {
				var numErr *strconv.NumError
				require.ErrorAs(t, err, &numErr)
			}
		})
	}
}

// Parsing aborts at the first malformed line; values seen before it are
// not returned.
func TestParseSolutionAbortsEarly(t *testing.T) {
	sol, err := ParseSolution(strings.NewReader("header\nx 1\ny oops\nz 3\n"), nil)
	require.Error(t, err)
	require.Nil(t, sol)
}

func TestParseSolutionProblemBackReference(t *testing.T) {
	p := NewProblem("test", Minimize)

	sol, err := ParseSolution(strings.NewReader("header\nx 1\n"), p)
	require.NoError(t, err)
	require.Same(t, p, sol.Problem)

	sol, err = ParseSolution(strings.NewReader("header\n"), nil)
	require.NoError(t, err)
	require.Nil(t, sol.Problem)
}

func TestSolutionValue(t *testing.T) {
	sol := &Solution{
		Status:    StatusOptimal,
		VarValues: map[string]float64{"x": 1.5},
	}

	require.InDelta(t, 1.5, sol.Value("x"), 1e-9)
	require.Zero(t, sol.Value("missing"))
	require.True(t, sol.IsOptimal())
	require.False(t, sol.IsInfeasible())
}
