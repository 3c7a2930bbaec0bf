package lp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCbcReadSolution(t *testing.T) {
	type tc struct {
		Name   string
		Input  string
		Status Status
		Values map[string]float64
	}

	for _, tt := range []tc{
		{
			Name:   "optimal",
			Input:  "Optimal - objective value 16.00000000\n0 x 1 0\n1 y 2.5 0\n",
			Status: StatusOptimal,
			Values: map[string]float64{"x": 1, "y": 2.5},
		},
		{
			Name:   "infeasible",
			Input:  "Infeasible - objective value 0.00000000\n",
			Status: StatusInfeasible,
			Values: map[string]float64{},
		},
		{
			Name:   "stopped reports suboptimal",
			Input:  "Stopped on time limit - objective value 12.00000000\n0 x 1 0\n",
			Status: StatusSubOptimal,
			Values: map[string]float64{"x": 1},
		},
		{
			Name:   "blank status line reports suboptimal",
			Input:  "\n",
			Status: StatusSubOptimal,
			Values: map[string]float64{},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			sol, err := NewCbcSolver().ReadSolution(strings.NewReader(tt.Input), nil)
			require.NoError(t, err)
			require.Equal(t, tt.Status, sol.Status)
			require.Equal(t, tt.Values, sol.VarValues)
		})
	}
}

func TestCbcReadSolutionMalformed(t *testing.T) {
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
			Input:  "Optimal - objective value 0\n0 x 1\n",
			Format: true,
		},
		{
			Name:  "value is not a number",
			Input: "Optimal - objective value 0\n0 x abc 0\n",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := NewCbcSolver().ReadSolution(strings.NewReader(tt.Input), nil)
			require.Error(t, err)
			require.Equal(t, tt.Format, errors.Is(err, ErrSolutionFormat))
		})
	}
}

func TestCbcReadSolutionProblemBackReference(t *testing.T) {
	p := NewProblem("test", Minimize)

	sol, err := NewCbcSolver().ReadSolution(strings.NewReader("Optimal\n"), p)
	require.NoError(t, err)
	require.Same(t, p, sol.Problem)
}
