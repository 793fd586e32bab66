package scheduler

import (
	"time"

	"github.com/nextmv-io/sdk/mip"
)

// DefaultSolveBudget is the wall-clock budget of every solve: Generate
// always passes it to solve, and no ScheduleInput or Constraints field
// overrides it.
const DefaultSolveBudget = 10 * time.Second

// solveResult is the post-solve view the result assembler needs: whether a
// usable solution was found, and if so, a reader for any variable's
// realized value.
type solveResult struct {
	found    bool
	value    func(v mip.Bool) bool
	floatVal func(v mip.Float) float64
}

// solve invokes the HiGHS-backed MILP solver under budget and interprets its
// status per spec.md §4.5: optimal or feasible extracts a solution, anything
// else (infeasible, or budget exhausted with nothing feasible) reports not
// found so the caller can raise the single "Solver infeasible" alert.
//
// Each call builds a fresh Model and Solver; spec.md §5 requires that two
// concurrent solves never share solver-library state, and nextmv's
// NewSolver/NewModel are never reused across calls here.
func solve(bm *builtModel, budget time.Duration) (solveResult, error) {
	if budget <= 0 {
		budget = DefaultSolveBudget
	}

	solver, err := mip.NewSolver(mip.Highs, bm.model)
	if err != nil {
		return solveResult{}, err
	}

	options := mip.NewSolveOptions()
	if err := options.SetMaximumDuration(budget); err != nil {
		return solveResult{}, err
	}

	solution, err := solver.Solve(options)
	if err != nil {
		return solveResult{}, err
	}

	if solution == nil || (!solution.IsOptimal() && !solution.IsSubOptimal()) {
		return solveResult{found: false}, nil
	}

	return solveResult{
		found: true,
		value: func(v mip.Bool) bool {
			return solution.Value(v) >= 0.5
		},
		floatVal: func(v mip.Float) float64 {
			return solution.Value(v)
		},
	}, nil
}
