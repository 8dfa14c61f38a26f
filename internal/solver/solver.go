// Package solver wires a built mip.Model to the "highs" provider and
// extracts a domain.Solution, following the solve/format split of the
// Order-Fulfillment-with-MIP demo.
package solver

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/vrperr"
)

// Status mirrors the adapter-facing status of spec §4.8.
type Status string

const (
	StatusOptimal     Status = "optimal"
	StatusFeasible    Status = "feasible"
	StatusInfeasible  Status = "infeasible"
)

// Run solves m with the wall-clock deadline cfg.MaxSolverTime, returning
// the solver status and the raw mip.Solution for the caller to decode into
// routes. cfg.NumSolverWorkers is not passed to the solver. On INFEASIBLE/UNKNOWN it returns StatusInfeasible
// with a nil solution, per spec §4.8.
func Run(m mip.Model, cfg domain.Config) (Status, mip.Solution, error) {
	s, err := mip.NewSolver("highs", m)
	if err != nil {
		return StatusInfeasible, nil, vrperr.Internal(err, "create solver")
	}

	opts := mip.NewSolveOptions()
	if err := opts.SetMaximumDuration(cfg.MaxSolverTime); err != nil {
		return StatusInfeasible, nil, vrperr.Internal(err, "set solve duration")
	}
	if err := opts.SetMIPGapRelative(0); err != nil {
		return StatusInfeasible, nil, vrperr.Internal(err, "set MIP gap")
	}
	opts.SetVerbosity(mip.Off)

	solution, err := s.Solve(opts)
	if err != nil {
		return StatusInfeasible, nil, vrperr.Internal(err, "solve")
	}

	if solution == nil || !solution.HasValues() {
		return StatusInfeasible, nil, nil
	}
	if solution.IsOptimal() {
		return StatusOptimal, solution, nil
	}
	return StatusFeasible, solution, nil
}
