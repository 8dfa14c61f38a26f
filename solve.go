// Package vrpcore is the public entry point of the routing optimization
// core: Precheck and Solve, the only two operations spec §6 exposes.
package vrpcore

import (
	"github.com/google/uuid"
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/constraints"
	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/objective"
	"github.com/aground5/vrp-core/internal/precheck"
	"github.com/aground5/vrp-core/internal/solver"
	"github.com/aground5/vrp-core/internal/stopbuilder"
	"github.com/aground5/vrp-core/internal/validate"
	"github.com/aground5/vrp-core/internal/variables"
)

// Precheck applies the time-paradox boundary check of spec §4.9.
func Precheck(p domain.Problem) domain.Problem {
	return precheck.Run(p)
}

// Solve builds the full CP model for p and returns the solved routing
// decision. p is never mutated. Callers that want the time-paradox repair
// applied should pass Precheck(p) rather than p.
func Solve(p domain.Problem) (domain.Solution, error) {
	if err := validate.Problem(p); err != nil {
		return domain.Solution{}, err
	}

	if p.Config == (domain.Config{}) {
		p.Config = domain.DefaultConfig()
	}

	if p.RunID == "" {
		p.RunID = uuid.Must(uuid.NewV7()).String()
	}

	sb := stopbuilder.Build(p)

	m := mip.NewModel()
	b := cpmodel.New(m)
	l := variables.Build(m, p, sb)

	constraints.PostRouteLocBinding(b, l)
	constraints.PostRouting(b, l, p)
	constraints.PostTime(b, l, p)
	constraints.PostCapacity(b, l, p)
	constraints.PostFlow(b, l, p)

	bk := objective.Post(b, l, p)

	status, solution, err := solver.Run(m, p.Config)
	if err != nil {
		return domain.Solution{}, err
	}

	return solver.Decode(status, solution, l, bk, p, p.RunID), nil
}
