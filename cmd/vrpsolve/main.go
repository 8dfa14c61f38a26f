// Command vrpsolve is the CLI adapter around the routing optimization
// core: it decodes a problem from stdin, runs the time-paradox precheck,
// solves, and encodes the solution to stdout, using the run.Run/
// run.Encode wiring this corpus's demos share.
package main

import (
	"log"

	"github.com/nextmv-io/sdk/run"
	"github.com/nextmv-io/sdk/run/encode"

	vrpcore "github.com/aground5/vrp-core"
	"github.com/aground5/vrp-core/internal/resultio"
)

type option struct {
	SkipPrecheck bool `json:"skip_precheck,omitempty"`
}

func solve(in input, opts option) ([]output, error) {
	p := in.toProblem()
	if !opts.SkipPrecheck {
		p = vrpcore.Precheck(p)
	}

	sol, err := vrpcore.Solve(p)
	if err != nil {
		return nil, err
	}

	return []output{fromSolution(sol, p.Config.CapacityScaleFactor)}, nil
}

func main() {
	err := run.Run(solve,
		run.Encode[run.CLIRunnerConfig, input](
			resultio.GenericEncoder[[]output, option](encode.JSON()),
		),
	)
	if err != nil {
		log.Fatal(err)
	}
}
