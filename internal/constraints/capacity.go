package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/variables"
)

// PostCapacity posts the load-tracking constraints of spec §4.4: zero
// initial load, reset to zero at the end depot or once terminated, delta
// accumulation otherwise, and per-vehicle weight/volume caps.
func PostCapacity(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) {
	for v := 0; v < l.NumVehicles; v++ {
		veh := p.Vehicles[v]

		b.Fix0(l.LoadW[v][0])
		b.Fix0(l.LoadV[v][0])

		for t := 0; t < l.Horizon; t++ {
			wCap := b.M.NewConstraint(mip.LessThanOrEqual, float64(veh.Capacity.Weight))
			wCap.NewTerm(1, l.LoadW[v][t])
			vCap := b.M.NewConstraint(mip.LessThanOrEqual, float64(veh.Capacity.Volume))
			vCap.NewTerm(1, l.LoadV[v][t])
		}

		for t := 0; t+1 < l.Horizon; t++ {
			atEnd := b.EqualInt("capend", l.Route[v][t], l.EndStop(v), 0, l.NumStops-1)
			resetCond := b.Or("capreset", atEnd, l.Done[v][t])
			notReset := b.Neg(resetCond)

			deltaW := b.M.NewInt(minOfInts(l.StopWeightDelta), maxOfInts(l.StopWeightDelta))
			b.BindElementInt(l.Route[v][t], 0, l.NumStops-1, l.StopWeightDelta, deltaW)
			deltaV := b.M.NewInt(minOfInts(l.StopVolumeDelta), maxOfInts(l.StopVolumeDelta))
			b.BindElementInt(l.Route[v][t], 0, l.NumStops-1, l.StopVolumeDelta, deltaV)

			b.ImplyEqual(resetCond, 0, l.CapMax, cpmodel.T(1, l.LoadW[v][t+1]))
			b.ImplyEqual(resetCond, 0, l.CapMax, cpmodel.T(1, l.LoadV[v][t+1]))

			b.ImplyEqual(notReset, 0, 2*l.CapMax,
				cpmodel.T(1, l.LoadW[v][t+1]), cpmodel.T(-1, l.LoadW[v][t]), cpmodel.T(-1, deltaW))
			b.ImplyEqual(notReset, 0, 2*l.CapMax,
				cpmodel.T(1, l.LoadV[v][t+1]), cpmodel.T(-1, l.LoadV[v][t]), cpmodel.T(-1, deltaV))
		}
	}
}

func minOfInts(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs {
		if x < m {
			m = x
		}
	}
	return m
}
