// Package constraints posts the five constraint families of spec §4.2-§4.6
// onto a mip.Model, operating purely over the variables.Layer allocated
// beforehand. Each file in this package corresponds to one spec section.
package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/variables"
)

// PostRouting posts the routing-topology constraints of spec §4.2: start/end
// anchors, monotone termination, end-depot absorption, no idle loops, fleet
// partitioning, stop-visit recording, shipment service equivalence and
// vehicle usage.
func PostRouting(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) {
	nv := l.NumVehicles
	horizon := l.Horizon
	nStops := l.NumStops

	for v := 0; v < nv; v++ {
		start := l.StartStop(v)
		end := l.EndStop(v)

		// route[v,0] = start_stop(v)
		fixEqualInt(b, l.Route[v][0], start)
		// done[v,0] = 0
		b.Fix(l.Done[v][0], 0)
		// done[v,T-1] = 1
		b.Fix(l.Done[v][horizon-1], 1)

		for t := 1; t < horizon; t++ {
			// route[v,t] != start_stop(v)
			z := b.EqualInt("anchor", l.Route[v][t], start, 0, nStops-1)
			b.Fix(z, 0)
		}

		for t := 0; t < horizon; t++ {
			// end-depot absorption: route[v,t]=end_stop(v) -> done[v,t]=1
			atEnd := b.EqualInt("atend", l.Route[v][t], end, 0, nStops-1)
			absorb := b.M.NewConstraint(mip.GreaterThanOrEqual, 0)
			absorb.NewTerm(1, l.Done[v][t])
			absorb.NewTerm(-1, atEnd)

			if t+1 < horizon {
				// monotone termination: done[v,t] -> done[v,t+1]
				mono := b.M.NewConstraint(mip.GreaterThanOrEqual, 0)
				mono.NewTerm(1, l.Done[v][t+1])
				mono.NewTerm(-1, l.Done[v][t])

				// done[v,t]=1 -> route[v,t]=end_stop(v)
				b.ImplyEqual(l.Done[v][t], float64(end), nStops-1, cpmodel.T(1, l.Route[v][t]))

				// no idle loops: done[v,t+1]=0 -> route[v,t] != route[v,t+1]
				notDoneNext := b.Neg(l.Done[v][t+1])
				same := b.EqualVars("sameloop", l.Route[v][t], l.Route[v][t+1], nStops-1)
				sameWhileActive := b.And("idle", same, notDoneNext)
				b.Fix(sameWhileActive, 0)
			}
		}

		// fleet partitioning: v never visits another vehicle's depots
		for other := 0; other < nv; other++ {
			if other == v {
				continue
			}
			os, oe := l.StartStop(other), l.EndStop(other)
			for t := 0; t < horizon; t++ {
				zs := b.EqualInt("foreign", l.Route[v][t], os, 0, nStops-1)
				b.Fix(zs, 0)
				ze := b.EqualInt("foreign", l.Route[v][t], oe, 0, nStops-1)
				b.Fix(ze, 0)
			}
		}
	}

	// stop-visit recording, per non-depot stop
	for s := 0; s < nStops; s++ {
		if l.Stops.IsDepotStop(s) {
			continue
		}

		sumActive := b.M.NewConstraint(mip.Equal, 0)
		sumActive.NewTerm(-1, l.IsStopActive[s])
		stepSum := b.M.NewConstraint(mip.Equal, 0)
		stepSum.NewTerm(-1, l.VisitStep[s])
		vehSum := b.M.NewConstraint(mip.Equal, 0)
		vehSum.NewTerm(-1, l.VisitVehicle[s])

		for v := 0; v < nv; v++ {
			for t := 0; t < horizon; t++ {
				atStop := b.EqualInt("visit", l.Route[v][t], s, 0, nStops-1)
				notDone := b.Neg(l.Done[v][t])
				valid := b.And("valid", atStop, notDone)

				sumActive.NewTerm(1, valid)
				stepSum.NewTerm(float64(t), valid)
				vehSum.NewTerm(float64(v+1), valid)
			}
		}
	}

	// shipment service equivalence and is_served binding
	for s := 0; s < l.NumShipments; s++ {
		pickup := l.Stops.PickupOf[s]
		delivery := l.Stops.DeliveryOf[s]

		eq := b.M.NewConstraint(mip.Equal, 0)
		eq.NewTerm(1, l.IsStopActive[pickup])
		eq.NewTerm(-1, l.IsStopActive[delivery])

		c1 := b.M.NewConstraint(mip.LessThanOrEqual, 0)
		c1.NewTerm(1, l.IsServed[s])
		c1.NewTerm(-1, l.IsStopActive[pickup])

		c2 := b.M.NewConstraint(mip.LessThanOrEqual, 0)
		c2.NewTerm(1, l.IsServed[s])
		c2.NewTerm(-1, l.IsStopActive[delivery])

		c3 := b.M.NewConstraint(mip.GreaterThanOrEqual, -1)
		c3.NewTerm(1, l.IsServed[s])
		c3.NewTerm(-1, l.IsStopActive[pickup])
		c3.NewTerm(-1, l.IsStopActive[delivery])
	}

	// usage: is_used[v] = NOT done[v,1]
	for v := 0; v < nv; v++ {
		c := b.M.NewConstraint(mip.Equal, 1)
		c.NewTerm(1, l.IsUsed[v])
		c.NewTerm(1, l.Done[v][1])
	}
}

// fixEqualInt pins variable x to a known constant value.
func fixEqualInt(b *cpmodel.Builder, x mip.Int, value int) {
	c := b.M.NewConstraint(mip.Equal, float64(value))
	c.NewTerm(1, x)
}

// PostRouteLocBinding binds route_loc[v,t] to element(route[v,t], stop_to_loc)
// per spec §4.1: the time constraints and the objective's per-edge terms key
// their flattened-matrix travel lookups off route_loc rather than route
// directly.
func PostRouteLocBinding(b *cpmodel.Builder, l *variables.Layer) {
	for v := 0; v < l.NumVehicles; v++ {
		for t := 0; t < l.Horizon; t++ {
			b.BindElementInt(l.Route[v][t], 0, l.NumStops-1, l.StopToLoc, l.RouteLoc[v][t])
		}
	}
}
