package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/variables"
)

// PostTime posts the time-propagation, shift-cap and hard time-window
// constraints of spec §4.3. It assumes PostRouteLocBinding has already been
// called so route_loc[v,t] is available for the travel-matrix lookups.
func PostTime(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) {
	depotStops := append(append([]int{}, l.Stops.StartDepotOf...), l.Stops.EndDepotOf...)
	nLoc := l.NumLocations

	for v := 0; v < l.NumVehicles; v++ {
		veh := p.Vehicles[v]

		// arrival[v,0] = shift.start_time
		fixEqualInt(b, l.Arrival[v][0], veh.Labor.Shift.StartTime)

		// shift cap, all steps
		for t := 0; t < l.Horizon; t++ {
			shiftCap := b.M.NewConstraint(mip.LessThanOrEqual, float64(veh.Labor.Shift.StartTime+veh.Labor.Shift.MaxDuration))
			shiftCap.NewTerm(1, l.Arrival[v][t])
		}

		for t := 0; t+1 < l.Horizon; t++ {
			curr, next := l.RouteLoc[v][t], l.RouteLoc[v][t+1]

			tau := b.ElementFlat(curr, next, nLoc, l.TravelTimeFlat)
			sigma := b.M.NewInt(0, maxOfInts(l.StopServiceDur))
			b.BindElementInt(l.Route[v][t], 0, l.NumStops-1, l.StopServiceDur, sigma)

			terms := []cpmodel.Term{
				cpmodel.T(1, l.Arrival[v][t]),
				cpmodel.T(1, sigma),
				cpmodel.T(1, tau),
			}

			if l.SetupTimeFlat != nil {
				eta := b.ElementFlat(curr, next, nLoc, l.SetupTimeFlat)
				terms = append(terms, cpmodel.T(1, eta))
			}

			atStart := b.EqualInt("atstart", l.Route[v][t], l.StartStop(v), 0, l.NumStops-1)
			nextNonDepot := b.Neg(b.InSet(l.Route[v][t+1], 0, l.NumStops-1, depotStops))
			aCond := b.And("teleportA", atStart, nextNonDepot)

			sameLoc := b.EqualVars("sameloc", curr, next, nLoc-1)
			currNonDepot := b.Neg(b.InSet(l.Route[v][t], 0, l.NumStops-1, depotStops))
			bCond := b.And("teleportB", sameLoc, currNonDepot)

			terms = append(terms,
				cpmodel.T(float64(p.Operations.DepotServiceTime), aCond),
				cpmodel.T(float64(p.Operations.MinIntraTransit), bCond),
			)

			breakFlag := b.GreaterThanConst(tau, veh.Labor.BreakRule.IntervalMinutes, 0, maxOfInts(l.TravelTimeFlat))
			terms = append(terms, cpmodel.T(float64(veh.Labor.BreakRule.DurationMinutes), breakFlag))

			// frozen when done: arrival[v,t+1] - arrival[v,t] = 0
			frozenTerms := []cpmodel.Term{cpmodel.T(1, l.Arrival[v][t+1]), cpmodel.T(-1, l.Arrival[v][t])}
			b.ImplyEqual(l.Done[v][t], 0, l.TMax, frozenTerms...)

			// not done: arrival[v,t+1] >= earliest
			propTerms := []cpmodel.Term{cpmodel.T(1, l.Arrival[v][t+1])}
			for _, term := range terms {
				propTerms = append(propTerms, cpmodel.T(-term.Coef, term.Var))
			}
			notDone := b.Neg(l.Done[v][t])
			b.ImplyGreaterOrEqual(notDone, 0, l.TMax, propTerms...)
		}
	}

	// hard time windows
	for s := 0; s < l.NumShipments; s++ {
		ship := p.Shipments[s]
		postWindow(b, l, l.Stops.PickupOf[s], ship.PickupWindow)
		postWindow(b, l, l.Stops.DeliveryOf[s], ship.DeliveryWindow)
	}
}

func postWindow(b *cpmodel.Builder, l *variables.Layer, stop int, w domain.TimeWindow) {
	for v := 0; v < l.NumVehicles; v++ {
		for t := 0; t < l.Horizon; t++ {
			atStop := b.EqualInt("window", l.Route[v][t], stop, 0, l.NumStops-1)
			notDone := b.Neg(l.Done[v][t])
			active := b.And("windowactive", atStop, notDone)

			b.ImplyGreaterOrEqual(active, float64(w.Start), l.TMax, cpmodel.T(1, l.Arrival[v][t]))
			b.ImplyLessOrEqual(active, float64(w.End), l.TMax, cpmodel.T(1, l.Arrival[v][t]))
		}
	}
}

func maxOfInts(xs []int) int {
	m := 0
	for _, x := range xs {
		if x < domain.UnroutableTime && x > m {
			m = x
		}
	}
	return m
}
