// Package objective assembles the minimized cost expression of spec §4.7
// out of the variables allocated by the Variable Layer and the rehandling
// terms produced by constraints.RehandlingCost. Each cost category is
// bound to its own bucket variable so the solver driver can read back the
// §6 cost breakdown directly from the solution, rather than only the
// scalar objective value.
package objective

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/constraints"
	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/variables"
)

// Buckets holds one non-negative integer variable per cost category of
// spec §4.7, each bound to the sum of that category's contributions.
// There is no late bucket: time windows are posted as hard constraints.
type Buckets struct {
	Fixed      mip.Int
	Distance   mip.Int
	Labor      mip.Int
	Zone       mip.Int
	Waiting    mip.Int
	Unserved   mip.Int
	Rehandling mip.Int
}

// Post builds every cost term of spec §4.7, binds each category to a
// bucket variable, adds the buckets to m's objective (set to minimize),
// and returns them so the solver driver can read back the breakdown.
// Must run after routing, time, capacity and flow constraints so the
// variables it reads (is_used, arrival, load, visit_*) are fully
// constrained.
func Post(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) Buckets {
	obj := b.M.Objective()
	obj.SetMinimize()

	bk := Buckets{
		Fixed:      bucket(b, fixedTerms(b, l, p)),
		Unserved:   bucket(b, unservedTerms(b, l, p)),
		Labor:      bucket(b, laborTerms(b, l, p)),
		Rehandling: bucket(b, rehandlingTerms(b, l, p)),
	}
	bk.Distance, bk.Zone, bk.Waiting = distanceZoneWaiting(b, l, p)

	obj.NewTerm(1, bk.Fixed)
	obj.NewTerm(1, bk.Distance)
	obj.NewTerm(1, bk.Labor)
	obj.NewTerm(1, bk.Zone)
	obj.NewTerm(1, bk.Waiting)
	obj.NewTerm(1, bk.Unserved)
	obj.NewTerm(1, bk.Rehandling)

	return bk
}

// bucketCeiling bounds a single cost bucket; loose enough for any term mix
// this model produces, since tightness here only affects LP relaxation
// quality, not correctness.
const bucketCeiling = 1 << 30

// bucket binds a fresh non-negative variable to sum(terms), each term
// assumed non-negative (cost contributions never go negative in this
// model), and returns it.
func bucket(b *cpmodel.Builder, terms []cpmodel.Term) mip.Int {
	out := b.M.NewInt(0, bucketCeiling)
	c := b.M.NewConstraint(mip.Equal, 0)
	c.NewTerm(-1, out)
	for _, t := range terms {
		c.NewTerm(t.Coef, t.Var)
	}
	return out
}

func fixedTerms(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) []cpmodel.Term {
	terms := make([]cpmodel.Term, 0, l.NumVehicles)
	for v := 0; v < l.NumVehicles; v++ {
		terms = append(terms, cpmodel.T(float64(p.Vehicles[v].Cost.Fixed), l.IsUsed[v]))
	}
	return terms
}

func unservedTerms(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) []cpmodel.Term {
	terms := make([]cpmodel.Term, 0, l.NumShipments)
	for s := 0; s < l.NumShipments; s++ {
		penalty := p.Shipments[s].UnservedPenalty
		if penalty == 0 {
			penalty = p.Config.UnservedPenalty
		}
		terms = append(terms, cpmodel.T(float64(penalty), b.Neg(l.IsServed[s])))
	}
	return terms
}

func laborTerms(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) []cpmodel.Term {
	terms := make([]cpmodel.Term, 0, 2*l.NumVehicles)
	for v := 0; v < l.NumVehicles; v++ {
		veh := p.Vehicles[v]

		w := b.MaxOf(0, l.TMax, l.Arrival[v]...)
		worked := b.M.NewInt(0, l.TMax)
		wc := b.M.NewConstraint(mip.Equal, float64(veh.Labor.Shift.StartTime))
		wc.NewTerm(-1, worked)
		wc.NewTerm(1, w)

		// R = min(worked, standard_duration); O = max(worked-standard, 0)
		regular := b.MinOf(0, veh.Labor.Shift.StandardDuration, worked, constInt(b, veh.Labor.Shift.StandardDuration))

		diff := b.M.NewInt(-l.TMax, l.TMax)
		diffEq := b.M.NewConstraint(mip.Equal, float64(veh.Labor.Shift.StandardDuration))
		diffEq.NewTerm(-1, diff)
		diffEq.NewTerm(1, worked)
		overtime := b.MaxOf(0, l.TMax, diff, constInt(b, 0))

		overtimeRate := int(float64(veh.Labor.Cost.RegularRate) * veh.Labor.Cost.OvertimeMultiplier)

		terms = append(terms,
			cpmodel.T(float64(veh.Labor.Cost.RegularRate), regular),
			cpmodel.T(float64(overtimeRate), overtime),
		)
	}
	return terms
}

func rehandlingTerms(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) []cpmodel.Term {
	raw := constraints.RehandlingCost(b, l, p)
	terms := make([]cpmodel.Term, len(raw))
	for i, v := range raw {
		terms[i] = cpmodel.T(1, v)
	}
	return terms
}

// distanceZoneWaiting posts the per-edge distance, zone-crossing and
// waiting terms in one pass (they share the per-edge route/location/load
// lookups) and returns their three bucket variables.
func distanceZoneWaiting(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) (mip.Int, mip.Int, mip.Int) {
	maxDist := maxOf(l.TravelDistFlat)

	var distTerms, zoneTerms, waitTerms []cpmodel.Term

	for v := 0; v < l.NumVehicles; v++ {
		for t := 0; t+1 < l.Horizon; t++ {
			curr, next := l.RouteLoc[v][t], l.RouteLoc[v][t+1]
			active := b.Neg(l.Done[v][t])

			dist := b.ElementFlat(curr, next, l.NumLocations, l.TravelDistFlat)

			perKM := b.M.NewInt(0, maxDist*p.Vehicles[v].Cost.PerKM)
			perKMEq := b.M.NewConstraint(mip.Equal, 0)
			perKMEq.NewTerm(-1, perKM)
			perKMEq.NewTerm(float64(p.Vehicles[v].Cost.PerKM), dist)

			loadDist := b.ProductInt(dist, maxDist, l.LoadW[v][t], l.CapMax)
			perKgKM := b.M.NewInt(0, maxDist*l.CapMax*p.Vehicles[v].Cost.PerKgKM)
			perKgKMEq := b.M.NewConstraint(mip.Equal, 0)
			perKgKMEq.NewTerm(-1, perKgKM)
			perKgKMEq.NewTerm(float64(p.Vehicles[v].Cost.PerKgKM), loadDist)

			edgeHi := maxDist*p.Vehicles[v].Cost.PerKM + maxDist*l.CapMax*p.Vehicles[v].Cost.PerKgKM
			edgeDist := b.M.NewInt(0, edgeHi)
			edgeEq := b.M.NewConstraint(mip.Equal, 0)
			edgeEq.NewTerm(-1, edgeDist)
			edgeEq.NewTerm(1, perKM)
			edgeEq.NewTerm(1, perKgKM)

			activeDist := b.ProductBool(edgeDist, edgeHi, active)
			distTerms = append(distTerms, cpmodel.T(1, activeDist))

			// zone crossing: both endpoints non-depot, zones differ
			currZone := b.M.NewInt(0, maxOf(l.StopZone))
			b.BindElementInt(l.Route[v][t], 0, l.NumStops-1, l.StopZone, currZone)
			nextZone := b.M.NewInt(0, maxOf(l.StopZone))
			b.BindElementInt(l.Route[v][t+1], 0, l.NumStops-1, l.StopZone, nextZone)

			currNonDepot := b.Neg(b.InSet(l.Route[v][t], 0, l.NumStops-1, depotStopsOf(l)))
			nextNonDepot := b.Neg(b.InSet(l.Route[v][t+1], 0, l.NumStops-1, depotStopsOf(l)))
			zonesDiffer := b.Neg(b.EqualVars("zoneeq", currZone, nextZone, maxOf(l.StopZone)))

			crossing := b.And("zonecross", currNonDepot, nextNonDepot, zonesDiffer, active)
			zoneTerms = append(zoneTerms, cpmodel.T(float64(p.Config.ZonePenalty), crossing))

			// waiting: max(0, ready_next - (arrival[v,t]+sigma+tau)) * per_wait_min
			sigma := b.M.NewInt(0, maxOf(l.StopServiceDur))
			b.BindElementInt(l.Route[v][t], 0, l.NumStops-1, l.StopServiceDur, sigma)
			tau := b.ElementFlat(curr, next, l.NumLocations, l.TravelTimeFlat)

			readyNext := readyTimeTable(b, l, p, v, t)

			arrivalPlus := b.M.NewInt(0, l.TMax*3)
			apEq := b.M.NewConstraint(mip.Equal, 0)
			apEq.NewTerm(-1, arrivalPlus)
			apEq.NewTerm(1, l.Arrival[v][t])
			apEq.NewTerm(1, sigma)
			apEq.NewTerm(1, tau)

			waitDiff := b.M.NewInt(-l.TMax*3, l.TMax)
			wdEq := b.M.NewConstraint(mip.Equal, 0)
			wdEq.NewTerm(-1, waitDiff)
			wdEq.NewTerm(1, readyNext)
			wdEq.NewTerm(-1, arrivalPlus)

			waitAmount := b.MaxOf(0, l.TMax, waitDiff, constInt(b, 0))
			activeWait := b.ProductBool(waitAmount, l.TMax, active)
			waitTerms = append(waitTerms, cpmodel.T(float64(p.Config.CostPerWaitMin), activeWait))
		}
	}

	return bucket(b, distTerms), bucket(b, zoneTerms), bucket(b, waitTerms)
}

// readyTimeTable returns the earliest acceptable arrival time at
// route[v,t+1]: the shipment-window start if that stop is a pickup or
// delivery, 0 for depots.
func readyTimeTable(b *cpmodel.Builder, l *variables.Layer, p domain.Problem, v, t int) mip.Int {
	table := make([]int, l.NumStops)
	for s, stop := range l.Stops.Stops {
		switch stop.Kind {
		case domain.Pickup:
			table[s] = p.Shipments[stop.ShipmentIdx].PickupWindow.Start
		case domain.Delivery:
			table[s] = p.Shipments[stop.ShipmentIdx].DeliveryWindow.Start
		default:
			table[s] = 0
		}
	}
	out := b.M.NewInt(0, maxOf(table))
	b.BindElementInt(l.Route[v][t+1], 0, l.NumStops-1, table, out)
	return out
}

func constInt(b *cpmodel.Builder, v int) mip.Int {
	return b.M.NewInt(v, v)
}

func maxOf(xs []int) int {
	m := 0
	for _, x := range xs {
		if x < domain.UnroutableTime && x > m {
			m = x
		}
	}
	return m
}

func depotStopsOf(l *variables.Layer) []int {
	return append(append([]int{}, l.Stops.StartDepotOf...), l.Stops.EndDepotOf...)
}
