package constraints

import (
	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/variables"
)

// PostFlow posts the pickup-before-delivery, same-vehicle and
// no-depot-while-carrying constraints of spec §4.5.
func PostFlow(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) {
	for s := 0; s < l.NumShipments; s++ {
		pickup := l.Stops.PickupOf[s]
		delivery := l.Stops.DeliveryOf[s]

		// precedence: is_served[s] -> visit_step[p] < visit_step[d]
		b.ImplyLessOrEqual(l.IsServed[s], -1, 2*l.Horizon,
			cpmodel.T(1, l.VisitStep[pickup]), cpmodel.T(-1, l.VisitStep[delivery]))

		// same vehicle: is_served[s] -> visit_vehicle[p] = visit_vehicle[d]
		b.ImplyEqual(l.IsServed[s], 0, 2*l.NumVehicles,
			cpmodel.T(1, l.VisitVehicle[pickup]), cpmodel.T(-1, l.VisitVehicle[delivery]))

		// no depot while carrying
		for v := 0; v < l.NumVehicles; v++ {
			carrying := b.EqualInt("carrying", l.VisitVehicle[pickup], v+1, 0, l.NumVehicles)

			for t := 0; t < l.Horizon; t++ {
				// pBefore: t > visit_step[pickup], i.e. visit_step[pickup] <= t-1
				pBefore := b.Neg(b.GreaterThanConst(l.VisitStep[pickup], t-1, 0, l.Horizon))
				// dAfter: t < visit_step[delivery], i.e. visit_step[delivery] > t
				dAfter := b.GreaterThanConst(l.VisitStep[delivery], t, 0, l.Horizon)

				window := b.And("carrywindow", carrying, pBefore, dAfter)
				atEnd := b.EqualInt("carryend", l.Route[v][t], l.EndStop(v), 0, l.NumStops-1)

				violatesIfBoth := b.And("carryviolate", window, atEnd)
				b.Fix(violatesIfBoth, 0)
			}
		}
	}
}
