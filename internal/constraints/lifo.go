package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/variables"
)

// RehandlingCost posts the LIFO blocking/crowding detection of spec §4.6 and
// returns one fresh integer variable per ordered shipment pair (c,o) and
// vehicle v holding that pair's rehandling term, for the objective to sum.
func RehandlingCost(b *cpmodel.Builder, l *variables.Layer, p domain.Problem) []mip.Int {
	var terms []mip.Int

	crowdedThreshold := func(v int) float64 {
		return p.Config.RehandlingCrowdedFraction * float64(p.Vehicles[v].Capacity.Volume)
	}

	for c := 0; c < l.NumShipments; c++ {
		for o := 0; o < l.NumShipments; o++ {
			if c == o {
				continue
			}
			pc, dc := l.Stops.PickupOf[c], l.Stops.DeliveryOf[c]
			po, do := l.Stops.PickupOf[o], l.Stops.DeliveryOf[o]
			scaledVolumeO := p.Shipments[o].Cargo.Volume

			for v := 0; v < l.NumVehicles; v++ {
				servedC := b.EqualInt("servedc", l.VisitVehicle[pc], v+1, 0, l.NumVehicles)
				servedO := b.EqualInt("servedo", l.VisitVehicle[po], v+1, 0, l.NumVehicles)

				loadedAfter := b.GreaterThanConst(diffVar(b, l.VisitStep[po], l.VisitStep[pc], l.Horizon), 0, -l.Horizon, l.Horizon)
				unloadedAfter := b.GreaterThanConst(diffVar(b, l.VisitStep[do], l.VisitStep[dc], l.Horizon), 0, -l.Horizon, l.Horizon)
				presentAtDrop := b.GreaterThanConst(diffVar(b, l.VisitStep[dc], l.VisitStep[po], l.Horizon), 0, -l.Horizon, l.Horizon)

				blocking := b.And("blocking", servedC, servedO, loadedAfter, unloadedAfter, presentAtDrop)

				loadAtDrop := b.ElementVar(l.VisitStep[dc], 0, l.Horizon, l.LoadV[v], l.CapMax)
				crowded := b.GreaterThanConst(loadAtDrop, int(crowdedThreshold(v))-1, 0, l.CapMax)

				crowdedTerm := b.And("crowdedblock", blocking, crowded)
				mildTerm := b.And("mildblock", blocking, b.Neg(crowded))

				term := b.M.NewInt(0, p.Config.RehandlingCrowdedMultiplier*scaledVolumeO)
				sum := b.M.NewConstraint(mip.Equal, 0)
				sum.NewTerm(-1, term)
				sum.NewTerm(float64(p.Config.RehandlingCrowdedMultiplier*scaledVolumeO), crowdedTerm)
				sum.NewTerm(float64(p.Config.RehandlingMultiplier*scaledVolumeO), mildTerm)

				terms = append(terms, term)
			}
		}
	}

	return terms
}

// diffVar returns a fresh integer bound to x - y, used where a constant
// comparison (GreaterThanConst) needs to test the sign of a difference.
func diffVar(b *cpmodel.Builder, x, y mip.Int, width int) mip.Int {
	d := b.M.NewInt(-width, width)
	c := b.M.NewConstraint(mip.Equal, 0)
	c.NewTerm(-1, d)
	c.NewTerm(1, x)
	c.NewTerm(-1, y)
	return d
}
