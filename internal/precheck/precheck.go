// Package precheck implements the time-paradox boundary check of spec
// §4.9: a pure data-repair pass, not a solver concern, that widens
// trivially infeasible delivery windows before the model is built.
package precheck

import "github.com/aground5/vrp-core/internal/domain"

// Run returns a copy of p with every shipment's delivery window widened
// where delivery_window.end < pickup_window.start + pickup.service_duration
// + travel_time[pickup,delivery]. Never mutates p; idempotent by
// construction since a widened window already satisfies the check it was
// widened for.
func Run(p domain.Problem) domain.Problem {
	out := p
	out.Shipments = append([]domain.Shipment(nil), p.Shipments...)

	for i, s := range out.Shipments {
		pickupLoc := p.Locations[s.PickupLocation]
		minEnd := s.PickupWindow.Start + pickupLoc.ServiceDuration + p.TravelTime[s.PickupLocation][s.DeliveryLocation]

		if s.DeliveryWindow.End >= minEnd {
			continue
		}
		out.Shipments[i].DeliveryWindow = s.DeliveryWindow.Widen(minEnd, p.Config.TimeParadoxSlack)
	}

	return out
}
