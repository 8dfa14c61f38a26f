// Package stopbuilder materializes the Stop list from a Problem: one start
// and one end depot per vehicle, one pickup and one delivery per shipment,
// laid out as the three contiguous ranges described in spec §3.
package stopbuilder

import "github.com/aground5/vrp-core/internal/domain"

// Build returns the dense Stop list for p, plus the index lookups the
// Variable Layer and constraint modules need: the start/end depot stop id
// for each vehicle, and the pickup/delivery stop id for each shipment.
//
// Layout: stops [0, N_v) are start depots, stops [N_v, N_v+2*N_s) are
// pickup/delivery pairs interleaved per shipment, and the final N_v stops
// are end depots. A stop's index in the returned slice is its identity.
func Build(p domain.Problem) Result {
	nv := p.NumVehicles()
	ns := p.NumShipments()

	stops := make([]domain.Stop, 0, 2*nv+2*ns)
	startOf := make([]int, nv)
	endOf := make([]int, nv)
	pickupOf := make([]int, ns)
	deliveryOf := make([]int, ns)

	nextID := 0
	newStop := func(kind domain.StopKind, loc, vehicleIdx, shipmentIdx int) domain.Stop {
		s := domain.Stop{
			ID:          nextID,
			Kind:        kind,
			Location:    loc,
			VehicleIdx:  vehicleIdx,
			ShipmentIdx: shipmentIdx,
			Zone:        domain.DepotZone,
		}
		nextID++
		return s
	}

	for v, veh := range p.Vehicles {
		s := newStop(domain.DepotStart, veh.StartLocation, v, -1)
		startOf[v] = s.ID
		stops = append(stops, s)
	}

	for si, ship := range p.Shipments {
		pLoc := p.Locations[ship.PickupLocation]
		dLoc := p.Locations[ship.DeliveryLocation]

		pickup := newStop(domain.Pickup, ship.PickupLocation, -1, si)
		pickup.WeightDelta = ship.Cargo.Weight
		pickup.VolumeDelta = ship.Cargo.Volume
		pickup.ServiceDuration = pLoc.ServiceDuration
		pickup.Zone = pLoc.ZoneID
		pickupOf[si] = pickup.ID
		stops = append(stops, pickup)

		delivery := newStop(domain.Delivery, ship.DeliveryLocation, -1, si)
		delivery.WeightDelta = -ship.Cargo.Weight
		delivery.VolumeDelta = -ship.Cargo.Volume
		delivery.ServiceDuration = dLoc.ServiceDuration
		delivery.Zone = dLoc.ZoneID
		deliveryOf[si] = delivery.ID
		stops = append(stops, delivery)
	}

	for v, veh := range p.Vehicles {
		s := newStop(domain.DepotEnd, veh.EndLocation, v, -1)
		endOf[v] = s.ID
		stops = append(stops, s)
	}

	return Result{
		Stops:        stops,
		StartDepotOf: startOf,
		EndDepotOf:   endOf,
		PickupOf:     pickupOf,
		DeliveryOf:   deliveryOf,
	}
}

// Result is the materialized Stop list plus the index lookups derived from
// it. These lookups are the "identity by index" contract of spec §3: every
// constraint module keys off of them instead of re-deriving them.
type Result struct {
	Stops []domain.Stop

	StartDepotOf []int // vehicle index -> stop id
	EndDepotOf   []int // vehicle index -> stop id
	PickupOf     []int // shipment index -> stop id
	DeliveryOf   []int // shipment index -> stop id
}

// NumStops returns the dense stop count, N_v*2 + N_s*2.
func (r Result) NumStops() int { return len(r.Stops) }

// StopToLocation returns the flattened stop-id -> location-id lookup table
// used by `element` constraints over route[v,t].
func (r Result) StopToLocation() []int {
	out := make([]int, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.Location
	}
	return out
}

// WeightDeltas returns the flattened stop-id -> weight-delta table.
func (r Result) WeightDeltas() []int {
	out := make([]int, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.WeightDelta
	}
	return out
}

// VolumeDeltas returns the flattened stop-id -> volume-delta table.
func (r Result) VolumeDeltas() []int {
	out := make([]int, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.VolumeDelta
	}
	return out
}

// ServiceDurations returns the flattened stop-id -> service-duration table.
func (r Result) ServiceDurations() []int {
	out := make([]int, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.ServiceDuration
	}
	return out
}

// Zones returns the flattened stop-id -> zone table.
func (r Result) Zones() []int {
	out := make([]int, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.Zone
	}
	return out
}

// IsDepotStop reports whether stop id is a DEPOT_START or DEPOT_END stop.
func (r Result) IsDepotStop(stopID int) bool {
	return r.Stops[stopID].IsDepot()
}
