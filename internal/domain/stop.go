package domain

// StopKind tags the four roles a Stop can play in the stop-based routing
// model (§3 of the spec): exactly one start and one end depot per vehicle,
// one pickup and one delivery per shipment.
type StopKind int

const (
	DepotStart StopKind = iota
	DepotEnd
	Pickup
	Delivery
)

func (k StopKind) String() string {
	switch k {
	case DepotStart:
		return "depot_start"
	case DepotEnd:
		return "depot_end"
	case Pickup:
		return "pickup"
	case Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Stop is a logical routing node, distinct from Location: the stop list
// holds a start and an end depot entry per vehicle and a pickup and a
// delivery entry per shipment, laid out as three contiguous ranges (start
// depots, shipment stops, end depots). A Stop's index in
// stopbuilder.Result.Stops is its identity — constraint modules key every
// table by this index.
type Stop struct {
	ID          int
	Kind        StopKind
	Location    int // index into Problem.Locations
	VehicleIdx  int // valid for DepotStart/DepotEnd, -1 otherwise
	ShipmentIdx int // valid for Pickup/Delivery, -1 otherwise

	// Pre-computed at build time (§3 "Invariants"): deltas sum to zero per
	// shipment, zero on depot stops.
	WeightDelta     int
	VolumeDelta     int
	ServiceDuration int
	Zone            int
}

// IsDepot reports whether this stop is either depot kind.
func (s Stop) IsDepot() bool {
	return s.Kind == DepotStart || s.Kind == DepotEnd
}
