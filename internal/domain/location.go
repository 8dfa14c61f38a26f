// Package domain holds the immutable entities the solver core operates on:
// locations, vehicles, shipments, stops, routes and the problem/solution
// containers. Nothing here is mutated once built — see Problem and Solution.
package domain

// DepotZone is the zone id reserved for every depot location.
const DepotZone = 0

// Location is a physical node in the network: a depot, customer, or hub.
type Location struct {
	ID              int
	Name            string
	ServiceDuration int // dwell time in minutes at every pickup/delivery stop here; shipments cannot override it
	ZoneID          int
	Lat             float64
	Lon             float64
}

// IsDepot reports whether this location is a depot by zone convention.
func (l Location) IsDepot() bool {
	return l.ZoneID == DepotZone
}
