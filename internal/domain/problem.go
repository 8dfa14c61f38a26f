package domain

// UnroutableTime is the sentinel used in TravelTime/TravelDistance matrices
// to mark a cell as not routable.
const UnroutableTime = 1 << 20

// Problem is the fully materialized VRP instance the core receives. It is
// built once by the caller and never mutated afterward; Precheck returns a
// new value rather than editing this one in place.
type Problem struct {
	RunID string

	Locations []Location
	Vehicles  []Vehicle
	Shipments []Shipment

	// Square matrices indexed [from][to] over Locations.
	TravelTime     [][]int // minutes
	TravelDistance [][]int // km
	SetupTime      [][]int // minutes; nil/all-zero if not supplied

	Penalties  Penalties
	Operations Operations
	Config     Config
}

// NumLocations returns len(Locations).
func (p Problem) NumLocations() int { return len(p.Locations) }

// NumVehicles returns len(Vehicles).
func (p Problem) NumVehicles() int { return len(p.Vehicles) }

// NumShipments returns len(Shipments).
func (p Problem) NumShipments() int { return len(p.Shipments) }

// SetupTimeAt returns the setup time between locations, treating a nil
// matrix as all-zero per §6.
func (p Problem) SetupTimeAt(from, to int) int {
	if p.SetupTime == nil {
		return 0
	}
	return p.SetupTime[from][to]
}
