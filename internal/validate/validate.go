// Package validate implements the input-error checks of spec §7: malformed
// references, negative capacities, and matrix shape mismatches. These fail
// fast, before a model is ever built.
package validate

import (
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/vrperr"
)

// Problem validates p's structural invariants.
func Problem(p domain.Problem) error {
	n := p.NumLocations()

	if err := matrix(p.TravelTime, n, "travel_time"); err != nil {
		return err
	}
	if err := matrix(p.TravelDistance, n, "travel_distance"); err != nil {
		return err
	}
	if p.SetupTime != nil {
		if err := matrix(p.SetupTime, n, "setup_time"); err != nil {
			return err
		}
	}

	for i, v := range p.Vehicles {
		if v.StartLocation < 0 || v.StartLocation >= n {
			return vrperr.Input("vehicle %d: unknown start_location %d", i, v.StartLocation)
		}
		if v.EndLocation < 0 || v.EndLocation >= n {
			return vrperr.Input("vehicle %d: unknown end_location %d", i, v.EndLocation)
		}
		if v.Capacity.Weight < 0 || v.Capacity.Volume < 0 {
			return vrperr.Input("vehicle %d: negative capacity", i)
		}
	}

	for i, s := range p.Shipments {
		if s.PickupLocation < 0 || s.PickupLocation >= n {
			return vrperr.Input("shipment %d: unknown pickup_location %d", i, s.PickupLocation)
		}
		if s.DeliveryLocation < 0 || s.DeliveryLocation >= n {
			return vrperr.Input("shipment %d: unknown delivery_location %d", i, s.DeliveryLocation)
		}
		if s.Cargo.Weight < 0 || s.Cargo.Volume < 0 {
			return vrperr.Input("shipment %d: negative cargo", i)
		}
	}

	return nil
}

func matrix(m [][]int, n int, name string) error {
	if len(m) != n {
		return vrperr.Input("%s: expected %d rows, got %d", name, n, len(m))
	}
	for i, row := range m {
		if len(row) != n {
			return vrperr.Input("%s: row %d has %d columns, expected %d", name, i, len(row), n)
		}
	}
	return nil
}
