package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aground5/vrp-core/internal/domain"
)

func validProblem() domain.Problem {
	return domain.Problem{
		Locations: []domain.Location{{ID: 0}, {ID: 1}, {ID: 2}},
		Vehicles: []domain.Vehicle{
			{ID: 0, StartLocation: 0, EndLocation: 0, Capacity: domain.Capacity{Weight: 10, Volume: 10}},
		},
		Shipments: []domain.Shipment{
			{ID: 0, PickupLocation: 1, DeliveryLocation: 2, Cargo: domain.Cargo{Weight: 1, Volume: 1}},
		},
		TravelTime:     [][]int{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}},
		TravelDistance: [][]int{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}},
	}
}

func TestProblemAcceptsValidInput(t *testing.T) {
	require.NoError(t, Problem(validProblem()))
}

func TestProblemRejectsShortTravelTimeMatrix(t *testing.T) {
	p := validProblem()
	p.TravelTime = p.TravelTime[:2]
	require.Error(t, Problem(p))
}

func TestProblemRejectsRaggedTravelDistanceRow(t *testing.T) {
	p := validProblem()
	p.TravelDistance[1] = p.TravelDistance[1][:1]
	require.Error(t, Problem(p))
}

func TestProblemAcceptsNilSetupTime(t *testing.T) {
	p := validProblem()
	p.SetupTime = nil
	require.NoError(t, Problem(p))
}

func TestProblemRejectsMalformedSetupTime(t *testing.T) {
	p := validProblem()
	p.SetupTime = [][]int{{0, 1}}
	require.Error(t, Problem(p))
}

func TestProblemRejectsUnknownVehicleStartLocation(t *testing.T) {
	p := validProblem()
	p.Vehicles[0].StartLocation = 99
	require.Error(t, Problem(p))
}

func TestProblemRejectsUnknownVehicleEndLocation(t *testing.T) {
	p := validProblem()
	p.Vehicles[0].EndLocation = -1
	require.Error(t, Problem(p))
}

func TestProblemRejectsNegativeVehicleCapacity(t *testing.T) {
	p := validProblem()
	p.Vehicles[0].Capacity.Weight = -1
	require.Error(t, Problem(p))
}

func TestProblemRejectsUnknownShipmentLocations(t *testing.T) {
	p := validProblem()
	p.Shipments[0].PickupLocation = 50
	require.Error(t, Problem(p))

	p = validProblem()
	p.Shipments[0].DeliveryLocation = 50
	require.Error(t, Problem(p))
}

func TestProblemRejectsNegativeCargo(t *testing.T) {
	p := validProblem()
	p.Shipments[0].Cargo.Volume = -5
	require.Error(t, Problem(p))
}
