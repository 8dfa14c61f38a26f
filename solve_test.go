package vrpcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aground5/vrp-core/internal/domain"
)

func TestSolveRejectsMalformedProblemBeforeBuildingAModel(t *testing.T) {
	p := domain.Problem{
		Locations:      []domain.Location{{ID: 0}},
		TravelTime:     [][]int{{0}},
		TravelDistance: [][]int{{0}},
		Vehicles: []domain.Vehicle{
			{ID: 0, StartLocation: 5, EndLocation: 0},
		},
	}

	_, err := Solve(p)
	require.Error(t, err)
}

func TestPrecheckWidensInfeasibleDeliveryWindow(t *testing.T) {
	p := domain.Problem{
		Locations: []domain.Location{
			{ID: 0}, {ID: 1, ServiceDuration: 5}, {ID: 2},
		},
		TravelTime: [][]int{{0, 1, 20}, {1, 0, 20}, {20, 20, 0}},
		Shipments: []domain.Shipment{
			{
				ID: 0, PickupLocation: 1, DeliveryLocation: 2,
				PickupWindow:   domain.TimeWindow{Start: 0, End: 10},
				DeliveryWindow: domain.TimeWindow{Start: 0, End: 10},
			},
		},
		Config: domain.DefaultConfig(),
	}

	out := Precheck(p)
	require.Greater(t, out.Shipments[0].DeliveryWindow.End, p.Shipments[0].DeliveryWindow.End)
	// Precheck must not mutate the input.
	require.Equal(t, 10, p.Shipments[0].DeliveryWindow.End)
}
