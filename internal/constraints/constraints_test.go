package constraints

import (
	"testing"

	"github.com/nextmv-io/sdk/mip"
	"github.com/stretchr/testify/require"

	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/stopbuilder"
	"github.com/aground5/vrp-core/internal/variables"
)

func fixtureProblem() domain.Problem {
	return domain.Problem{
		Locations: []domain.Location{
			{ID: 0, ZoneID: domain.DepotZone},
			{ID: 1, ZoneID: 1, ServiceDuration: 5},
			{ID: 2, ZoneID: 2, ServiceDuration: 10},
		},
		Vehicles: []domain.Vehicle{
			{
				ID: 0, StartLocation: 0, EndLocation: 0,
				Capacity: domain.Capacity{Weight: 100, Volume: 100},
				Cost:     domain.CostProfile{Fixed: 50, PerKM: 2, PerMinute: 1, PerKgKM: 1, PerWaitMin: 1},
				Labor: domain.LaborPolicy{
					Shift:     domain.WorkShift{StartTime: 0, MaxDuration: 480, StandardDuration: 400},
					BreakRule: domain.BreakRule{IntervalMinutes: 240, DurationMinutes: 30},
					Cost:      domain.LaborCost{RegularRate: 1, OvertimeMultiplier: 1.5},
				},
			},
		},
		Shipments: []domain.Shipment{
			{
				ID: 0, PickupLocation: 1, DeliveryLocation: 2,
				Cargo:          domain.Cargo{Weight: 10, Volume: 10},
				PickupWindow:   domain.TimeWindow{Start: 0, End: 1000},
				DeliveryWindow: domain.TimeWindow{Start: 0, End: 1000},
			},
		},
		TravelTime:     [][]int{{0, 5, 10}, {5, 0, 5}, {10, 5, 0}},
		TravelDistance: [][]int{{0, 5, 10}, {5, 0, 5}, {10, 5, 0}},
		Operations:     domain.Operations{DepotServiceTime: 10, MinIntraTransit: 2},
		Config:         domain.DefaultConfig(),
	}
}

func buildLayer(p domain.Problem) (*cpmodel.Builder, *variables.Layer) {
	sb := stopbuilder.Build(p)
	m := mip.NewModel()
	b := cpmodel.New(m)
	l := variables.Build(m, p, sb)
	return b, l
}

func TestPostAllConstraintsDoesNotPanic(t *testing.T) {
	p := fixtureProblem()
	b, l := buildLayer(p)

	require.NotPanics(t, func() {
		PostRouteLocBinding(b, l)
		PostRouting(b, l, p)
		PostTime(b, l, p)
		PostCapacity(b, l, p)
		PostFlow(b, l, p)
	})
}

func TestPostCapacityAlone(t *testing.T) {
	p := fixtureProblem()
	b, l := buildLayer(p)
	PostRouteLocBinding(b, l)
	require.NotPanics(t, func() { PostCapacity(b, l, p) })
}

func TestRehandlingCostReturnsOneTermPerOrderedShipmentPair(t *testing.T) {
	p := fixtureProblem()
	p.Shipments = append(p.Shipments, domain.Shipment{
		ID: 1, PickupLocation: 1, DeliveryLocation: 2,
		Cargo: domain.Cargo{Weight: 5, Volume: 5},
	})
	b, l := buildLayer(p)
	PostRouteLocBinding(b, l)
	PostRouting(b, l, p)

	terms := RehandlingCost(b, l, p)
	// 2 shipments * 1 other each * 1 vehicle = 2 ordered pairs
	require.Len(t, terms, 2)
}

func TestPostRouteLocBindingAllocatesNoExtraStops(t *testing.T) {
	p := fixtureProblem()
	b, l := buildLayer(p)
	require.NotPanics(t, func() { PostRouteLocBinding(b, l) })
	require.Equal(t, 4, l.NumStops)
}
