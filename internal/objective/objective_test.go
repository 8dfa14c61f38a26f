package objective

import (
	"testing"

	"github.com/nextmv-io/sdk/mip"
	"github.com/stretchr/testify/require"

	"github.com/aground5/vrp-core/internal/constraints"
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
		Config:         domain.DefaultConfig(),
	}
}

func TestPostReturnsAllBuckets(t *testing.T) {
	p := fixtureProblem()
	sb := stopbuilder.Build(p)
	m := mip.NewModel()
	b := cpmodel.New(m)
	l := variables.Build(m, p, sb)

	constraints.PostRouteLocBinding(b, l)
	constraints.PostRouting(b, l, p)
	constraints.PostTime(b, l, p)
	constraints.PostCapacity(b, l, p)
	constraints.PostFlow(b, l, p)

	var bk Buckets
	require.NotPanics(t, func() { bk = Post(b, l, p) })

	require.NotNil(t, bk.Fixed)
	require.NotNil(t, bk.Distance)
	require.NotNil(t, bk.Labor)
	require.NotNil(t, bk.Zone)
	require.NotNil(t, bk.Waiting)
	require.NotNil(t, bk.Unserved)
	require.NotNil(t, bk.Rehandling)
}

func TestUnservedTermsFallBackToConfigPenalty(t *testing.T) {
	p := fixtureProblem()
	sb := stopbuilder.Build(p)
	m := mip.NewModel()
	b := cpmodel.New(m)
	l := variables.Build(m, p, sb)

	terms := unservedTerms(b, l, p)
	require.Len(t, terms, 1)
	require.Equal(t, float64(p.Config.UnservedPenalty), terms[0].Coef)
}

func TestUnservedTermsPrefersPerShipmentPenalty(t *testing.T) {
	p := fixtureProblem()
	p.Shipments[0].UnservedPenalty = 12345
	sb := stopbuilder.Build(p)
	m := mip.NewModel()
	b := cpmodel.New(m)
	l := variables.Build(m, p, sb)

	terms := unservedTerms(b, l, p)
	require.Equal(t, 12345.0, terms[0].Coef)
}

func TestMaxOfHelper(t *testing.T) {
	require.Equal(t, 9, maxOf([]int{1, 9, 3}))
	require.Equal(t, 0, maxOf(nil))
}
