package stopbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aground5/vrp-core/internal/domain"
)

func trivialProblem() domain.Problem {
	return domain.Problem{
		Locations: []domain.Location{
			{ID: 0, ZoneID: domain.DepotZone},
			{ID: 1, ZoneID: 1, ServiceDuration: 5},
			{ID: 2, ZoneID: 2, ServiceDuration: 10},
		},
		Vehicles: []domain.Vehicle{
			{ID: 0, StartLocation: 0, EndLocation: 0},
		},
		Shipments: []domain.Shipment{
			{ID: 0, PickupLocation: 1, DeliveryLocation: 2, Cargo: domain.Cargo{Weight: 10, Volume: 10}},
		},
	}
}

func TestBuildLayout(t *testing.T) {
	res := Build(trivialProblem())

	require.Len(t, res.Stops, 4)
	require.Equal(t, []int{0}, res.StartDepotOf)
	require.Equal(t, []int{3}, res.EndDepotOf)
	require.Equal(t, []int{1}, res.PickupOf)
	require.Equal(t, []int{2}, res.DeliveryOf)

	require.Equal(t, domain.DepotStart, res.Stops[0].Kind)
	require.Equal(t, domain.Pickup, res.Stops[1].Kind)
	require.Equal(t, domain.Delivery, res.Stops[2].Kind)
	require.Equal(t, domain.DepotEnd, res.Stops[3].Kind)
}

func TestBuildDeltasSumToZero(t *testing.T) {
	res := Build(trivialProblem())
	pickup := res.Stops[res.PickupOf[0]]
	delivery := res.Stops[res.DeliveryOf[0]]

	require.Equal(t, 0, pickup.WeightDelta+delivery.WeightDelta)
	require.Equal(t, 0, pickup.VolumeDelta+delivery.VolumeDelta)
}

func TestBuildDepotsHaveZeroZone(t *testing.T) {
	res := Build(trivialProblem())
	require.Equal(t, domain.DepotZone, res.Stops[res.StartDepotOf[0]].Zone)
	require.Equal(t, domain.DepotZone, res.Stops[res.EndDepotOf[0]].Zone)
}

func TestBuildTablesAligned(t *testing.T) {
	res := Build(trivialProblem())
	locs := res.StopToLocation()
	require.Equal(t, []int{0, 1, 2, 0}, locs)

	svc := res.ServiceDurations()
	require.Equal(t, []int{0, 5, 10, 0}, svc)
}

func TestIsDepotStop(t *testing.T) {
	res := Build(trivialProblem())
	require.True(t, res.IsDepotStop(res.StartDepotOf[0]))
	require.True(t, res.IsDepotStop(res.EndDepotOf[0]))
	require.False(t, res.IsDepotStop(res.PickupOf[0]))
}
