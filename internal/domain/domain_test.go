package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeWindowContains(t *testing.T) {
	w := TimeWindow{Start: 10, End: 20}
	require.True(t, w.Contains(10))
	require.True(t, w.Contains(20))
	require.True(t, w.Contains(15))
	require.False(t, w.Contains(9))
	require.False(t, w.Contains(21))
}

func TestTimeWindowWidenNoop(t *testing.T) {
	w := TimeWindow{Start: 100, End: 500}
	widened := w.Widen(200, 100)
	require.Equal(t, w, widened)
}

func TestTimeWindowWidenParadox(t *testing.T) {
	w := TimeWindow{Start: 0, End: 50}
	widened := w.Widen(120, 100)
	require.Equal(t, 120, widened.Start)
	require.Equal(t, 220, widened.End)
}

func TestVehicleHasTag(t *testing.T) {
	v := Vehicle{Tags: []string{"frozen", "lift_gate"}}
	require.True(t, v.HasTag("frozen"))
	require.False(t, v.HasTag("hazmat"))
}

func TestShipmentRequiresTag(t *testing.T) {
	s := Shipment{RequiredTags: []string{"frozen"}}
	require.True(t, s.RequiresTag("frozen"))
	require.False(t, s.RequiresTag("hazmat"))
}

func TestCostsSum(t *testing.T) {
	c := Costs{Fixed: 1, Distance: 2, Labor: 3, Zone: 4, Rehandling: 5, Waiting: 6, Late: 7, Unserved: 8}
	require.Equal(t, 36, c.Sum())
}

func TestLocationIsDepot(t *testing.T) {
	require.True(t, Location{ZoneID: DepotZone}.IsDepot())
	require.False(t, Location{ZoneID: 3}.IsDepot())
}
