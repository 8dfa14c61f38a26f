package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/objective"
)

func TestDecodeInfeasibleReturnsAllShipmentsUnserved(t *testing.T) {
	p := domain.Problem{
		Shipments: []domain.Shipment{{ID: 7}, {ID: 8}},
	}

	sol := Decode(StatusInfeasible, nil, nil, objective.Buckets{}, p, "run-1")

	require.Equal(t, domain.StatusInfeasible, sol.Status)
	require.Equal(t, "run-1", sol.RunID)
	require.Equal(t, []int{7, 8}, sol.UnservedShipments)
	require.Empty(t, sol.Routes)
	require.Equal(t, domain.Costs{}, sol.Costs)
}

func TestDecodeNilSolutionFallsBackEvenWithOptimalStatus(t *testing.T) {
	p := domain.Problem{Shipments: []domain.Shipment{{ID: 3}}}

	sol := Decode(StatusOptimal, nil, nil, objective.Buckets{}, p, "run-2")

	require.Equal(t, domain.StatusInfeasible, sol.Status)
	require.Equal(t, []int{3}, sol.UnservedShipments)
}
