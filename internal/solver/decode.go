package solver

import (
	"math"

	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/objective"
	"github.com/aground5/vrp-core/internal/variables"
)

// Decode turns a solved model back into a domain.Solution. On a nil
// solution (INFEASIBLE/UNKNOWN) it returns the all-unserved fallback shape
// required by spec §4.8/§7: empty routes, every shipment unserved.
func Decode(status Status, solution mip.Solution, l *variables.Layer, bk objective.Buckets, p domain.Problem, runID string) domain.Solution {
	if status == StatusInfeasible || solution == nil {
		unserved := make([]int, p.NumShipments())
		for i := range unserved {
			unserved[i] = p.Shipments[i].ID
		}
		return domain.Solution{
			RunID:             runID,
			Status:            domain.StatusInfeasible,
			UnservedShipments: unserved,
		}
	}

	routes := make([]domain.Route, 0, l.NumVehicles)
	for v := 0; v < l.NumVehicles; v++ {
		if solution.Value(l.IsUsed[v]) < 0.5 {
			continue
		}
		routes = append(routes, decodeRoute(solution, l, p, v))
	}

	var unserved []int
	for s := 0; s < l.NumShipments; s++ {
		if solution.Value(l.IsServed[s]) < 0.5 {
			unserved = append(unserved, p.Shipments[s].ID)
		}
	}

	costs := domain.Costs{
		Fixed:      roundVal(solution, bk.Fixed),
		Distance:   roundVal(solution, bk.Distance),
		Labor:      roundVal(solution, bk.Labor),
		Zone:       roundVal(solution, bk.Zone),
		Waiting:    roundVal(solution, bk.Waiting),
		Unserved:   roundVal(solution, bk.Unserved),
		Rehandling: roundVal(solution, bk.Rehandling),
	}
	costs.Total = costs.Sum()

	return domain.Solution{
		RunID:             runID,
		Status:            domain.Status(status),
		Routes:            routes,
		Costs:             costs,
		UnservedShipments: unserved,
	}
}

func decodeRoute(solution mip.Solution, l *variables.Layer, p domain.Problem, v int) domain.Route {
	route := domain.Route{VehicleID: p.Vehicles[v].ID}

	prevLoc := -1
	for t := 0; t < l.Horizon; t++ {
		stopID := roundVal(solution, l.Route[v][t])
		stop := l.Stops.Stops[stopID]

		// load_w[v,t]/load_v[v,t] hold the load on arrival at stop t, before
		// its own delta is applied; report the load-after-stop value per
		// spec §3/§8.5, which lives in slot t+1.
		loadAfter := t
		if t+1 < l.Horizon {
			loadAfter = t + 1
		}

		rs := domain.RouteStop{
			StopID:      stopID,
			LocationID:  stop.Location,
			Kind:        stop.Kind,
			ShipmentID:  -1,
			ArrivalTime: roundVal(solution, l.Arrival[v][t]),
			LoadWeight:  roundVal(solution, l.LoadW[v][loadAfter]),
			LoadVolume:  roundVal(solution, l.LoadV[v][loadAfter]),
		}
		if stop.Kind == domain.Pickup || stop.Kind == domain.Delivery {
			rs.ShipmentID = p.Shipments[stop.ShipmentIdx].ID
		}
		route.Stops = append(route.Stops, rs)

		if prevLoc >= 0 {
			route.TotalDistance += p.TravelDistance[prevLoc][stop.Location]
			route.TotalTime += p.TravelTime[prevLoc][stop.Location]
		}
		prevLoc = stop.Location

		if solution.Value(l.Done[v][t]) > 0.5 && stop.Kind == domain.DepotEnd {
			break
		}
	}
	return route
}

func roundVal(solution mip.Solution, v mip.Int) int {
	return int(math.Round(solution.Value(v)))
}
