// Package variables allocates every CP variable and lookup table the
// constraint and objective modules share, per spec §4.1. Nothing here
// posts a constraint; it only builds the model's variable vocabulary so
// that constraint modules can be added independently and still agree on
// what `route[v][t]` or `is_served[s]` refers to.
package variables

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/aground5/vrp-core/internal/cpmodel"
	"github.com/aground5/vrp-core/internal/domain"
	"github.com/aground5/vrp-core/internal/stopbuilder"
)

// Horizon returns the step horizon T = 2*N_s + 2*N_v + 5, large enough
// that every stop is reachable in one step regardless of visit order.
func Horizon(numShipments, numVehicles int) int {
	return 2*numShipments + 2*numVehicles + 5
}

// Layer is the full set of allocated variables and constant lookup tables,
// indexed [vehicle][step] for the per-vehicle-per-step families and
// [stop]/[shipment] for the rest.
type Layer struct {
	Stops stopbuilder.Result

	NumVehicles  int
	NumShipments int
	NumStops     int
	NumLocations int
	Horizon      int

	TMax   int
	CapMax int

	Route    [][]mip.Int  // [v][t] in [0, NumStops)
	RouteLoc [][]mip.Int  // [v][t] in [0, NumLocations)
	Arrival  [][]mip.Int  // [v][t] in [0, TMax]
	LoadW    [][]mip.Int  // [v][t] in [0, CapMax]
	LoadV    [][]mip.Int  // [v][t] in [0, CapMax]
	Done     [][]mip.Bool // [v][t]

	IsUsed []mip.Bool // [v]

	VisitStep    []mip.Int  // [stop] in [0, Horizon]
	VisitVehicle []mip.Int  // [stop] in [0, NumVehicles] (1-based, 0=unvisited)
	IsStopActive []mip.Bool // [stop]

	IsServed []mip.Bool // [shipment]

	// Constant lookup tables, row-major flattened where noted.
	StopToLoc        []int
	StopWeightDelta   []int
	StopVolumeDelta   []int
	StopServiceDur    []int
	StopZone          []int
	TravelTimeFlat    []int // idx = from*NumLocations + to
	TravelDistFlat    []int
	SetupTimeFlat     []int // nil if the problem carries no setup matrix
}

// Build allocates every variable described in spec §4.1 against m, using
// the stop layout sb and the scalar bounds carried on p.Config.
func Build(m mip.Model, p domain.Problem, sb stopbuilder.Result) *Layer {
	nv := p.NumVehicles()
	ns := p.NumShipments()
	nStops := sb.NumStops()
	nLoc := p.NumLocations()
	horizon := Horizon(ns, nv)

	tMax := maxArrivalBound(p)
	capMax := maxCapacityBound(p)

	l := &Layer{
		Stops:        sb,
		NumVehicles:  nv,
		NumShipments: ns,
		NumStops:     nStops,
		NumLocations: nLoc,
		Horizon:      horizon,
		TMax:         tMax,
		CapMax:       capMax,

		StopToLoc:      sb.StopToLocation(),
		StopWeightDelta: sb.WeightDeltas(),
		StopVolumeDelta: sb.VolumeDeltas(),
		StopServiceDur:  sb.ServiceDurations(),
		StopZone:        sb.Zones(),
	}

	l.TravelTimeFlat = flatten(p.TravelTime, nLoc)
	l.TravelDistFlat = flatten(p.TravelDistance, nLoc)
	if p.SetupTime != nil {
		l.SetupTimeFlat = flatten(p.SetupTime, nLoc)
	}

	l.Route = make([][]mip.Int, nv)
	l.RouteLoc = make([][]mip.Int, nv)
	l.Arrival = make([][]mip.Int, nv)
	l.LoadW = make([][]mip.Int, nv)
	l.LoadV = make([][]mip.Int, nv)
	l.Done = make([][]mip.Bool, nv)

	for v := 0; v < nv; v++ {
		l.Route[v] = make([]mip.Int, horizon)
		l.RouteLoc[v] = make([]mip.Int, horizon)
		l.Arrival[v] = make([]mip.Int, horizon)
		l.LoadW[v] = make([]mip.Int, horizon)
		l.LoadV[v] = make([]mip.Int, horizon)
		l.Done[v] = make([]mip.Bool, horizon)

		for t := 0; t < horizon; t++ {
			l.Route[v][t] = m.NewInt(0, nStops-1)
			l.RouteLoc[v][t] = m.NewInt(0, nLoc-1)
			l.Arrival[v][t] = m.NewInt(0, tMax)
			l.LoadW[v][t] = m.NewInt(0, capMax)
			l.LoadV[v][t] = m.NewInt(0, capMax)
			l.Done[v][t] = m.NewBool()
		}
	}

	l.IsUsed = make([]mip.Bool, nv)
	for v := 0; v < nv; v++ {
		l.IsUsed[v] = m.NewBool()
	}

	l.VisitStep = make([]mip.Int, nStops)
	l.VisitVehicle = make([]mip.Int, nStops)
	l.IsStopActive = make([]mip.Bool, nStops)
	for s := 0; s < nStops; s++ {
		l.VisitStep[s] = m.NewInt(0, horizon)
		l.VisitVehicle[s] = m.NewInt(0, nv)
		l.IsStopActive[s] = m.NewBool()
	}

	l.IsServed = make([]mip.Bool, ns)
	for s := 0; s < ns; s++ {
		l.IsServed[s] = m.NewBool()
	}

	// route_loc[v,t] is bound by element(route[v,t], stop_to_loc); the
	// binding itself belongs to the routing constraint module (it ties a
	// variable allocated here to the cpmodel.BindElementInt helper), kept out
	// of this package so Layer stays a pure allocation record.
	_ = cpmodel.Term{}

	return l
}

// StartStop returns the start-depot stop id for vehicle v.
func (l *Layer) StartStop(v int) int { return l.Stops.StartDepotOf[v] }

// EndStop returns the end-depot stop id for vehicle v.
func (l *Layer) EndStop(v int) int { return l.Stops.EndDepotOf[v] }

func flatten(matrix [][]int, n int) []int {
	out := make([]int, n*n)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if matrix == nil {
				out[from*n+to] = 0
				continue
			}
			out[from*n+to] = matrix[from][to]
		}
	}
	return out
}

// maxArrivalBound bounds arrival[v,t]: the latest any vehicle could still
// be on shift, plus one full travel leg of slack.
func maxArrivalBound(p domain.Problem) int {
	bound := 0
	for _, v := range p.Vehicles {
		end := v.Labor.Shift.StartTime + v.Labor.Shift.MaxDuration
		if end > bound {
			bound = end
		}
	}
	longest := 0
	for _, row := range p.TravelTime {
		for _, d := range row {
			if d < domain.UnroutableTime && d > longest {
				longest = d
			}
		}
	}
	return bound + longest + 1
}

// maxCapacityBound bounds load_w/load_v: the largest scaled vehicle
// capacity across the fleet.
func maxCapacityBound(p domain.Problem) int {
	bound := 0
	for _, v := range p.Vehicles {
		if v.Capacity.Weight > bound {
			bound = v.Capacity.Weight
		}
		if v.Capacity.Volume > bound {
			bound = v.Capacity.Volume
		}
	}
	return bound
}
