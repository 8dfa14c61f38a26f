package main

import (
	"time"

	"github.com/aground5/vrp-core/internal/domain"
)

// input mirrors the field list of spec §6's solve(problem) record.
type input struct {
	Locations      []locationIn  `json:"locations"`
	Vehicles       []vehicleIn   `json:"vehicles"`
	Shipments      []shipmentIn  `json:"shipments"`
	TravelTime     [][]int       `json:"travel_time"`
	TravelDistance [][]int       `json:"travel_distance"`
	SetupTime      [][]int       `json:"setup_time,omitempty"`
	Penalties      penaltiesIn   `json:"penalties"`
	Operations     operationsIn  `json:"operations"`
	Config         configIn      `json:"config"`
}

type locationIn struct {
	Name            string  `json:"name"`
	ServiceDuration int     `json:"service_duration"`
	ZoneID          int     `json:"zone_id"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
}

type vehicleIn struct {
	Name          string   `json:"name"`
	StartLocation int      `json:"start_location"`
	EndLocation   int      `json:"end_location"`
	Capacity      struct {
		Weight float64 `json:"weight"`
		Volume float64 `json:"volume"`
	} `json:"capacity"`
	Cost struct {
		Fixed      float64 `json:"fixed"`
		PerKM      float64 `json:"per_km"`
		PerMinute  float64 `json:"per_minute"`
		PerKgKM    float64 `json:"per_kg_km"`
		PerWaitMin float64 `json:"per_wait_min"`
	} `json:"cost"`
	Shift struct {
		StartTime        int `json:"start_time"`
		MaxDuration      int `json:"max_duration"`
		StandardDuration int `json:"standard_duration"`
	} `json:"shift"`
	BreakRule struct {
		IntervalMinutes int `json:"interval_minutes"`
		DurationMinutes int `json:"duration_minutes"`
	} `json:"break_rule"`
	LaborCost struct {
		RegularRate        float64 `json:"regular_rate"`
		OvertimeMultiplier float64 `json:"overtime_multiplier"`
	} `json:"labor_cost"`
	Tags []string `json:"tags,omitempty"`
}

type shipmentIn struct {
	Name             string  `json:"name"`
	PickupLocation   int     `json:"pickup_location"`
	DeliveryLocation int     `json:"delivery_location"`
	Cargo            struct {
		Weight float64 `json:"weight"`
		Volume float64 `json:"volume"`
	} `json:"cargo"`
	PickupWindow struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"pickup_window"`
	DeliveryWindow struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"delivery_window"`
	RequiredTags    []string `json:"required_tags,omitempty"`
	Priority        int      `json:"priority,omitempty"`
	UnservedPenalty int      `json:"unserved_penalty,omitempty"`
}

type penaltiesIn struct {
	Unserved     int `json:"unserved"`
	LateDelivery int `json:"late_delivery"`
	ZoneCrossing int `json:"zone_crossing"`
}

type operationsIn struct {
	DepotServiceTime int `json:"depot_service_time"`
	MinIntraTransit  int `json:"min_intra_transit"`
}

type configIn struct {
	CapacityScaleFactor int           `json:"capacity_scale_factor"`
	StandardWorkTime    int           `json:"standard_work_time"`
	MaxWorkTime         int           `json:"max_work_time"`
	OvertimeMultiplier  float64       `json:"overtime_multiplier"`
	BreakInterval       int           `json:"break_interval"`
	BreakDuration       int           `json:"break_duration"`
	CostPerKgKM         int           `json:"cost_per_kg_km"`
	CostPerWaitMin      int           `json:"cost_per_wait_min"`
	UnservedPenalty     int           `json:"unserved_penalty"`
	LatePenalty         int           `json:"late_penalty"`
	ZonePenalty         int           `json:"zone_penalty"`
	MaxSolverTime       time.Duration `json:"max_solver_time,omitempty" default:"30s"`
	NumSolverWorkers    int           `json:"num_solver_workers,omitempty" default:"8"`
}

// toProblem converts the wire input into the domain model, scaling
// floating-point weights/volumes by capacity_scale_factor per spec §6.
func (in input) toProblem() domain.Problem {
	cfg := domain.DefaultConfig()
	if in.Config.CapacityScaleFactor != 0 {
		cfg.CapacityScaleFactor = in.Config.CapacityScaleFactor
	}
	scale := cfg.CapacityScaleFactor

	p := domain.Problem{
		TravelTime:     in.TravelTime,
		TravelDistance: in.TravelDistance,
		SetupTime:      in.SetupTime,
		Penalties: domain.Penalties{
			Unserved:     in.Penalties.Unserved,
			LateDelivery: in.Penalties.LateDelivery,
			ZoneCrossing: in.Penalties.ZoneCrossing,
		},
		Operations: domain.Operations{
			DepotServiceTime: in.Operations.DepotServiceTime,
			MinIntraTransit:  in.Operations.MinIntraTransit,
		},
		Config: cfg,
	}

	for i, l := range in.Locations {
		p.Locations = append(p.Locations, domain.Location{
			ID: i, Name: l.Name, ServiceDuration: l.ServiceDuration,
			ZoneID: l.ZoneID, Lat: l.Lat, Lon: l.Lon,
		})
	}

	for i, v := range in.Vehicles {
		p.Vehicles = append(p.Vehicles, domain.Vehicle{
			ID: i, Name: v.Name, StartLocation: v.StartLocation, EndLocation: v.EndLocation,
			Capacity: domain.Capacity{
				Weight: int(v.Capacity.Weight * float64(scale)),
				Volume: int(v.Capacity.Volume * float64(scale)),
			},
			Cost: domain.CostProfile{
				Fixed: int(v.Cost.Fixed), PerKM: int(v.Cost.PerKM), PerMinute: int(v.Cost.PerMinute),
				PerKgKM: int(v.Cost.PerKgKM), PerWaitMin: int(v.Cost.PerWaitMin),
			},
			Labor: domain.LaborPolicy{
				Shift: domain.WorkShift{
					StartTime: v.Shift.StartTime, MaxDuration: v.Shift.MaxDuration,
					StandardDuration: v.Shift.StandardDuration,
				},
				BreakRule: domain.BreakRule{
					IntervalMinutes: v.BreakRule.IntervalMinutes, DurationMinutes: v.BreakRule.DurationMinutes,
				},
				Cost: domain.LaborCost{
					RegularRate: int(v.LaborCost.RegularRate), OvertimeMultiplier: v.LaborCost.OvertimeMultiplier,
				},
			},
			Tags: v.Tags,
		})
	}

	for i, s := range in.Shipments {
		p.Shipments = append(p.Shipments, domain.Shipment{
			ID: i, Name: s.Name, PickupLocation: s.PickupLocation, DeliveryLocation: s.DeliveryLocation,
			Cargo: domain.Cargo{
				Weight: int(s.Cargo.Weight * float64(scale)),
				Volume: int(s.Cargo.Volume * float64(scale)),
			},
			PickupWindow:    domain.TimeWindow{Start: s.PickupWindow.Start, End: s.PickupWindow.End},
			DeliveryWindow:  domain.TimeWindow{Start: s.DeliveryWindow.Start, End: s.DeliveryWindow.End},
			RequiredTags:    s.RequiredTags,
			Priority:        s.Priority,
			UnservedPenalty: s.UnservedPenalty,
		})
	}

	if in.Config.MaxSolverTime != 0 {
		p.Config.MaxSolverTime = in.Config.MaxSolverTime
	}
	if in.Config.NumSolverWorkers != 0 {
		p.Config.NumSolverWorkers = in.Config.NumSolverWorkers
	}

	return p
}

// output mirrors spec §6's solution record, with weights/volumes de-scaled
// back to floating point.
type output struct {
	Status            string      `json:"status"`
	Routes            []routeOut  `json:"routes"`
	Costs             costsOut    `json:"costs"`
	UnservedShipments []int       `json:"unserved_shipments"`
}

type routeOut struct {
	VehicleID     int        `json:"vehicle_id"`
	Stops         []stopOut  `json:"stops"`
	TotalDistance int        `json:"total_distance"`
	TotalTime     int        `json:"total_time"`
}

type stopOut struct {
	SiteID      int     `json:"site_id"`
	ArrivalTime int     `json:"arrival_time"`
	LoadWeight  float64 `json:"load_weight"`
	LoadVolume  float64 `json:"load_volume"`
	IsLate      bool    `json:"is_late"`
	StopType    string  `json:"stop_type"`
	ShipmentID  *int    `json:"shipment_id,omitempty"`
}

type costsOut struct {
	Fixed      int `json:"fixed"`
	Distance   int `json:"distance"`
	Labor      int `json:"labor"`
	Zone       int `json:"zone"`
	Rehandling int `json:"rehandling"`
	Waiting    int `json:"waiting"`
	Late       int `json:"late"`
	Unserved   int `json:"unserved"`
	Total      int `json:"total"`
}

func fromSolution(sol domain.Solution, scale int) output {
	out := output{
		Status:            string(sol.Status),
		UnservedShipments: sol.UnservedShipments,
		Costs: costsOut{
			Fixed: sol.Costs.Fixed, Distance: sol.Costs.Distance, Labor: sol.Costs.Labor,
			Zone: sol.Costs.Zone, Rehandling: sol.Costs.Rehandling, Waiting: sol.Costs.Waiting,
			Late: sol.Costs.Late, Unserved: sol.Costs.Unserved, Total: sol.Costs.Total,
		},
	}

	for _, r := range sol.Routes {
		ro := routeOut{VehicleID: r.VehicleID, TotalDistance: r.TotalDistance, TotalTime: r.TotalTime}
		for _, s := range r.Stops {
			so := stopOut{
				SiteID: s.LocationID, ArrivalTime: s.ArrivalTime,
				LoadWeight: float64(s.LoadWeight) / float64(scale),
				LoadVolume: float64(s.LoadVolume) / float64(scale),
				IsLate:     s.IsLate,
				StopType:   s.Kind.String(),
			}
			if s.ShipmentID >= 0 {
				id := s.ShipmentID
				so.ShipmentID = &id
			}
			ro.Stops = append(ro.Stops, so)
		}
		out.Routes = append(out.Routes, ro)
	}

	return out
}
