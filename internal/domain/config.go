package domain

import "time"

// Penalties carries the input's global penalty block. The objective does
// not read it: unserved and zone-crossing costs come from Config
// (UnservedPenalty, ZonePenalty).
type Penalties struct {
	Unserved     int
	LateDelivery int
	ZoneCrossing int
}

// Operations carries the anti-teleport buffer parameters (§4.3).
type Operations struct {
	DepotServiceTime int // minimum dwell time leaving a vehicle's start depot
	MinIntraTransit  int // minimum transit time between stops sharing a location
}

// Config is the tunable knob set for one solve, mirroring the
// config{...} input block of §6. Defaults match original_source's
// vrp_solver/config.py.
type Config struct {
	CapacityScaleFactor int

	StandardWorkTime   int
	MaxWorkTime        int
	OvertimeMultiplier float64
	BreakInterval      int
	BreakDuration      int

	CostPerKgKM    int
	CostPerWaitMin int

	UnservedPenalty int
	LatePenalty     int
	ZonePenalty     int

	// RehandlingCrowdedFraction, RehandlingMultiplier and
	// RehandlingCrowdedMultiplier are the magic numbers flagged in spec §9,
	// kept here as named configuration rather than inlined literals.
	RehandlingCrowdedFraction   float64
	RehandlingMultiplier        int
	RehandlingCrowdedMultiplier int

	// TimeParadoxSlack is the window widened by precheck (§4.9), in minutes.
	TimeParadoxSlack int

	MaxSolverTime    time.Duration
	NumSolverWorkers int
}

// DefaultConfig returns the configuration defaults carried over from the
// Python reference implementation.
func DefaultConfig() Config {
	return Config{
		CapacityScaleFactor: 100,

		StandardWorkTime:   480,
		MaxWorkTime:        720,
		OvertimeMultiplier: 1.5,
		BreakInterval:      240,
		BreakDuration:      30,

		CostPerKgKM:    1,
		CostPerWaitMin: 5,

		UnservedPenalty: 500000,
		LatePenalty:     50000,
		ZonePenalty:     2000,

		RehandlingCrowdedFraction:   0.70,
		RehandlingMultiplier:        10,
		RehandlingCrowdedMultiplier: 50,

		TimeParadoxSlack: 100,

		MaxSolverTime:    30 * time.Second,
		NumSolverWorkers: 8,
	}
}
