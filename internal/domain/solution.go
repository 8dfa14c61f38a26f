package domain

// Status is the outcome of a solve attempt (§6, §7).
type Status string

const (
	StatusOptimal     Status = "optimal"
	StatusFeasible    Status = "feasible"
	StatusInfeasible  Status = "infeasible"
)

// Costs is the breakdown of the objective (§4.7); Total must equal the sum
// of the other eight fields (§8 invariant 9).
type Costs struct {
	Fixed       int
	Distance    int
	Labor       int
	Zone        int
	Rehandling  int
	Waiting     int
	Late        int
	Unserved    int
	Total       int
}

// Sum recomputes Total from the other fields.
func (c Costs) Sum() int {
	return c.Fixed + c.Distance + c.Labor + c.Zone + c.Rehandling + c.Waiting + c.Late + c.Unserved
}

// Solution is the immutable result of one solve call.
type Solution struct {
	RunID             string
	Status            Status
	Routes            []Route
	Costs             Costs
	UnservedShipments []int // shipment ids
}
