package entity

// TaskAssignment is the raw assignment data a slayer master stores for one
// monster. Weight is relative likelihood prior to normalization; the
// probability is derived per request over the eligible subset.
type TaskAssignment struct {
	Weight      float64 `json:"weight"`
	QuantityMin int     `json:"quantity_min"`
	QuantityMax int     `json:"quantity_max"`
}

// AvgQuantity is the expected task size for the assignment.
func (a TaskAssignment) AvgQuantity() float64 {
	return float64(a.QuantityMin+a.QuantityMax) / 2
}

type SlayerMaster struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	CombatReq       int                       `json:"combat_req"`
	SlayerReq       int                       `json:"slayer_req"`
	TaskAssignments map[string]TaskAssignment `json:"task_assignments"` // monster id -> assignment
}
