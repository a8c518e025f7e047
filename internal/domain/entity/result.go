package entity

// CalculationResult is the per-request output of every activity formula.
// GPHour may be negative: an unprofitable configuration is valid output.
type CalculationResult struct {
	Activity       string             `json:"activity"`
	GPHour         float64            `json:"gp_hr"`
	Revenue        float64            `json:"revenue"`
	Costs          map[string]float64 `json:"costs"`
	ProfitPerCycle float64            `json:"profit_per_cycle"`
	CycleTimeHours float64            `json:"cycle_time_hours"`
	PricesUsed     map[string]float64 `json:"prices_used"`
	// PartialPriceData flags that at least one price input was unavailable and
	// its contribution was zeroed instead of failing the calculation.
	PartialPriceData bool `json:"partial_price_data,omitempty"`
	StalePriceData   bool `json:"stale_price_data,omitempty"`

	// Slayer-only extension.
	Slayer *SlayerResult `json:"slayer,omitempty"`
}

type SlayerResult struct {
	Mode        string             `json:"mode"`
	MasterID    string             `json:"master_id,omitempty"`
	MasterName  string             `json:"master_name,omitempty"`
	Overall     SlayerOverall      `json:"overall"`
	Assignments []SlayerAssignment `json:"assignments,omitempty"`
}

type SlayerOverall struct {
	ExpectedGPHour float64 `json:"expected_gp_per_hour"`
	AvgGPPerTask   float64 `json:"avg_gp_per_task"`
	TasksPerHour   float64 `json:"tasks_per_hour"`
	AvailableTasks int     `json:"available_tasks"`
	TotalTasks     int     `json:"total_possible_tasks"`
}

// SlayerAssignment is one eligible monster's evaluated line in a breakdown.
type SlayerAssignment struct {
	MonsterID        string  `json:"monster_id"`
	MonsterName      string  `json:"monster_name"`
	Probability      float64 `json:"probability"`
	KillsPerHour     float64 `json:"kills_per_hour"`
	LootPerKill      float64 `json:"loot_per_kill"`
	SupplyCostPerHour float64 `json:"supply_cost_per_hour"`
	GPHour           float64 `json:"gp_per_hour"`
	GPPerTask        float64 `json:"gp_per_task"`
	TasksPerHour     float64 `json:"tasks_per_hour"`
	AvgTaskQuantity  float64 `json:"avg_task_quantity"`
	PartialPriceData bool    `json:"partial_price_data,omitempty"`
}
