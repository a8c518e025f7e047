package rest

// CalculateRequest is the body of POST /v1/calculate. Params are partial:
// anything omitted falls back to the stored user config and then defaults.
type CalculateRequest struct {
	Activity string `json:"activity" validate:"required"`
	UserID   string `json:"user_id,omitempty"`

	Farming   *FarmingParams   `json:"farming,omitempty"`
	Birdhouse *BirdhouseParams `json:"birdhouse,omitempty"`
	GOTR      *GOTRParams      `json:"gotr,omitempty"`
	Slayer    *SlayerParams    `json:"slayer,omitempty"`
}

type FarmingParams struct {
	SeedItemID        *int     `json:"seed_item_id,omitempty"`
	HerbItemID        *int     `json:"herb_item_id,omitempty"`
	CompostItemID     *int     `json:"compost_item_id,omitempty"`
	NumPatches        *float64 `json:"num_patches,omitempty"`
	AvgYieldPerPatch  *float64 `json:"avg_yield_per_patch,omitempty"`
	GrowthTimeMinutes *float64 `json:"growth_time_minutes,omitempty"`
}

type BirdhouseParams struct {
	LogItemID        *int     `json:"log_item_id,omitempty"`
	SeedItemID       *int     `json:"seed_item_id,omitempty"`
	NumBirdhouses    *float64 `json:"num_birdhouses,omitempty"`
	SeedsPerHouse    *float64 `json:"seeds_per_house,omitempty"`
	AvgNestsPerRun   *float64 `json:"avg_nests_per_run,omitempty"`
	AvgValuePerNest  *float64 `json:"avg_value_per_nest,omitempty"`
	RunTimeMinutes   *float64 `json:"run_time_minutes,omitempty"`
	CycleTimeMinutes *float64 `json:"cycle_time_minutes,omitempty"`
}

type GOTRParams struct {
	EssenceItemID        *int     `json:"essence_item_id,omitempty"`
	GamesPerHour         *float64 `json:"games_per_hour,omitempty"`
	EssencePerGame       *float64 `json:"essence_per_game,omitempty"`
	AvgRuneValuePerGame  *float64 `json:"avg_rune_value_per_game,omitempty"`
	AvgPearlValuePerGame *float64 `json:"avg_pearl_value_per_game,omitempty"`
}

type SlayerParams struct {
	MasterID  *string `json:"master_id,omitempty"`
	MonsterID *string `json:"monster_id,omitempty"`
	Mode      *string `json:"mode,omitempty"`

	SlayerLevel   *int `json:"slayer_level,omitempty"`
	CombatLevel   *int `json:"combat_level,omitempty"`
	AttackLevel   *int `json:"attack_level,omitempty"`
	StrengthLevel *int `json:"strength_level,omitempty"`
	RangedLevel   *int `json:"ranged_level,omitempty"`
	MagicLevel    *int `json:"magic_level,omitempty"`

	SupplyCostMultiplier *float64 `json:"supply_cost_multiplier,omitempty"`

	KillRateOverrides map[string]float64 `json:"kill_rate_overrides,omitempty"`
}

// MasterSummary is one element of GET /v1/slayer/masters.
type MasterSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CombatReq int    `json:"combat_req"`
	SlayerReq int    `json:"slayer_req"`
	Tasks     int    `json:"tasks"`
}

// Error is the wire model every failed request replies with.
type Error struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Fields    []string `json:"fields,omitempty"`
	SupportID string   `json:"supportId"`
}
