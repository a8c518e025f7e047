package value

// ActivityParams is the partial, user-supplied parameter document: one
// optional section per activity kind. Unset numeric fields stay nil, since zero is
// an explicit, distinguishable input, never a fallback.
type ActivityParams struct {
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

// Override applies the non-nil fields of over on top of p.
func (p *FarmingParams) Override(over *FarmingParams) {
	if over == nil {
		return
	}

	coalesce(&p.SeedItemID, over.SeedItemID)
	coalesce(&p.HerbItemID, over.HerbItemID)
	coalesce(&p.CompostItemID, over.CompostItemID)
	coalesce(&p.NumPatches, over.NumPatches)
	coalesce(&p.AvgYieldPerPatch, over.AvgYieldPerPatch)
	coalesce(&p.GrowthTimeMinutes, over.GrowthTimeMinutes)
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

func (p *BirdhouseParams) Override(over *BirdhouseParams) {
	if over == nil {
		return
	}

	coalesce(&p.LogItemID, over.LogItemID)
	coalesce(&p.SeedItemID, over.SeedItemID)
	coalesce(&p.NumBirdhouses, over.NumBirdhouses)
	coalesce(&p.SeedsPerHouse, over.SeedsPerHouse)
	coalesce(&p.AvgNestsPerRun, over.AvgNestsPerRun)
	coalesce(&p.AvgValuePerNest, over.AvgValuePerNest)
	coalesce(&p.RunTimeMinutes, over.RunTimeMinutes)
	coalesce(&p.CycleTimeMinutes, over.CycleTimeMinutes)
}

type GOTRParams struct {
	EssenceItemID        *int     `json:"essence_item_id,omitempty"`
	GamesPerHour         *float64 `json:"games_per_hour,omitempty"`
	EssencePerGame       *float64 `json:"essence_per_game,omitempty"`
	AvgRuneValuePerGame  *float64 `json:"avg_rune_value_per_game,omitempty"`
	AvgPearlValuePerGame *float64 `json:"avg_pearl_value_per_game,omitempty"`
}

func (p *GOTRParams) Override(over *GOTRParams) {
	if over == nil {
		return
	}

	coalesce(&p.EssenceItemID, over.EssenceItemID)
	coalesce(&p.GamesPerHour, over.GamesPerHour)
	coalesce(&p.EssencePerGame, over.EssencePerGame)
	coalesce(&p.AvgRuneValuePerGame, over.AvgRuneValuePerGame)
	coalesce(&p.AvgPearlValuePerGame, over.AvgPearlValuePerGame)
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
	// KillRateOverrides pins kills/hour per monster id, bypassing estimation.
	KillRateOverrides map[string]float64 `json:"kill_rate_overrides,omitempty"`
}

func (p *SlayerParams) Override(over *SlayerParams) {
	if over == nil {
		return
	}

	coalesce(&p.MasterID, over.MasterID)
	coalesce(&p.MonsterID, over.MonsterID)
	coalesce(&p.Mode, over.Mode)
	coalesce(&p.SlayerLevel, over.SlayerLevel)
	coalesce(&p.CombatLevel, over.CombatLevel)
	coalesce(&p.AttackLevel, over.AttackLevel)
	coalesce(&p.StrengthLevel, over.StrengthLevel)
	coalesce(&p.RangedLevel, over.RangedLevel)
	coalesce(&p.MagicLevel, over.MagicLevel)
	coalesce(&p.SupplyCostMultiplier, over.SupplyCostMultiplier)

	for id, kph := range over.KillRateOverrides {
		if p.KillRateOverrides == nil {
			p.KillRateOverrides = make(map[string]float64, len(over.KillRateOverrides))
		}
		p.KillRateOverrides[id] = kph
	}
}

func coalesce[T any](dst **T, over *T) {
	if over != nil {
		*dst = over
	}
}
