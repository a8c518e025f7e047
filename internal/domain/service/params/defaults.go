package params

import "gp_tracker/internal/domain/value"

// Well-known item ids the default parameter sets price against.
const (
	ItemTorstolSeed  = 5309
	ItemGrimyTorstol = 219
	ItemUltracompost = 21483
	ItemRedwoodLogs  = 19669
	ItemPotatoSeed   = 5318
	ItemPureEssence  = 7936
)

func ptr[T any](v T) *T { return &v }

// defaultFarming is a 9-patch torstol run.
func defaultFarming() *value.FarmingParams {
	return &value.FarmingParams{
		SeedItemID:        ptr(ItemTorstolSeed),
		HerbItemID:        ptr(ItemGrimyTorstol),
		CompostItemID:     ptr(ItemUltracompost),
		NumPatches:        ptr(9.0),
		AvgYieldPerPatch:  ptr(8.0),
		GrowthTimeMinutes: ptr(80.0),
	}
}

// defaultBirdhouse is a 4-house redwood run seeded with potato seeds.
func defaultBirdhouse() *value.BirdhouseParams {
	return &value.BirdhouseParams{
		LogItemID:        ptr(ItemRedwoodLogs),
		SeedItemID:       ptr(ItemPotatoSeed),
		NumBirdhouses:    ptr(4.0),
		SeedsPerHouse:    ptr(10.0),
		AvgNestsPerRun:   ptr(10.0),
		AvgValuePerNest:  ptr(5000.0),
		RunTimeMinutes:   ptr(5.0),
		CycleTimeMinutes: ptr(50.0),
	}
}

func defaultGOTR() *value.GOTRParams {
	return &value.GOTRParams{
		EssenceItemID:        ptr(ItemPureEssence),
		GamesPerHour:         ptr(4.0),
		EssencePerGame:       ptr(150.0),
		AvgRuneValuePerGame:  ptr(15000.0),
		AvgPearlValuePerGame: ptr(8000.0),
	}
}

func defaultSlayer() *value.SlayerParams {
	return &value.SlayerParams{
		MasterID:             ptr("spria"),
		Mode:                 ptr(value.ModeExpected.String()),
		SlayerLevel:          ptr(85),
		CombatLevel:          ptr(100),
		AttackLevel:          ptr(80),
		StrengthLevel:        ptr(80),
		RangedLevel:          ptr(85),
		MagicLevel:           ptr(80),
		SupplyCostMultiplier: ptr(1.0),
	}
}
