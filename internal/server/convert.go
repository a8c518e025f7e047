package server

import (
	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/rest"
)

func newDomainParams(request rest.CalculateRequest) value.ActivityParams {
	var params value.ActivityParams

	if p := request.Farming; p != nil {
		params.Farming = &value.FarmingParams{
			SeedItemID:        p.SeedItemID,
			HerbItemID:        p.HerbItemID,
			CompostItemID:     p.CompostItemID,
			NumPatches:        p.NumPatches,
			AvgYieldPerPatch:  p.AvgYieldPerPatch,
			GrowthTimeMinutes: p.GrowthTimeMinutes,
		}
	}

	if p := request.Birdhouse; p != nil {
		params.Birdhouse = &value.BirdhouseParams{
			LogItemID:        p.LogItemID,
			SeedItemID:       p.SeedItemID,
			NumBirdhouses:    p.NumBirdhouses,
			SeedsPerHouse:    p.SeedsPerHouse,
			AvgNestsPerRun:   p.AvgNestsPerRun,
			AvgValuePerNest:  p.AvgValuePerNest,
			RunTimeMinutes:   p.RunTimeMinutes,
			CycleTimeMinutes: p.CycleTimeMinutes,
		}
	}

	if p := request.GOTR; p != nil {
		params.GOTR = &value.GOTRParams{
			EssenceItemID:        p.EssenceItemID,
			GamesPerHour:         p.GamesPerHour,
			EssencePerGame:       p.EssencePerGame,
			AvgRuneValuePerGame:  p.AvgRuneValuePerGame,
			AvgPearlValuePerGame: p.AvgPearlValuePerGame,
		}
	}

	if p := request.Slayer; p != nil {
		params.Slayer = &value.SlayerParams{
			MasterID:             p.MasterID,
			MonsterID:            p.MonsterID,
			Mode:                 p.Mode,
			SlayerLevel:          p.SlayerLevel,
			CombatLevel:          p.CombatLevel,
			AttackLevel:          p.AttackLevel,
			StrengthLevel:        p.StrengthLevel,
			RangedLevel:          p.RangedLevel,
			MagicLevel:           p.MagicLevel,
			SupplyCostMultiplier: p.SupplyCostMultiplier,
			KillRateOverrides:    p.KillRateOverrides,
		}
	}

	return params
}

func newRESTMasterSummary(master entity.SlayerMaster) rest.MasterSummary {
	return rest.MasterSummary{
		ID:        master.ID,
		Name:      master.Name,
		CombatReq: master.CombatReq,
		SlayerReq: master.SlayerReq,
		Tasks:     len(master.TaskAssignments),
	}
}
