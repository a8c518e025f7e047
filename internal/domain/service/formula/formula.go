// Package formula holds the pure per-activity profitability strategies.
// A strategy maps resolved parameters plus the prices it was handed to a
// CalculationResult; it performs no I/O and keeps no state.
package formula

import (
	"fmt"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/service/params"
	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/errcodes"
)

const minutesPerHour = 60.0

// Price is one resolved unit price as seen by a formula.
type Price struct {
	Unit  float64
	Stale bool
}

// PriceSet maps item id to its resolved price. Structural inputs (seed, herb,
// log, essence) must be present; loot-table items may be absent and degrade.
type PriceSet map[int]Price

func (ps PriceSet) require(itemID int) (Price, error) {
	p, ok := ps[itemID]
	if !ok {
		return Price{}, domain.NewError(
			errcodes.PriceUnavailable,
			fmt.Sprintf("no price for required item %d", itemID),
		)
	}

	return p, nil
}

// Farming values one herb-run cycle.
//
//	revenue = avg_yield_per_patch * num_patches * herb_price
//	costs   = num_patches * (seed_price + compost_price)
//	gp_hr   = (revenue - costs) / (growth_time_minutes / 60)
func Farming(p params.ResolvedFarming, prices PriceSet) (entity.CalculationResult, error) {
	seed, err := prices.require(p.SeedItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	herb, err := prices.require(p.HerbItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	compost, err := prices.require(p.CompostItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	seedCost := p.NumPatches * seed.Unit
	compostCost := p.NumPatches * compost.Unit
	totalCosts := seedCost + compostCost

	revenue := p.AvgYieldPerPatch * p.NumPatches * herb.Unit
	profit := revenue - totalCosts
	cycleHours := p.GrowthTimeMinutes / minutesPerHour

	return entity.CalculationResult{
		Activity:       value.ActivityFarming.String(),
		GPHour:         profit / cycleHours,
		Revenue:        revenue,
		Costs:          map[string]float64{"seeds": seedCost, "compost": compostCost, "total": totalCosts},
		ProfitPerCycle: profit,
		CycleTimeHours: cycleHours,
		PricesUsed: map[string]float64{
			"seed":    seed.Unit,
			"herb":    herb.Unit,
			"compost": compost.Unit,
		},
		StalePriceData: seed.Stale || herb.Stale || compost.Stale,
	}, nil
}

// Birdhouse values one birdhouse run plus the idle cycle until the next one.
func Birdhouse(p params.ResolvedBirdhouse, prices PriceSet) (entity.CalculationResult, error) {
	logs, err := prices.require(p.LogItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	seeds, err := prices.require(p.SeedItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	logCost := p.NumBirdhouses * logs.Unit
	seedCost := p.NumBirdhouses * p.SeedsPerHouse * seeds.Unit
	totalCosts := logCost + seedCost

	revenue := p.AvgNestsPerRun * p.AvgValuePerNest
	profit := revenue - totalCosts
	cycleHours := (p.RunTimeMinutes + p.CycleTimeMinutes) / minutesPerHour

	return entity.CalculationResult{
		Activity:       value.ActivityBirdhouse.String(),
		GPHour:         profit / cycleHours,
		Revenue:        revenue,
		Costs:          map[string]float64{"logs": logCost, "seeds": seedCost, "total": totalCosts},
		ProfitPerCycle: profit,
		CycleTimeHours: cycleHours,
		PricesUsed: map[string]float64{
			"logs":  logs.Unit,
			"seeds": seeds.Unit,
		},
		StalePriceData: logs.Stale || seeds.Stale,
	}, nil
}

// GOTR values Guardians of the Rift by game; the cycle is one game.
func GOTR(p params.ResolvedGOTR, prices PriceSet) (entity.CalculationResult, error) {
	essence, err := prices.require(p.EssenceItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	essenceCost := p.EssencePerGame * essence.Unit
	revenue := p.AvgRuneValuePerGame + p.AvgPearlValuePerGame
	perGameProfit := revenue - essenceCost
	cycleHours := 1 / p.GamesPerHour

	return entity.CalculationResult{
		Activity:       value.ActivityGOTR.String(),
		GPHour:         perGameProfit * p.GamesPerHour,
		Revenue:        revenue,
		Costs:          map[string]float64{"essence": essenceCost, "total": essenceCost},
		ProfitPerCycle: perGameProfit,
		CycleTimeHours: cycleHours,
		PricesUsed: map[string]float64{
			"essence": essence.Unit,
		},
		StalePriceData: essence.Stale,
	}, nil
}

// SlayerKill is the single-monster slayer strategy output.
type SlayerKill struct {
	LootPerKill      float64
	GPHour           float64
	PartialPriceData bool
	StalePriceData   bool
}

// SlayerMonster values one monster at a given kill rate and supply drain.
// A loot item without a price contributes zero and flags the result as
// partial instead of aborting the evaluation.
func SlayerMonster(loot []entity.LootDrop, prices PriceSet, killsPerHour, supplyCostPerHour float64) SlayerKill {
	var out SlayerKill

	for _, drop := range loot {
		price, ok := prices[drop.ItemID]
		if !ok {
			out.PartialPriceData = true
			continue
		}

		out.LootPerKill += drop.Probability * drop.Quantity * price.Unit
		out.StalePriceData = out.StalePriceData || price.Stale
	}

	out.GPHour = killsPerHour*out.LootPerKill - supplyCostPerHour

	return out
}
