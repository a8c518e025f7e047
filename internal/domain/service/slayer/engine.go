// Package slayer turns a master's raw assignment weights into a normalized
// probability distribution over the monsters a user's levels qualify for, and
// evaluates profitability across it. All three reporting modes (expected,
// specific, breakdown) derive from the same per-assignment evaluation pass so
// their aggregates are numerically identical by construction.
package slayer

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/service/formula"
	"gp_tracker/internal/domain/service/params"
	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/contextx"
	"gp_tracker/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// travelOverheadHours is the banking/travel time charged to every task on top
// of the pure kill time.
const travelOverheadHours = 0.1

// Catalog is the read-only reference data snapshot the engine evaluates
// against. Implementations swap whole snapshots atomically on reload.
type Catalog interface {
	Master(id string) (entity.SlayerMaster, bool)
	Monster(id string) (entity.Monster, bool)
}

// PriceSource serves the monetary values loot tables resolve against.
type PriceSource interface {
	Price(ctx context.Context, itemID int) (entity.PriceQuote, error)
}

type Engine struct {
	catalog     Catalog
	prices      PriceSource
	concurrency int
}

func NewEngine(catalog Catalog, prices PriceSource) *Engine {
	return &Engine{
		catalog:     catalog,
		prices:      prices,
		concurrency: 8,
	}
}

func (e *Engine) WithConcurrency(n int) *Engine {
	if n > 0 {
		e.concurrency = n
	}
	return e
}

// Evaluate runs the mode the resolved parameters ask for.
func (e *Engine) Evaluate(ctx context.Context, in params.ResolvedSlayer) (entity.CalculationResult, error) {
	if in.Mode == value.ModeSpecific && in.MasterID == "" {
		return e.specificFromCatalog(ctx, in)
	}

	master, ok := e.catalog.Master(in.MasterID)
	if !ok {
		return entity.CalculationResult{}, domain.NewError(
			errcodes.MasterNotFound,
			fmt.Sprintf("slayer master %q not found", in.MasterID),
		)
	}

	if in.Levels.Combat < master.CombatReq || in.Levels.Slayer < master.SlayerReq {
		return entity.CalculationResult{}, domain.NewError(
			errcodes.MasterRequirementsNotMet,
			fmt.Sprintf("levels below requirements for %s (combat %d, slayer %d)",
				master.Name, master.CombatReq, master.SlayerReq),
		)
	}

	assignments, err := e.evaluateAssignments(ctx, master, in)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	switch in.Mode {
	case value.ModeSpecific:
		return e.pickSpecific(master, assignments, in)
	case value.ModeBreakdown:
		return buildResult(master, assignments, value.ModeBreakdown, len(master.TaskAssignments)), nil
	default:
		return buildResult(master, assignments, value.ModeExpected, len(master.TaskAssignments)), nil
	}
}

// evaluateAssignments builds the eligible set, normalizes its weights into
// probabilities and values every eligible monster. Per-assignment evaluations
// are independent pure computations and run concurrently; the returned slice
// is sorted by gp/hour descending, ties broken by monster id, regardless of
// completion order.
func (e *Engine) evaluateAssignments(
	ctx context.Context,
	master entity.SlayerMaster,
	in params.ResolvedSlayer,
) ([]entity.SlayerAssignment, error) {
	type eligible struct {
		monster    entity.Monster
		assignment entity.TaskAssignment
	}

	// Deterministic iteration: monster ids sorted ascending.
	ids := make([]string, 0, len(master.TaskAssignments))
	for id := range master.TaskAssignments {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		set         []eligible
		totalWeight float64
	)

	for _, id := range ids {
		monster, ok := e.catalog.Monster(id)
		if !ok {
			logger(ctx).Warn("assignment references unknown monster", "monster_id", id, "master_id", master.ID)
			continue
		}

		if !in.Levels.MeetsMonster(monster.SlayerLevelReq, monster.CombatLevelReq) {
			continue
		}

		set = append(set, eligible{monster: monster, assignment: master.TaskAssignments[id]})
		totalWeight += master.TaskAssignments[id].Weight
	}

	if len(set) == 0 || totalWeight <= 0 {
		return nil, nil
	}

	results := make([]entity.SlayerAssignment, len(set))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, el := range set {
		g.Go(func() error {
			line, err := e.evaluateOne(gctx, el.monster, el.assignment, in)
			if err != nil {
				return err
			}

			line.Probability = el.assignment.Weight / totalWeight
			results[i] = line

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].GPHour != results[j].GPHour {
			return results[i].GPHour > results[j].GPHour
		}
		return results[i].MonsterID < results[j].MonsterID
	})

	return results, nil
}

func (e *Engine) evaluateOne(
	ctx context.Context,
	monster entity.Monster,
	assignment entity.TaskAssignment,
	in params.ResolvedSlayer,
) (entity.SlayerAssignment, error) {
	prices, partial, err := e.lootPrices(ctx, monster)
	if err != nil {
		return entity.SlayerAssignment{}, err
	}

	kph := estimateKillsPerHour(monster, in)
	supplyCost := adjustSupplyCost(monster.SupplyCostPerHour, in)

	kill := formula.SlayerMonster(monster.LootTable, prices, kph, supplyCost)

	avgQuantity := assignment.AvgQuantity()
	if avgQuantity <= 0 {
		avgQuantity = 1
	}

	taskHours := avgQuantity/kph + travelOverheadHours
	tasksPerHour := 1 / taskHours

	return entity.SlayerAssignment{
		MonsterID:         monster.ID,
		MonsterName:       monster.Name,
		KillsPerHour:      kph,
		LootPerKill:       kill.LootPerKill,
		SupplyCostPerHour: supplyCost,
		GPHour:            kill.GPHour,
		GPPerTask:         kill.GPHour / tasksPerHour,
		TasksPerHour:      tasksPerHour,
		AvgTaskQuantity:   avgQuantity,
		PartialPriceData:  kill.PartialPriceData || partial,
	}, nil
}

// lootPrices resolves every loot-table item through the cache. A missing
// price degrades that item's contribution to zero; only context cancellation
// aborts the evaluation.
func (e *Engine) lootPrices(ctx context.Context, monster entity.Monster) (formula.PriceSet, bool, error) {
	prices := make(formula.PriceSet, len(monster.LootTable))
	partial := false

	for _, itemID := range monster.LootItemIDs() {
		quote, err := e.prices.Price(ctx, itemID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, false, fmt.Errorf("prices.Price: %w", ctx.Err())
			}

			logger(ctx).Warn("loot item price unavailable, contribution zeroed",
				"monster_id", monster.ID, "item_id", itemID, "error", err)
			partial = true

			continue
		}

		prices[itemID] = formula.Price{Unit: quote.Unit(), Stale: quote.Stale}
	}

	return prices, partial, nil
}

func (e *Engine) pickSpecific(
	master entity.SlayerMaster,
	assignments []entity.SlayerAssignment,
	in params.ResolvedSlayer,
) (entity.CalculationResult, error) {
	for _, a := range assignments {
		if a.MonsterID == in.MonsterID {
			return singleResult(a, master.ID, master.Name), nil
		}
	}

	return entity.CalculationResult{}, domain.NewError(
		errcodes.MonsterNotEligible,
		fmt.Sprintf("monster %q is not assignable by %s at these levels", in.MonsterID, master.Name),
	)
}

// specificFromCatalog values one monster with no master restriction: the full
// catalog is the search space and no assignment probability applies.
func (e *Engine) specificFromCatalog(ctx context.Context, in params.ResolvedSlayer) (entity.CalculationResult, error) {
	monster, ok := e.catalog.Monster(in.MonsterID)
	if !ok {
		return entity.CalculationResult{}, domain.NewError(
			errcodes.MonsterNotFound,
			fmt.Sprintf("monster %q not found", in.MonsterID),
		)
	}

	if !in.Levels.MeetsMonster(monster.SlayerLevelReq, monster.CombatLevelReq) {
		return entity.CalculationResult{}, domain.NewError(
			errcodes.MonsterNotEligible,
			fmt.Sprintf("levels below requirements for %s (combat %d, slayer %d)",
				monster.Name, monster.CombatLevelReq, monster.SlayerLevelReq),
		)
	}

	line, err := e.evaluateOne(ctx, monster, entity.TaskAssignment{QuantityMin: 1, QuantityMax: 1}, in)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	return singleResult(line, "", ""), nil
}

func singleResult(a entity.SlayerAssignment, masterID, masterName string) entity.CalculationResult {
	taskHours := 1 / a.TasksPerHour

	return entity.CalculationResult{
		Activity:         value.ActivitySlayer.String(),
		GPHour:           a.GPHour,
		Revenue:          a.KillsPerHour * a.LootPerKill,
		Costs:            map[string]float64{"supplies": a.SupplyCostPerHour, "total": a.SupplyCostPerHour},
		ProfitPerCycle:   a.GPPerTask,
		CycleTimeHours:   taskHours,
		PricesUsed:       map[string]float64{},
		PartialPriceData: a.PartialPriceData,
		Slayer: &entity.SlayerResult{
			Mode:        value.ModeSpecific.String(),
			MasterID:    masterID,
			MasterName:  masterName,
			Assignments: []entity.SlayerAssignment{a},
			Overall: entity.SlayerOverall{
				ExpectedGPHour: a.GPHour,
				AvgGPPerTask:   a.GPPerTask,
				TasksPerHour:   a.TasksPerHour,
				AvailableTasks: 1,
				TotalTasks:     1,
			},
		},
	}
}

// buildResult aggregates the evaluated assignments. Expected and breakdown
// modes read the same slice; breakdown additionally carries the per-line
// detail.
func buildResult(
	master entity.SlayerMaster,
	assignments []entity.SlayerAssignment,
	mode value.SlayerMode,
	totalTasks int,
) entity.CalculationResult {
	overall := entity.SlayerOverall{
		AvailableTasks: len(assignments),
		TotalTasks:     totalTasks,
	}

	partial := false

	for _, a := range assignments {
		overall.ExpectedGPHour += a.Probability * a.GPHour
		overall.AvgGPPerTask += a.Probability * a.GPPerTask
		overall.TasksPerHour += a.Probability * a.TasksPerHour
		partial = partial || a.PartialPriceData
	}

	result := entity.CalculationResult{
		Activity:         value.ActivitySlayer.String(),
		GPHour:           overall.ExpectedGPHour,
		Costs:            map[string]float64{},
		PricesUsed:       map[string]float64{},
		PartialPriceData: partial,
		Slayer: &entity.SlayerResult{
			Mode:       mode.String(),
			MasterID:   master.ID,
			MasterName: master.Name,
			Overall:    overall,
		},
	}

	if mode == value.ModeBreakdown {
		result.Slayer.Assignments = assignments
	}

	return result
}
