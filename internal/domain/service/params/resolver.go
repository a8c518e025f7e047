package params

import (
	"context"
	"errors"
	"math"
	"strings"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/errcodes"
)

// Store reads a user's stored partial parameter document. The engine never
// writes it; ownership stays with the caller.
type Store interface {
	Get(ctx context.Context, userID string) (value.ActivityParams, error)
}

// Resolver merges activity defaults, the user's stored overrides and the
// request parameters, in that order, and validates the merged set before
// any pricing call is attempted.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolved parameter sets. All fields are present and finite by construction.

type ResolvedFarming struct {
	SeedItemID        int
	HerbItemID        int
	CompostItemID     int
	NumPatches        float64
	AvgYieldPerPatch  float64
	GrowthTimeMinutes float64
}

type ResolvedBirdhouse struct {
	LogItemID        int
	SeedItemID       int
	NumBirdhouses    float64
	SeedsPerHouse    float64
	AvgNestsPerRun   float64
	AvgValuePerNest  float64
	RunTimeMinutes   float64
	CycleTimeMinutes float64
}

type ResolvedGOTR struct {
	EssenceItemID        int
	GamesPerHour         float64
	EssencePerGame       float64
	AvgRuneValuePerGame  float64
	AvgPearlValuePerGame float64
}

type ResolvedSlayer struct {
	MasterID             string
	MonsterID            string
	Mode                 value.SlayerMode
	Levels               value.UserLevels
	SupplyCostMultiplier float64
	// SupplyCostMultiplierSet distinguishes a user-provided multiplier from
	// the default one: an explicit value, 1.0 included, pins the supply cost
	// and disables the combat-efficiency adjustment.
	SupplyCostMultiplierSet bool
	KillRateOverrides       map[string]float64
}

func (r *Resolver) Farming(ctx context.Context, userID string, req *value.FarmingParams) (ResolvedFarming, error) {
	merged := defaultFarming()

	stored, err := r.stored(ctx, userID)
	if err != nil {
		return ResolvedFarming{}, err
	}

	merged.Override(stored.Farming)
	merged.Override(req)

	var v validation
	v.item("seed_item_id", merged.SeedItemID)
	v.item("herb_item_id", merged.HerbItemID)
	v.item("compost_item_id", merged.CompostItemID)
	v.number("num_patches", merged.NumPatches)
	v.number("avg_yield_per_patch", merged.AvgYieldPerPatch)
	v.number("growth_time_minutes", merged.GrowthTimeMinutes)
	v.positive("growth_time_minutes", merged.GrowthTimeMinutes)

	if err := v.err(); err != nil {
		return ResolvedFarming{}, err
	}

	return ResolvedFarming{
		SeedItemID:        *merged.SeedItemID,
		HerbItemID:        *merged.HerbItemID,
		CompostItemID:     *merged.CompostItemID,
		NumPatches:        *merged.NumPatches,
		AvgYieldPerPatch:  *merged.AvgYieldPerPatch,
		GrowthTimeMinutes: *merged.GrowthTimeMinutes,
	}, nil
}

func (r *Resolver) Birdhouse(ctx context.Context, userID string, req *value.BirdhouseParams) (ResolvedBirdhouse, error) {
	merged := defaultBirdhouse()

	stored, err := r.stored(ctx, userID)
	if err != nil {
		return ResolvedBirdhouse{}, err
	}

	merged.Override(stored.Birdhouse)
	merged.Override(req)

	var v validation
	v.item("log_item_id", merged.LogItemID)
	v.item("seed_item_id", merged.SeedItemID)
	v.number("num_birdhouses", merged.NumBirdhouses)
	v.number("seeds_per_house", merged.SeedsPerHouse)
	v.number("avg_nests_per_run", merged.AvgNestsPerRun)
	v.number("avg_value_per_nest", merged.AvgValuePerNest)
	v.number("run_time_minutes", merged.RunTimeMinutes)
	v.number("cycle_time_minutes", merged.CycleTimeMinutes)
	v.positive("cycle_time_minutes", merged.CycleTimeMinutes)

	if err := v.err(); err != nil {
		return ResolvedBirdhouse{}, err
	}

	return ResolvedBirdhouse{
		LogItemID:        *merged.LogItemID,
		SeedItemID:       *merged.SeedItemID,
		NumBirdhouses:    *merged.NumBirdhouses,
		SeedsPerHouse:    *merged.SeedsPerHouse,
		AvgNestsPerRun:   *merged.AvgNestsPerRun,
		AvgValuePerNest:  *merged.AvgValuePerNest,
		RunTimeMinutes:   *merged.RunTimeMinutes,
		CycleTimeMinutes: *merged.CycleTimeMinutes,
	}, nil
}

func (r *Resolver) GOTR(ctx context.Context, userID string, req *value.GOTRParams) (ResolvedGOTR, error) {
	merged := defaultGOTR()

	stored, err := r.stored(ctx, userID)
	if err != nil {
		return ResolvedGOTR{}, err
	}

	merged.Override(stored.GOTR)
	merged.Override(req)

	var v validation
	v.item("essence_item_id", merged.EssenceItemID)
	v.number("games_per_hour", merged.GamesPerHour)
	v.positive("games_per_hour", merged.GamesPerHour)
	v.number("essence_per_game", merged.EssencePerGame)
	v.number("avg_rune_value_per_game", merged.AvgRuneValuePerGame)
	v.number("avg_pearl_value_per_game", merged.AvgPearlValuePerGame)

	if err := v.err(); err != nil {
		return ResolvedGOTR{}, err
	}

	return ResolvedGOTR{
		EssenceItemID:        *merged.EssenceItemID,
		GamesPerHour:         *merged.GamesPerHour,
		EssencePerGame:       *merged.EssencePerGame,
		AvgRuneValuePerGame:  *merged.AvgRuneValuePerGame,
		AvgPearlValuePerGame: *merged.AvgPearlValuePerGame,
	}, nil
}

func (r *Resolver) Slayer(ctx context.Context, userID string, req *value.SlayerParams) (ResolvedSlayer, error) {
	merged := defaultSlayer()

	stored, err := r.stored(ctx, userID)
	if err != nil {
		return ResolvedSlayer{}, err
	}

	merged.Override(stored.Slayer)
	merged.Override(req)

	var v validation
	v.number("supply_cost_multiplier", merged.SupplyCostMultiplier)

	mode := ""
	if merged.Mode != nil {
		mode = *merged.Mode
	}

	parsedMode, modeErr := value.ParseSlayerMode(mode)
	if modeErr != nil {
		v.add("mode")
	}

	if parsedMode == value.ModeSpecific {
		// Specific mode may run against the full monster catalog: an
		// explicitly blank master lifts the master restriction.
		v.text("monster_id", merged.MonsterID)
	} else {
		v.text("master_id", merged.MasterID)
	}

	if err := v.err(); err != nil {
		return ResolvedSlayer{}, err
	}

	monsterID := ""
	if merged.MonsterID != nil {
		monsterID = strings.TrimSpace(*merged.MonsterID)
	}

	explicitMultiplier := (stored.Slayer != nil && stored.Slayer.SupplyCostMultiplier != nil) ||
		(req != nil && req.SupplyCostMultiplier != nil)

	return ResolvedSlayer{
		MasterID:  strings.TrimSpace(*merged.MasterID),
		MonsterID: monsterID,
		Mode:      parsedMode,
		Levels: value.UserLevels{
			Slayer:   *merged.SlayerLevel,
			Combat:   *merged.CombatLevel,
			Attack:   *merged.AttackLevel,
			Strength: *merged.StrengthLevel,
			Ranged:   *merged.RangedLevel,
			Magic:    *merged.MagicLevel,
		},
		SupplyCostMultiplier:    *merged.SupplyCostMultiplier,
		SupplyCostMultiplierSet: explicitMultiplier,
		KillRateOverrides:       merged.KillRateOverrides,
	}, nil
}

// stored loads the user's overrides. An empty userID skips the store entirely
// so the engine stays callable with fully-specified request parameters.
func (r *Resolver) stored(ctx context.Context, userID string) (value.ActivityParams, error) {
	if userID == "" || r.store == nil {
		return value.ActivityParams{}, nil
	}

	doc, err := r.store.Get(ctx, userID)
	if err != nil {
		if code, ok := domain.GetCode(err); ok && code == errcodes.NotFound {
			return value.ActivityParams{}, nil
		}

		return value.ActivityParams{}, domain.WrapError(err, errcodes.ConfigLoadError, "user configuration store unreachable")
	}

	return doc, nil
}

// validation accumulates offending field names so a single error reports
// every problem at once.
type validation struct {
	fields []string
}

func (v *validation) add(name string) {
	for _, f := range v.fields {
		if f == name {
			return
		}
	}
	v.fields = append(v.fields, name)
}

func (v *validation) number(name string, p *float64) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		v.add(name)
	}
}

func (v *validation) positive(name string, p *float64) {
	if p != nil && *p <= 0 {
		v.add(name)
	}
}

func (v *validation) item(name string, p *int) {
	if p == nil || *p <= 0 {
		v.add(name)
	}
}

func (v *validation) text(name string, p *string) {
	if p == nil || strings.TrimSpace(*p) == "" {
		v.add(name)
	}
}

func (v *validation) err() error {
	if len(v.fields) == 0 {
		return nil
	}

	return domain.NewValidationError(v.fields)
}

// IsValidationError reports whether err is the resolver's field-list error.
func IsValidationError(err error) bool {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Code == errcodes.ValidationError
	}

	return false
}
