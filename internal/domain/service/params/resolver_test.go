package params_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/service/params"
	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/errcodes"
)

type storeFunc func(ctx context.Context, userID string) (value.ActivityParams, error)

func (f storeFunc) Get(ctx context.Context, userID string) (value.ActivityParams, error) {
	return f(ctx, userID)
}

func ptr[T any](v T) *T { return &v }

func TestFarmingDefaults(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	resolved, err := resolver.Farming(context.Background(), "", nil)
	rq.NoError(err)

	rq.Equal(params.ItemTorstolSeed, resolved.SeedItemID)
	rq.Equal(params.ItemGrimyTorstol, resolved.HerbItemID)
	rq.Equal(params.ItemUltracompost, resolved.CompostItemID)
	rq.InDelta(9.0, resolved.NumPatches, 1e-9)
	rq.InDelta(8.0, resolved.AvgYieldPerPatch, 1e-9)
	rq.InDelta(80.0, resolved.GrowthTimeMinutes, 1e-9)
}

func TestFarmingMergePrecedence(t *testing.T) {
	rq := require.New(t)

	store := storeFunc(func(_ context.Context, userID string) (value.ActivityParams, error) {
		rq.Equal("alice", userID)
		return value.ActivityParams{
			Farming: &value.FarmingParams{
				NumPatches:        ptr(6.0),
				GrowthTimeMinutes: ptr(70.0),
			},
		}, nil
	})

	resolver := params.NewResolver(store)

	resolved, err := resolver.Farming(context.Background(), "alice", &value.FarmingParams{
		GrowthTimeMinutes: ptr(90.0),
	})
	rq.NoError(err)

	// stored overrides defaults, request overrides stored
	rq.InDelta(6.0, resolved.NumPatches, 1e-9)
	rq.InDelta(90.0, resolved.GrowthTimeMinutes, 1e-9)
	rq.InDelta(8.0, resolved.AvgYieldPerPatch, 1e-9)
}

func TestFarmingExplicitZeroIsValid(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	resolved, err := resolver.Farming(context.Background(), "", &value.FarmingParams{
		AvgYieldPerPatch: ptr(0.0),
	})
	rq.NoError(err)
	rq.InDelta(0.0, resolved.AvgYieldPerPatch, 1e-9)
}

func TestFarmingValidationListsAllFields(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	_, err := resolver.Farming(context.Background(), "", &value.FarmingParams{
		SeedItemID:        ptr(-1),
		NumPatches:        ptr(math.NaN()),
		GrowthTimeMinutes: ptr(0.0),
	})
	rq.Error(err)
	rq.True(params.IsValidationError(err))

	var appErr *domain.AppError
	rq.True(errors.As(err, &appErr))
	rq.ElementsMatch(
		[]string{"seed_item_id", "num_patches", "growth_time_minutes"},
		appErr.Fields,
	)
}

func TestStoredConfigNotFoundFallsBack(t *testing.T) {
	rq := require.New(t)

	store := storeFunc(func(context.Context, string) (value.ActivityParams, error) {
		return value.ActivityParams{}, domain.NewError(errcodes.NotFound, "no stored config")
	})

	resolver := params.NewResolver(store)

	resolved, err := resolver.Farming(context.Background(), "bob", nil)
	rq.NoError(err)
	rq.InDelta(9.0, resolved.NumPatches, 1e-9)
}

func TestStoredConfigLoadError(t *testing.T) {
	rq := require.New(t)

	store := storeFunc(func(context.Context, string) (value.ActivityParams, error) {
		return value.ActivityParams{}, errors.New("connection refused")
	})

	resolver := params.NewResolver(store)

	_, err := resolver.Farming(context.Background(), "bob", nil)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ConfigLoadError, code)
}

func TestStoreSkippedWithoutUserID(t *testing.T) {
	rq := require.New(t)

	store := storeFunc(func(context.Context, string) (value.ActivityParams, error) {
		t.Fatal("store must not be called for anonymous requests")
		return value.ActivityParams{}, nil
	})

	resolver := params.NewResolver(store)

	_, err := resolver.Farming(context.Background(), "", nil)
	rq.NoError(err)
}

func TestSlayerDefaults(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	resolved, err := resolver.Slayer(context.Background(), "", nil)
	rq.NoError(err)

	rq.Equal("spria", resolved.MasterID)
	rq.Equal(value.ModeExpected, resolved.Mode)
	rq.Equal(85, resolved.Levels.Slayer)
	rq.Equal(100, resolved.Levels.Combat)
	rq.InDelta(1.0, resolved.SupplyCostMultiplier, 1e-9)
	rq.False(resolved.SupplyCostMultiplierSet)
}

func TestSlayerExplicitMultiplierIsFlagged(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	resolved, err := resolver.Slayer(context.Background(), "", &value.SlayerParams{
		SupplyCostMultiplier: ptr(1.0),
	})
	rq.NoError(err)

	rq.InDelta(1.0, resolved.SupplyCostMultiplier, 1e-9)
	rq.True(resolved.SupplyCostMultiplierSet)
}

func TestSlayerSpecificBlankMasterIsCatalogWide(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	resolved, err := resolver.Slayer(context.Background(), "", &value.SlayerParams{
		Mode:      ptr("specific"),
		MasterID:  ptr(""),
		MonsterID: ptr("gargoyle"),
	})
	rq.NoError(err)

	rq.Equal(value.ModeSpecific, resolved.Mode)
	rq.Empty(resolved.MasterID)
	rq.Equal("gargoyle", resolved.MonsterID)
}

func TestSlayerSpecificRequiresMonster(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	_, err := resolver.Slayer(context.Background(), "", &value.SlayerParams{
		Mode: ptr("specific"),
	})
	rq.Error(err)

	var appErr *domain.AppError
	rq.True(errors.As(err, &appErr))
	rq.Contains(appErr.Fields, "monster_id")
}

func TestSlayerUnknownMode(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	_, err := resolver.Slayer(context.Background(), "", &value.SlayerParams{
		Mode: ptr("optimistic"),
	})
	rq.Error(err)

	var appErr *domain.AppError
	rq.True(errors.As(err, &appErr))
	rq.Contains(appErr.Fields, "mode")
}

func TestGOTRValidation(t *testing.T) {
	rq := require.New(t)

	resolver := params.NewResolver(nil)

	_, err := resolver.GOTR(context.Background(), "", &value.GOTRParams{
		GamesPerHour: ptr(0.0),
	})
	rq.Error(err)

	var appErr *domain.AppError
	rq.True(errors.As(err, &appErr))
	rq.Equal([]string{"games_per_hour"}, appErr.Fields)
}
