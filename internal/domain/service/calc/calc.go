// Package calc is the engine's entry point: it resolves parameters, gathers
// the prices a formula needs and dispatches over the closed activity set.
package calc

import (
	"context"
	"fmt"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/service/formula"
	"gp_tracker/internal/domain/service/params"
	"gp_tracker/internal/domain/service/slayer"
	"gp_tracker/internal/domain/value"
)

// PriceSource is the price cache; the sole stateful collaborator shared
// between requests.
type PriceSource interface {
	Price(ctx context.Context, itemID int) (entity.PriceQuote, error)
}

type Calculator struct {
	resolver *params.Resolver
	prices   PriceSource
	slayer   *slayer.Engine
}

func NewCalculator(resolver *params.Resolver, prices PriceSource, slayerEngine *slayer.Engine) *Calculator {
	return &Calculator{
		resolver: resolver,
		prices:   prices,
		slayer:   slayerEngine,
	}
}

// Calculate is the general entry point for every activity kind.
func (c *Calculator) Calculate(
	ctx context.Context,
	kind value.ActivityKind,
	userID string,
	p value.ActivityParams,
) (entity.CalculationResult, error) {
	switch kind {
	case value.ActivityFarming:
		return c.farming(ctx, userID, p.Farming)
	case value.ActivityBirdhouse:
		return c.birdhouse(ctx, userID, p.Birdhouse)
	case value.ActivityGOTR:
		return c.gotr(ctx, userID, p.GOTR)
	case value.ActivitySlayer:
		resolved, err := c.resolver.Slayer(ctx, userID, p.Slayer)
		if err != nil {
			return entity.CalculationResult{}, fmt.Errorf("resolver.Slayer: %w", err)
		}

		return c.slayer.Evaluate(ctx, resolved)
	default:
		// ParseActivityKind guards the boundary; reaching here is a bug.
		_, err := value.ParseActivityKind(kind.String())
		return entity.CalculationResult{}, err
	}
}

// SlayerBreakdown is the dedicated task-assignment view.
func (c *Calculator) SlayerBreakdown(
	ctx context.Context,
	masterID string,
	levels value.UserLevels,
	userID string,
) (entity.CalculationResult, error) {
	mode := value.ModeBreakdown.String()

	req := &value.SlayerParams{
		MasterID: &masterID,
		Mode:     &mode,
	}

	if levels.Slayer > 0 {
		req.SlayerLevel = &levels.Slayer
	}
	if levels.Combat > 0 {
		req.CombatLevel = &levels.Combat
	}

	resolved, err := c.resolver.Slayer(ctx, userID, req)
	if err != nil {
		return entity.CalculationResult{}, fmt.Errorf("resolver.Slayer: %w", err)
	}

	return c.slayer.Evaluate(ctx, resolved)
}

func (c *Calculator) farming(ctx context.Context, userID string, p *value.FarmingParams) (entity.CalculationResult, error) {
	resolved, err := c.resolver.Farming(ctx, userID, p)
	if err != nil {
		return entity.CalculationResult{}, fmt.Errorf("resolver.Farming: %w", err)
	}

	prices, err := c.gather(ctx, resolved.SeedItemID, resolved.HerbItemID, resolved.CompostItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	return formula.Farming(resolved, prices)
}

func (c *Calculator) birdhouse(ctx context.Context, userID string, p *value.BirdhouseParams) (entity.CalculationResult, error) {
	resolved, err := c.resolver.Birdhouse(ctx, userID, p)
	if err != nil {
		return entity.CalculationResult{}, fmt.Errorf("resolver.Birdhouse: %w", err)
	}

	prices, err := c.gather(ctx, resolved.LogItemID, resolved.SeedItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	return formula.Birdhouse(resolved, prices)
}

func (c *Calculator) gotr(ctx context.Context, userID string, p *value.GOTRParams) (entity.CalculationResult, error) {
	resolved, err := c.resolver.GOTR(ctx, userID, p)
	if err != nil {
		return entity.CalculationResult{}, fmt.Errorf("resolver.GOTR: %w", err)
	}

	prices, err := c.gather(ctx, resolved.EssenceItemID)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	return formula.GOTR(resolved, prices)
}

// gather fetches structural price inputs. These are required: a missing one
// fails the whole request with PriceUnavailable rather than degrading.
func (c *Calculator) gather(ctx context.Context, itemIDs ...int) (formula.PriceSet, error) {
	prices := make(formula.PriceSet, len(itemIDs))

	for _, itemID := range itemIDs {
		quote, err := c.prices.Price(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("prices.Price(%d): %w", itemID, err)
		}

		prices[itemID] = formula.Price{Unit: quote.Unit(), Stale: quote.Stale}
	}

	return prices, nil
}
