package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/samber/lo"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/service/params"
	"gp_tracker/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

type Warmer interface {
	Warm(ctx context.Context, itemIDs []int) error
}

type MonsterCatalog interface {
	Monsters() []entity.Monster
}

// PriceWarmer keeps the price cache populated ahead of requests, so the first
// calculation after a cold start does not pay the upstream round trip.
type PriceWarmer struct {
	warmer  Warmer
	catalog MonsterCatalog

	interval time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewPriceWarmer(warmer Warmer, catalog MonsterCatalog) *PriceWarmer {
	return &PriceWarmer{
		warmer:   warmer,
		catalog:  catalog,
		interval: 5 * time.Minute,
	}
}

func (w *PriceWarmer) WithInterval(interval time.Duration) *PriceWarmer {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

func (w *PriceWarmer) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("price warmer is already running")
	}

	warmCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(warmCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(warmCtx).Error("price warmer stopped", "error", err)
		}
	}()

	return nil
}

func (w *PriceWarmer) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *PriceWarmer) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *PriceWarmer) Run(ctx context.Context) error {
	logger(ctx).Info("price warmer started", "interval", w.interval)

	w.warmOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("price warmer stopped")
			return ctx.Err()
		case <-ticker.C:
			w.warmOnce(ctx)
		}
	}
}

func (w *PriceWarmer) warmOnce(ctx context.Context) {
	ids := w.itemIDs()

	if err := w.warmer.Warm(ctx, ids); err != nil {
		logger(ctx).Error("price warm cycle failed", "items", len(ids), "error", err)
		return
	}
	logger(ctx).Info("price warm cycle completed", "items", len(ids))
}

// itemIDs collects everything a calculation may price: the fixed activity
// items plus every loot table entry in the current catalog snapshot.
func (w *PriceWarmer) itemIDs() []int {
	ids := []int{
		params.ItemTorstolSeed,
		params.ItemGrimyTorstol,
		params.ItemUltracompost,
		params.ItemRedwoodLogs,
		params.ItemPotatoSeed,
		params.ItemPureEssence,
	}

	if w.catalog != nil {
		for _, monster := range w.catalog.Monsters() {
			ids = append(ids, monster.LootItemIDs()...)
		}
	}

	return lo.Uniq(ids)
}
