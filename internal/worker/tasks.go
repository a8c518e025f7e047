package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeRefdataReload = "refdata:reload"
	TypePricesWarm    = "prices:warm"
)

type CatalogReloader interface {
	Load(ctx context.Context) error
}

// TaskHandlers exposes the operational tasks as asynq handlers, so reloads
// and warm-ups can be triggered from the admin tooling queue.
type TaskHandlers struct {
	catalog CatalogReloader
	warmer  *PriceWarmer
}

func NewTaskHandlers(catalog CatalogReloader, warmer *PriceWarmer) *TaskHandlers {
	return &TaskHandlers{catalog: catalog, warmer: warmer}
}

func (h *TaskHandlers) HandleRefdataReload(ctx context.Context, _ *asynq.Task) error {
	if err := h.catalog.Load(ctx); err != nil {
		return fmt.Errorf("catalog.Load: %w", err)
	}
	return nil
}

func (h *TaskHandlers) HandlePricesWarm(ctx context.Context, _ *asynq.Task) error {
	h.warmer.warmOnce(ctx)
	return nil
}
