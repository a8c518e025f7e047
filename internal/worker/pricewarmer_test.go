package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/service/params"
	"gp_tracker/internal/worker"
)

type fakeWarmer struct {
	mu    sync.Mutex
	calls [][]int
}

func (f *fakeWarmer) Warm(_ context.Context, itemIDs []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, itemIDs)
	return nil
}

func (f *fakeWarmer) lastCall() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

type fakeMonsters []entity.Monster

func (f fakeMonsters) Monsters() []entity.Monster { return f }

func TestPriceWarmerItemSet(t *testing.T) {
	rq := require.New(t)

	warmer := &fakeWarmer{}
	catalog := fakeMonsters{
		{ID: "bloodveld", LootTable: []entity.LootDrop{
			{ItemID: 532, Quantity: 1, Probability: 1},
			{ItemID: params.ItemGrimyTorstol, Quantity: 1, Probability: 0.01},
		}},
	}

	pw := worker.NewPriceWarmer(warmer, catalog)
	handlers := worker.NewTaskHandlers(nil, pw)

	rq.NoError(handlers.HandlePricesWarm(context.Background(), nil))

	ids := warmer.lastCall()
	rq.Contains(ids, params.ItemTorstolSeed)
	rq.Contains(ids, params.ItemPureEssence)
	rq.Contains(ids, 532)

	// loot overlapping a default item is warmed once
	count := 0
	for _, id := range ids {
		if id == params.ItemGrimyTorstol {
			count++
		}
	}
	rq.Equal(1, count)
}

func TestPriceWarmerStartStop(t *testing.T) {
	rq := require.New(t)

	warmer := &fakeWarmer{}
	pw := worker.NewPriceWarmer(warmer, nil).WithInterval(time.Hour)

	rq.NoError(pw.Start(context.Background()))
	rq.Error(pw.Start(context.Background()), "second start must be rejected")
	rq.True(pw.IsRunning())

	pw.Stop()
	rq.False(pw.IsRunning())

	// the initial warm cycle ran before the ticker
	rq.NotEmpty(warmer.lastCall())
}

type fakeReloader struct {
	err    error
	called bool
}

func (f *fakeReloader) Load(context.Context) error {
	f.called = true
	return f.err
}

func TestHandleRefdataReload(t *testing.T) {
	rq := require.New(t)

	reloader := &fakeReloader{}
	handlers := worker.NewTaskHandlers(reloader, nil)

	rq.NoError(handlers.HandleRefdataReload(context.Background(), nil))
	rq.True(reloader.called)

	reloader.err = errors.New("db down")
	rq.Error(handlers.HandleRefdataReload(context.Background(), nil))
}
