// Package refdata keeps an in-memory snapshot of the monster and slayer
// master reference data. The snapshot is swapped atomically, so readers never
// observe a half-reloaded catalog.
package refdata

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

type MonsterSource interface {
	List(ctx context.Context) ([]entity.Monster, error)
}

type MasterSource interface {
	List(ctx context.Context) ([]entity.SlayerMaster, error)
}

type snapshot struct {
	monsters map[string]entity.Monster
	masters  map[string]entity.SlayerMaster
	loadedAt time.Time
}

type Catalog struct {
	monsters MonsterSource
	masters  MasterSource

	current atomic.Pointer[snapshot]
}

func NewCatalog(monsters MonsterSource, masters MasterSource) *Catalog {
	c := &Catalog{monsters: monsters, masters: masters}
	c.current.Store(&snapshot{
		monsters: map[string]entity.Monster{},
		masters:  map[string]entity.SlayerMaster{},
	})
	return c
}

// Load fetches both tables and publishes them as one snapshot. On error the
// previous snapshot stays in place.
func (c *Catalog) Load(ctx context.Context) error {
	monsters, err := c.monsters.List(ctx)
	if err != nil {
		return fmt.Errorf("monsters.List: %w", err)
	}

	masters, err := c.masters.List(ctx)
	if err != nil {
		return fmt.Errorf("masters.List: %w", err)
	}

	next := &snapshot{
		monsters: make(map[string]entity.Monster, len(monsters)),
		masters:  make(map[string]entity.SlayerMaster, len(masters)),
		loadedAt: time.Now(),
	}
	for _, m := range monsters {
		next.monsters[m.ID] = m
	}
	for _, m := range masters {
		next.masters[m.ID] = m
	}

	c.current.Store(next)
	logger(ctx).Info("reference data reloaded",
		"monsters", len(next.monsters),
		"masters", len(next.masters),
	)
	return nil
}

func (c *Catalog) Master(id string) (entity.SlayerMaster, bool) {
	m, ok := c.current.Load().masters[id]
	return m, ok
}

func (c *Catalog) Monster(id string) (entity.Monster, bool) {
	m, ok := c.current.Load().monsters[id]
	return m, ok
}

// Monsters returns the current snapshot's monsters. The slice is fresh on
// every call and safe to retain.
func (c *Catalog) Monsters() []entity.Monster {
	snap := c.current.Load()
	out := make([]entity.Monster, 0, len(snap.monsters))
	for _, m := range snap.monsters {
		out = append(out, m)
	}
	return out
}

// Masters returns the current snapshot's slayer masters.
func (c *Catalog) Masters() []entity.SlayerMaster {
	snap := c.current.Load()
	out := make([]entity.SlayerMaster, 0, len(snap.masters))
	for _, m := range snap.masters {
		out = append(out, m)
	}
	return out
}

// LoadedAt reports when the current snapshot was published. Zero when only
// the empty boot snapshot is in place.
func (c *Catalog) LoadedAt() time.Time {
	return c.current.Load().loadedAt
}
