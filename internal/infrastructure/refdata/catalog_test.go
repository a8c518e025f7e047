package refdata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/infrastructure/refdata"
)

type monsterSource struct {
	monsters []entity.Monster
	err      error
}

func (s monsterSource) List(context.Context) ([]entity.Monster, error) {
	return s.monsters, s.err
}

type masterSource struct {
	masters []entity.SlayerMaster
	err     error
}

func (s masterSource) List(context.Context) ([]entity.SlayerMaster, error) {
	return s.masters, s.err
}

func TestCatalogLoad(t *testing.T) {
	rq := require.New(t)

	catalog := refdata.NewCatalog(
		monsterSource{monsters: []entity.Monster{{ID: "bloodveld", Name: "Bloodveld"}}},
		masterSource{masters: []entity.SlayerMaster{{ID: "spria", Name: "Spria"}}},
	)

	// empty boot snapshot before the first load
	_, ok := catalog.Monster("bloodveld")
	rq.False(ok)
	rq.True(catalog.LoadedAt().IsZero())

	rq.NoError(catalog.Load(context.Background()))

	monster, ok := catalog.Monster("bloodveld")
	rq.True(ok)
	rq.Equal("Bloodveld", monster.Name)

	master, ok := catalog.Master("spria")
	rq.True(ok)
	rq.Equal("Spria", master.Name)

	rq.Len(catalog.Monsters(), 1)
	rq.Len(catalog.Masters(), 1)
	rq.False(catalog.LoadedAt().IsZero())
}

func TestCatalogLoadFailureKeepsSnapshot(t *testing.T) {
	rq := require.New(t)

	monsters := &monsterSource{
		monsters: []entity.Monster{{ID: "bloodveld"}},
	}

	catalog := refdata.NewCatalog(monsters, masterSource{})
	rq.NoError(catalog.Load(context.Background()))

	monsters.err = errors.New("db down")

	rq.Error(catalog.Load(context.Background()))

	// the previous snapshot survives the failed reload
	_, ok := catalog.Monster("bloodveld")
	rq.True(ok)
}
