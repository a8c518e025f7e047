package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/entity"
	"gp_tracker/pkg/errcodes"
	"gp_tracker/pkg/lox"
)

type MonsterRepository struct {
	db *sqlx.DB
}

func NewMonsterRepository(db *sqlx.DB) *MonsterRepository {
	return &MonsterRepository{db: db}
}

func (r *MonsterRepository) GetByID(ctx context.Context, id string) (*entity.Monster, error) {
	query := `
		SELECT id, name, slayer_level_req, combat_level_req, combat_level,
		       weakness, base_kills_per_hour, supply_cost_per_hour, loot_table
		FROM monsters
		WHERE id = $1`

	var schema monsterSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.MonsterNotFound, "monster not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get monster")
	}

	monster, err := schema.ToDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode monster")
	}
	return &monster, nil
}

func (r *MonsterRepository) List(ctx context.Context) ([]entity.Monster, error) {
	query := `
		SELECT id, name, slayer_level_req, combat_level_req, combat_level,
		       weakness, base_kills_per_hour, supply_cost_per_hour, loot_table
		FROM monsters
		ORDER BY id`

	var schemas []monsterSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list monsters")
	}

	monsters, err := lox.MapErr(schemas, monsterSchema.ToDomain)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode monster")
	}
	return monsters, nil
}
