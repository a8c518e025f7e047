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

type MasterRepository struct {
	db *sqlx.DB
}

func NewMasterRepository(db *sqlx.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

func (r *MasterRepository) GetByID(ctx context.Context, id string) (*entity.SlayerMaster, error) {
	query := `
		SELECT id, name, combat_req, slayer_req, task_assignments
		FROM slayer_masters
		WHERE id = $1`

	var schema masterSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.MasterNotFound, "slayer master not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get slayer master")
	}

	master, err := schema.ToDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode slayer master")
	}
	return &master, nil
}

func (r *MasterRepository) List(ctx context.Context) ([]entity.SlayerMaster, error) {
	query := `
		SELECT id, name, combat_req, slayer_req, task_assignments
		FROM slayer_masters
		ORDER BY id`

	var schemas []masterSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list slayer masters")
	}

	masters, err := lox.MapErr(schemas, masterSchema.ToDomain)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode slayer master")
	}
	return masters, nil
}
