package repository

import (
	"context"
	"fmt"

	"garatge-booking/internal/data/entity"
	"garatge-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	FindByKind(ctx context.Context, kind entity.ResourceKind) ([]*entity.Resource, error)
}

type resourceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResourceRepository(db database.PgxIface, log *zap.Logger) ResourceRepository {
	return &resourceRepository{
		db:  db,
		log: log.With(zap.String("repository", "resource")),
	}
}

const resourceColumns = `id, kind, name, description, passengers, length_meters, season_pricing, tiered_pricing, created_at, updated_at`

func scanResource(row pgx.Row) (*entity.Resource, error) {
	var res entity.Resource
	err := row.Scan(
		&res.ID,
		&res.Kind,
		&res.Name,
		&res.Description,
		&res.Passengers,
		&res.LengthMeters,
		&res.SeasonPricing,
		&res.TieredPricing,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	res, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource by ID",
			zap.Error(err),
			zap.String("resource_id", id.String()),
		)
		return nil, fmt.Errorf("find resource by ID %s: %w", id.String(), err)
	}

	return res, nil
}

func (r *resourceRepository) FindByKind(ctx context.Context, kind entity.ResourceKind) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE kind = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		r.log.Error("Failed to find resources by kind",
			zap.Error(err),
			zap.String("kind", string(kind)),
		)
		return nil, fmt.Errorf("find resources by kind %s: %w", kind, err)
	}
	defer rows.Close()

	var resources []*entity.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			r.log.Error("Failed to scan resource row", zap.Error(err))
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		resources = append(resources, res)
	}

	return resources, nil
}
