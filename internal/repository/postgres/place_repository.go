package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
)

const uniqueViolation = "23505"

const placeColumns = `
	place_id, name, district, region, category, description,
	estimated_time_to_visit, latitude, longitude, created_at, updated_at`

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) ListAll(ctx context.Context) ([]*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places ORDER BY place_id`

	places := make([]*domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, query); err != nil {
		r.logger.Error("Failed to list places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return places, nil
}

func (r *placeRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE ` + placeFilterClause + `
		ORDER BY place_id
		LIMIT $3 OFFSET $4
	`

	categories, district := filterArgs(filter)
	places := make([]*domain.Place, 0)
	err := r.db.SelectContext(ctx, &places, query, categories, district, filter.Limit, filter.Offset)
	if err != nil {
		r.logger.Error("Failed to filter places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return places, nil
}

func (r *placeRepository) Count(ctx context.Context, filter domain.PlaceFilter) (int, error) {
	query := `SELECT COUNT(*) FROM places WHERE ` + placeFilterClause

	categories, district := filterArgs(filter)
	var total int
	if err := r.db.GetContext(ctx, &total, query, categories, district); err != nil {
		r.logger.Error("Failed to count places", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return total, nil
}

const placeFilterClause = `($1::text[] IS NULL OR lower(category) = ANY($1::text[]))
		  AND ($2 = '' OR lower(district) = lower($2))`

// filterArgs - параметры $1 (категории) и $2 (район) для placeFilterClause
func filterArgs(filter domain.PlaceFilter) (interface{}, string) {
	var categories interface{}
	if len(filter.Categories) > 0 {
		lowered := make([]string, 0, len(filter.Categories))
		for _, c := range filter.Categories {
			lowered = append(lowered, strings.ToLower(strings.TrimSpace(c)))
		}
		categories = pq.Array(lowered)
	}
	return categories, strings.TrimSpace(filter.District)
}

func (r *placeRepository) GetByID(ctx context.Context, placeID string) (*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE place_id = $1`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, placeID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.String("place_id", placeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &place, nil
}

func (r *placeRepository) Create(ctx context.Context, place *domain.Place) error {
	query := `
		INSERT INTO places (` + placeColumns + `)
		VALUES (:place_id, :name, :district, :region, :category, :description,
			:estimated_time_to_visit, :latitude, :longitude, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, place); err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errors.ErrPlaceAlreadyExists
		}
		r.logger.Error("Failed to insert place", zap.String("place_id", place.PlaceID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *placeRepository) Update(ctx context.Context, place *domain.Place) error {
	query := `
		UPDATE places SET
			name = :name,
			district = :district,
			region = :region,
			category = :category,
			description = :description,
			estimated_time_to_visit = :estimated_time_to_visit,
			latitude = :latitude,
			longitude = :longitude,
			updated_at = :updated_at
		WHERE place_id = :place_id
	`

	res, err := r.db.NamedExecContext(ctx, query, place)
	if err != nil {
		r.logger.Error("Failed to update place", zap.String("place_id", place.PlaceID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireAffected(res)
}

func (r *placeRepository) Delete(ctx context.Context, placeID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM places WHERE place_id = $1`, placeID)
	if err != nil {
		r.logger.Error("Failed to delete place", zap.String("place_id", placeID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if n == 0 {
		return errors.ErrPlaceNotFound
	}
	return nil
}
