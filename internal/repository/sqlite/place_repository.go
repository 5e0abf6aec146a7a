package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
)

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
	places := make([]*domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, `SELECT `+placeColumns+` FROM places ORDER BY place_id`); err != nil {
		r.logger.Error("Failed to list places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return places, nil
}

func (r *placeRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + placeColumns + ` FROM places` + where + " ORDER BY place_id LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	// expands the IN (?) slice
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}

	places := make([]*domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to filter places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return places, nil
}

func (r *placeRepository) Count(ctx context.Context, filter domain.PlaceFilter) (int, error) {
	where, args := filterClause(filter)
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM places`+where, args...)
	if err != nil {
		return 0, errors.ErrDatabaseError
	}

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to count places", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return total, nil
}

// filterClause строит WHERE по категориям и району; категории раскрываются через sqlx.In
func filterClause(filter domain.PlaceFilter) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)

	if len(filter.Categories) > 0 {
		lowered := make([]string, 0, len(filter.Categories))
		for _, c := range filter.Categories {
			lowered = append(lowered, strings.ToLower(strings.TrimSpace(c)))
		}
		where = append(where, "lower(category) IN (?)")
		args = append(args, lowered)
	}
	if d := strings.TrimSpace(filter.District); d != "" {
		where = append(where, "lower(district) = lower(?)")
		args = append(args, d)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r *placeRepository) GetByID(ctx context.Context, placeID string) (*domain.Place, error) {
	var place domain.Place
	err := r.db.GetContext(ctx, &place, `SELECT `+placeColumns+` FROM places WHERE place_id = ?`, placeID)
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
		var sqliteErr *sqlite.Error
		if stderrors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM places WHERE place_id = ?`, placeID)
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
