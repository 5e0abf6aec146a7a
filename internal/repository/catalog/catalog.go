package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/repository/postgres"
	"github.com/itinerary-service/internal/repository/sqlite"
)

// Драйверы каталога
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store - открытый каталог мест вместе с его соединением
type Store struct {
	Places repository.PlaceRepository
	Driver string
	health func(ctx context.Context) error
	close  func() error
}

func (s *Store) Health(ctx context.Context) error {
	return s.health(ctx)
}

func (s *Store) Close() error {
	return s.close()
}

// Open подключает каталог по CATALOG_DRIVER; для postgres применяется схема
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Catalog.Driver {
	case DriverPostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{
			Places: postgres.NewPlaceRepository(db),
			Driver: DriverPostgres,
			health: db.Health,
			close:  db.Close,
		}, nil

	case DriverSQLite:
		db, err := sqlite.New(cfg.Catalog.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return &Store{
			Places: sqlite.NewPlaceRepository(db),
			Driver: DriverSQLite,
			health: db.Health,
			close:  db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
}
