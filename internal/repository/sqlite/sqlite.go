package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// MemoryPath - каталог в памяти процесса (тесты, локальный запуск без файлов)
const MemoryPath = ":memory:"

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// DB - встроенное хранилище каталога для запуска без PostgreSQL
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

func New(path string, logger *zap.Logger) (*DB, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite dir: %w", err)
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// In-memory database lives in a single connection
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply places schema: %w", err)
	}

	logger.Info("SQLite catalog opened", zap.String("path", path))

	return &DB{DB: db, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing SQLite catalog")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS places (
	place_id                TEXT PRIMARY KEY,
	name                    TEXT NOT NULL,
	district                TEXT NOT NULL DEFAULT '',
	region                  TEXT NOT NULL DEFAULT '',
	category                TEXT NOT NULL DEFAULT '',
	description             TEXT NOT NULL DEFAULT '',
	estimated_time_to_visit REAL,
	latitude                REAL,
	longitude               REAL,
	created_at              DATETIME NOT NULL,
	updated_at              DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_places_category ON places (lower(category));
CREATE INDEX IF NOT EXISTS idx_places_district ON places (lower(district));
`
