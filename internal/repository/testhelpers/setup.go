package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/repository/postgres"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *postgres.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к тестовой PostgreSQL и применяет схему; тест пропускается если БД недоступна
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5433"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "itinerary_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	sqlxDB, err := sqlx.ConnectContext(ctx, "pgx", connStr)
	if err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}

	db := postgres.NewDBForTest(sqlxDB, zap.NewNop())
	if err := db.Migrate(ctx); err != nil {
		sqlxDB.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	tdb := &TestDB{DB: db, Logger: zap.NewNop()}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.DB.Close()
	}
}

// Cleanup очищает таблицу каталога
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	_, err := tdb.DB.ExecContext(ctx, "TRUNCATE TABLE places")
	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
