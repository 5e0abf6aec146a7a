package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/repository/sqlite"
	"github.com/itinerary-service/internal/repository/testhelpers"
)

func TestPlaceRepository_InMemory(t *testing.T) {
	db, err := sqlite.New(sqlite.MemoryPath, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	testhelpers.RunPlaceRepositoryContract(t, sqlite.NewPlaceRepository(db))
}

func TestPlaceRepository_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "places.db")
	db, err := sqlite.New(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	testhelpers.RunPlaceRepositoryContract(t, sqlite.NewPlaceRepository(db))
}
