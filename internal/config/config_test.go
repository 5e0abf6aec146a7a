package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Catalog.Driver)
	assert.Equal(t, "Colombo", cfg.Planner.AnchorName)
	assert.Equal(t, 6.9271, cfg.Planner.AnchorLat)
	assert.Equal(t, 79.8612, cfg.Planner.AnchorLon)
	assert.Equal(t, 2*time.Second, cfg.ML.HealthTimeout)
	assert.Equal(t, 5*time.Second, cfg.ML.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Cache.ItineraryCacheTTL)
	assert.Equal(t, "dataset-refresh-workers", cfg.Worker.ConsumerGroup)
	assert.False(t, cfg.ML.Enabled)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Catalog: CatalogConfig{Driver: "sqlite"},
		Planner: PlannerConfig{AnchorName: "Kandy", AnchorLat: 7.29, AnchorLon: 80.63, EntryCostStub: 750},
		ML:      MLConfig{HealthTimeout: 500 * time.Millisecond},
	}
	cfg.applyDefaults()

	assert.Equal(t, "sqlite", cfg.Catalog.Driver)
	assert.Equal(t, "Kandy", cfg.Planner.AnchorName)
	assert.Equal(t, 7.29, cfg.Planner.AnchorLat)
	assert.Equal(t, 750.0, cfg.Planner.EntryCostStub)
	assert.Equal(t, 500*time.Millisecond, cfg.ML.HealthTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("CATALOG_DRIVER", "sqlite")
	t.Setenv("ML_ENABLED", "true")
	t.Setenv("ML_REQUEST_TIMEOUT", "1500")

	cfg := LoadFromEnv()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Catalog.Driver)
	assert.True(t, cfg.ML.Enabled)
	assert.Equal(t, 1500*time.Millisecond, cfg.ML.RequestTimeout)
	assert.Equal(t, ":9090", cfg.GetServerAddr())
}

func TestApplyDefaults_NegativeTimeouts(t *testing.T) {
	cfg := &Config{ML: MLConfig{HealthTimeout: -time.Second, RequestTimeout: -1}}
	cfg.applyDefaults()

	assert.Equal(t, 2*time.Second, cfg.ML.HealthTimeout)
	assert.Equal(t, 5*time.Second, cfg.ML.RequestTimeout)
}

func TestLoadFromEnv_EntryCost(t *testing.T) {
	cfg := LoadFromEnv()
	assert.Equal(t, 500.0, cfg.Planner.EntryCostStub)

	t.Setenv("ENTRY_COST_STUB", "0")
	cfg = LoadFromEnv()
	assert.Equal(t, 0.0, cfg.Planner.EntryCostStub)

	t.Setenv("ENTRY_COST_STUB", "750")
	cfg = LoadFromEnv()
	assert.Equal(t, 750.0, cfg.Planner.EntryCostStub)
}
