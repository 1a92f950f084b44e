package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
workers:
  generate-ad-set:
    enabled: true
  score-hook:
    enabled: false
    max_jobs_active: 20
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "adsynth-workers", cfg.App.Name)
	assert.Equal(t, 10, cfg.Camunda.MaxJobsActive)
	assert.Equal(t, 24*time.Hour, cfg.Engine.AdSetCacheTTL)
	assert.Equal(t, 10*time.Minute, cfg.Engine.BrandKitCacheTTL)
	assert.Equal(t, "اطلب الآن", cfg.Engine.ExportFallbackCTA)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":9090", cfg.Metrics.Address)

	gen := GetWorkerConfig(cfg, "generate-ad-set")
	assert.Equal(t, 5, gen.MaxJobsActive)
	assert.Equal(t, 30000, gen.Timeout)
	assert.Equal(t, 3, gen.MaxRetries)

	assert.False(t, IsWorkerEnabled(cfg, "score-hook"))
	assert.Equal(t, 20, GetWorkerConfig(cfg, "score-hook").MaxJobsActive)
	assert.True(t, IsWorkerEnabled(cfg, "unknown-worker"))
}

func TestLoadFromFile_EngineAndEnvExpansion(t *testing.T) {
	t.Setenv("ADSYNTH_TEST_PG_HOST", "db.internal")

	path := writeConfig(t, `
camunda:
  broker_address: zeebe:26500
database:
  postgres:
    enabled: true
    host: ${ADSYNTH_TEST_PG_HOST}
    database: adsynth
    user: adsynth
  redis:
    enabled: true
    address: redis:6379
engine:
  ad_set_cache_ttl: 2h
  persist_ad_sets: true
  brand_kit_cache_ttl: 30s
  export_fallback_cta: تسوق الآن
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, 2*time.Hour, cfg.Engine.AdSetCacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Engine.BrandKitCacheTTL)
	assert.True(t, cfg.Engine.PersistAdSets)
	assert.Equal(t, "تسوق الآن", cfg.Engine.ExportFallbackCTA)
	assert.Contains(t, cfg.Database.Postgres.GetDSN(), "host=db.internal port=5432")
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing broker",
			body: "logging:\n  level: debug\n",
			want: "camunda.broker_address is required",
		},
		{
			name: "persistence without postgres",
			body: "camunda:\n  broker_address: x:1\nengine:\n  persist_ad_sets: true\n",
			want: "requires database.postgres.enabled",
		},
		{
			name: "postgres without host",
			body: "camunda:\n  broker_address: x:1\ndatabase:\n  postgres:\n    enabled: true\n",
			want: "database.postgres.host is required",
		},
		{
			name: "redis without address",
			body: "camunda:\n  broker_address: x:1\ndatabase:\n  redis:\n    enabled: true\n",
			want: "database.redis.address is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ZEEBE_ADDRESS", "")
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}

func TestLoadFromFile_ShippedConfig(t *testing.T) {
	t.Setenv("ZEEBE_ADDRESS", "")
	cfg, err := LoadFromFile(filepath.Join("..", "..", "..", "configs", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:26500", cfg.Camunda.BrokerAddress)
	assert.Equal(t, "bpmn/ad-synthesis.bpmn", cfg.Camunda.BPMNFile)
	assert.Equal(t, "configs/brand-kits.yaml", cfg.Engine.BrandKitsFile)
	assert.Equal(t, 10*time.Minute, cfg.Engine.BrandKitCacheTTL)

	for _, taskType := range []string{
		"generate-ad-set", "score-hook", "optimize-cta",
		"generate-layout", "adapt-platform", "enrich-segment",
		"curate-combinations", "validate-brand-safety", "export-ads-csv",
	} {
		assert.True(t, IsWorkerEnabled(cfg, taskType), taskType)
		assert.Positive(t, GetWorkerConfig(cfg, taskType).Timeout, taskType)
	}
}
