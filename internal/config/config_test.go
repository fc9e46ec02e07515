package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_KEYS", " key-1 , key-2")
	t.Setenv("WEBHOOK_MAX_RETRIES", "0")
	t.Setenv("SUMMARY_CACHE_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
	assert.Equal(t, 1, cfg.WebhookMaxRetries)
	assert.Equal(t, 30*time.Second, cfg.SummaryCacheTTL)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")
	t.Setenv("GENERATOR_SEED", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, int64(0), cfg.GeneratorSeed)
}

func TestGeneratorParams_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_incidents: 900\nsample_seed: 7\n"), 0o600))

	cfg := &Config{
		GeneratorParamsFile: path,
		GeneratorSeed:       11,
		TotalCostTarget:     50_000_000,
	}
	params, err := cfg.GeneratorParams()
	require.NoError(t, err)

	assert.Equal(t, 900, params.NumIncidents)
	assert.Equal(t, int64(7), params.SampleSeed)
	assert.Equal(t, int64(11), params.Seed)
	assert.Equal(t, int64(50_000_000), params.TotalCostTarget)
	// Поля, не заданные в файле, остаются по умолчанию
	assert.Equal(t, generator.DefaultParams().CarrierTargets, params.CarrierTargets)
}

func TestGeneratorParams_MissingFile(t *testing.T) {
	cfg := &Config{GeneratorParamsFile: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := cfg.GeneratorParams()
	assert.Error(t, err)
}

func TestGeneratorParams_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("carrier_weights: [0.5, 0.5]\n"), 0o600))

	cfg := &Config{GeneratorParamsFile: path}
	_, err := cfg.GeneratorParams()
	assert.ErrorIs(t, err, generator.ErrInvalidDistribution)
}
