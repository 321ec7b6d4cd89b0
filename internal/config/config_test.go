package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LISTEN_ADDR", "DATABASE_URL", "REASSESS_WORKERS", "REASSESS_INTERVAL",
		"REQUEST_TIMEOUT", "SCORING_SEED", "SCORING_JITTER", "AGENT_LATENCY"} {
		t.Setenv(k, "")
	}
	cfg, err := fromEnv()
	require.Error(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Zero(t, cfg.ReassessWorkers)
	assert.Equal(t, time.Hour, cfg.ReassessInterval)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.ScoringSeed)
	assert.True(t, cfg.ScoringJitter)
	assert.Zero(t, cfg.AgentLatency)
	assert.False(t, cfg.Production())
}

func TestOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/procure")
	t.Setenv("REASSESS_WORKERS", "4")
	t.Setenv("REASSESS_INTERVAL", "15m")
	t.Setenv("SCORING_SEED", "42")
	t.Setenv("SCORING_JITTER", "false")
	t.Setenv("AGENT_LATENCY", "1500ms")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, 4, cfg.ReassessWorkers)
	assert.Equal(t, 15*time.Minute, cfg.ReassessInterval)
	assert.Equal(t, int64(42), cfg.ScoringSeed)
	assert.False(t, cfg.ScoringJitter)
	assert.Equal(t, 1500*time.Millisecond, cfg.AgentLatency)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LISTEN_ADDR=:9090\nREASSESS_WORKERS=2\n"), 0o600))
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("REASSESS_WORKERS", "")
	require.NoError(t, os.Unsetenv("REASSESS_WORKERS"))

	require.NoError(t, godotenv.Load(path))
	cfg, _ := fromEnv()
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, 2, cfg.ReassessWorkers)
}
