package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	ListenAddr       string
	DatabaseURL      string
	ReassessWorkers  int
	ReassessInterval time.Duration
	RequestTimeout   time.Duration
	// ScoringSeed 0 seeds the jitter source from the clock.
	ScoringSeed      int64
	ScoringJitter    bool
	AgentLatency     time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment, after preloading any .env file in the working
// directory. Values already in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		ReassessWorkers:  getenvInt("REASSESS_WORKERS", 0),
		ReassessInterval: getenvDuration("REASSESS_INTERVAL", time.Hour),
		RequestTimeout:   getenvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ScoringSeed:      int64(getenvInt("SCORING_SEED", 0)),
		ScoringJitter:    getenvBool("SCORING_JITTER", true),
		AgentLatency:     getenvDuration("AGENT_LATENCY", 0),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal: callers fall back to the in-memory store.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

// Production reports whether logs should be JSON.
func (c Config) Production() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseBool(v); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if out, err := time.ParseDuration(v); err == nil {
			return out
		}
	}
	return def
}
