package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the service. Supabase and Redis
// are both optional: leaving them unset degrades to local-only persistence
// and an in-process cache.
type Config struct {
	Port string `env:"PORT,default=8080"`

	SupabaseURL        string `env:"SUPABASE_URL"`
	SupabaseServiceKey string `env:"SUPABASE_SERVICE_KEY"`

	RedisAddr string `env:"REDIS_ADDR"`

	ScoreCacheTTL time.Duration `env:"SCORE_CACHE_TTL,default=12h"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE,default=5"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// SupabaseConfigured reports whether remote persistence should be attempted.
func (c Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}
