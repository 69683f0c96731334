package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("SCORE_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.ScoreCacheTTL)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.False(t, cfg.SupabaseConfigured())
}

func TestLoad_SupabaseConfigured(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("SCORE_CACHE_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.SupabaseConfigured())
	assert.Equal(t, 30*time.Minute, cfg.ScoreCacheTTL)
}
