package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "DATA_SOURCE",
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "SUPABASE_SERVICE_ROLE_KEY",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"OTEL_SERVICE_NAME", "OTEL_SERVICE_VERSION", "OTEL_ENDPOINT", "OTEL_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.DataSource.Mode)
	assert.False(t, cfg.Supabase.IsConfigured())
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "hamsafar-mirza", cfg.OTEL.ServiceName)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SOURCE", "supabase")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "supabase", cfg.DataSource.Mode)
	assert.True(t, cfg.Supabase.IsConfigured())
	assert.Equal(t, "cache.internal:6380", cfg.Redis.RedisAddr())
	assert.True(t, cfg.OTEL.Enabled)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("REDIS_DB", "seven")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestSupabaseConfig_Keys(t *testing.T) {
	cfg := SupabaseConfig{AnonKey: "anon-key"}
	assert.Equal(t, "anon-key", cfg.ReadKey())
	assert.Equal(t, "anon-key", cfg.WriteKey())

	cfg.ServiceRoleKey = "service-key"
	assert.Equal(t, "anon-key", cfg.ReadKey())
	assert.Equal(t, "service-key", cfg.WriteKey())
}

func TestSupabaseConfig_IsConfigured(t *testing.T) {
	assert.False(t, (&SupabaseConfig{URL: "https://project.supabase.co"}).IsConfigured())
	assert.False(t, (&SupabaseConfig{AnonKey: "anon-key"}).IsConfigured())
	assert.True(t, (&SupabaseConfig{URL: "https://project.supabase.co", AnonKey: "anon-key"}).IsConfigured())
}
